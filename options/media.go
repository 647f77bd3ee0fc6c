package options

import "github.com/benrod3k/hostobj/object"

// Constraints builds a media capture constraints object. Mandatory desktop
// capture fields live under the nested "mandatory" object; the dotted paths
// create it on first use.
type Constraints struct {
	b *Builder
}

func NewConstraints() *Constraints {
	return &Constraints{b: New()}
}

// SourceID selects a desktop capture source by stream id.
func (c *Constraints) SourceID(sourceID string) *Constraints {
	c.b.Set("mandatory.chromeMediaSource", object.String("desktop"))
	c.b.Set("mandatory.chromeMediaSourceId", object.String(sourceID))
	return c
}

func (c *Constraints) MaxWidth(maxWidth uint32) *Constraints {
	c.b.Set("mandatory.maxWidth", object.Int(int64(maxWidth)))
	return c
}

func (c *Constraints) MaxHeight(maxHeight uint32) *Constraints {
	c.b.Set("mandatory.maxHeight", object.Int(int64(maxHeight)))
	return c
}

// DeviceID restricts capture to an acceptable device.
func (c *Constraints) DeviceID(deviceID string) *Constraints {
	c.b.Set("deviceId", object.String(deviceID))
	return c
}

// GroupID restricts capture to an acceptable device group.
func (c *Constraints) GroupID(groupID string) *Constraints {
	c.b.Set("groupId", object.String(groupID))
	return c
}

func (c *Constraints) AspectRatio(aspectRatio float64) *Constraints {
	c.b.Set("aspectRatio", object.Number(aspectRatio))
	return c
}

func (c *Constraints) FacingMode(facingMode string) *Constraints {
	c.b.Set("facingMode", object.String(facingMode))
	return c
}

func (c *Constraints) FrameRate(frameRate float64) *Constraints {
	c.b.Set("frameRate", object.Number(frameRate))
	return c
}

func (c *Constraints) Width(width uint16) *Constraints {
	c.b.Set("width", object.Int(int64(width)))
	return c
}

func (c *Constraints) Height(height uint16) *Constraints {
	c.b.Set("height", object.Int(int64(height)))
	return c
}

// Build returns the constraints object.
func (c *Constraints) Build() (object.Object, error) {
	return c.b.Build()
}
