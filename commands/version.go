package commands

import (
	"fmt"

	"github.com/benrod3k/hostobj/utils"
)

// Repo is the GitHub repository checked for new releases.
const Repo = "benrod3k/hostobj"

// VersionResponse represents the response for the version command
type VersionResponse struct {
	Version         string `json:"version"`
	Latest          string `json:"latest,omitempty"`
	UpdateAvailable bool   `json:"updateAvailable,omitempty"`
}

// VersionCommand reports the running version and, when check is set, the
// latest published release. The lookup is a single request; token may be
// empty.
func VersionCommand(current string, check bool, token string) *CommandResponse {
	resp := VersionResponse{Version: current}

	if !check {
		return NewSuccessResponse(resp)
	}

	latest, err := utils.LatestReleaseVersion(Repo, token)
	if err != nil {
		return NewErrorResponse(fmt.Errorf("error checking latest release: %w", err))
	}
	resp.Latest = latest.String()

	if running, err := utils.ParseVersion(current); err == nil {
		resp.UpdateAvailable = latest.GreaterThan(running)
	}

	return NewSuccessResponse(resp)
}
