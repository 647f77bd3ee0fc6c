package cli

var (
	verbose  bool
	storeDir string

	// for get/set commands
	valueType string
	tryGet    bool
	saveAfter bool
)
