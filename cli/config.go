package cli

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/benrod3k/hostobj/utils"
)

const configFileName = ".hostobj.ini"

// defaults read from the config file, overridable by flags
var configListenAddr string

// loadConfigFile reads ~/.hostobj.ini if present. A missing file is not an
// error; a malformed one only logs.
func loadConfigFile() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	path := filepath.Join(home, configFileName)
	if _, err := os.Stat(path); err != nil {
		return
	}

	cfg, err := ini.Load(path)
	if err != nil {
		utils.Error("failed to parse %s: %v", path, err)
		return
	}

	section := cfg.Section("")
	if section.Key("verbose").MustBool(false) {
		utils.SetVerbose(true)
	}

	if dir := section.Key("store").String(); dir != "" && storeDir == "" {
		storeDir = dir
	}

	configListenAddr = section.Key("listen").String()
}
