package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/thesisvault/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Zero values
// mean "keep the current setting".
type JsonConfig struct {
	DataDir       string `json:"data_dir"`
	DatabaseFile  string `json:"database_file"`
	KeychainFile  string `json:"keychain_file"`
	ActivityLimit int    `json:"activity_limit"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (extracted with
// flagx.JsonConfigFlags so cobra's own flag parsing is not disturbed).
// When no file is named the function returns without touching cfg.
// Read or unmarshal errors panic; the binary cannot do anything useful
// with a config it was explicitly pointed at but cannot read.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.KeychainFile != "" {
		cfg.KeychainFile = jc.KeychainFile
	}
	if jc.ActivityLimit > 0 {
		cfg.ActivityLimit = jc.ActivityLimit
	}
}
