package main

import (
	"github.com/pevans/cruler/config"
)

// loadConfigFile loads the config file at path, or the default user config
// file when path is empty.
func loadConfigFile(path string) (*config.FileConfig, error) {
	if path == "" {
		return config.LoadConfigFile()
	}
	return config.LoadConfigFileFrom(path)
}
