package config

import (
	"path/filepath"

	"github.com/Paintersrp/noman/internal/constants"
)

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}

// DefaultNotesDir is where notes live when nothing else is configured.
func DefaultNotesDir(homeDir string) string {
	return filepath.Join(homeDir, constants.DefaultNotesDir)
}
