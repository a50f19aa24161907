package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/josephgoksu/kanban-sheets/types"
)

// ErrConfigExists is returned by WriteConfigFile when the target exists and
// overwriting was not requested.
var ErrConfigExists = errors.New("config file already exists")

const configHeader = `# kanban-sheets configuration
# backend: "file" reads and writes file.path (.csv, .xlsx, .db)
# backend: "sheets" uses a Google spreadsheet with a service account
`

// fileLayout mirrors types.AppConfig with YAML keys matching the viper keys.
type fileLayout struct {
	Backend string       `yaml:"backend"`
	File    fileSection  `yaml:"file"`
	Sheets  sheetSection `yaml:"sheets"`
	Log     logSection   `yaml:"log"`
}

type fileSection struct {
	Path  string `yaml:"path"`
	Sheet string `yaml:"sheet,omitempty"`
}

type sheetSection struct {
	SpreadsheetID   string `yaml:"spreadsheetId"`
	SheetName       string `yaml:"sheetName"`
	Columns         string `yaml:"columns"`
	CredentialsFile string `yaml:"credentialsFile"`
}

type logSection struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// DefaultAppConfig returns the configuration used when nothing is set.
func DefaultAppConfig() types.AppConfig {
	return types.AppConfig{
		Backend: DefaultBackend,
		File:    types.FileConfig{Path: DefaultFilePath},
		Sheets: types.SheetsConfig{
			SheetName:       DefaultSheetName,
			Columns:         DefaultColumns,
			CredentialsFile: DefaultCredentialsFile,
		},
		Log: types.LogConfig{Level: DefaultLogLevel},
	}
}

// Marshal renders cfg as a commented YAML document.
func Marshal(cfg types.AppConfig) ([]byte, error) {
	layout := fileLayout{
		Backend: cfg.Backend,
		File:    fileSection{Path: cfg.File.Path, Sheet: cfg.File.Sheet},
		Sheets: sheetSection{
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			SheetName:       cfg.Sheets.SheetName,
			Columns:         cfg.Sheets.Columns,
			CredentialsFile: cfg.Sheets.CredentialsFile,
		},
		Log: logSection{Level: cfg.Log.Level, File: cfg.Log.File},
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfigFile writes cfg to path. An existing file is kept unless force
// is set.
func WriteConfigFile(fs afero.Fs, path string, cfg types.AppConfig, force bool) error {
	if _, err := fs.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
