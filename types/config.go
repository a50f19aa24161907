/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool         `mapstructure:"verbose"`
	Config  string       `mapstructure:"config"`
	Backend string       `mapstructure:"backend" validate:"required,oneof=sheets file"`
	Sheets  SheetsConfig `mapstructure:"sheets"`
	File    FileConfig   `mapstructure:"file"`
	Log     LogConfig    `mapstructure:"log"`
}

// SheetsConfig holds Google Sheets settings, used when Backend is "sheets"
type SheetsConfig struct {
	SpreadsheetID   string `mapstructure:"spreadsheetId" validate:"required_if=Enabled true"`
	SheetName       string `mapstructure:"sheetName" validate:"required"`
	Columns         string `mapstructure:"columns" validate:"required"`
	CredentialsFile string `mapstructure:"credentialsFile" validate:"required_if=Enabled true"`
	// Enabled mirrors Backend == "sheets" so field rules can depend on it
	Enabled bool `mapstructure:"-"`
}

// FileConfig holds local file settings, used when Backend is "file"
type FileConfig struct {
	Path string `mapstructure:"path" validate:"required_if=Enabled true"`
	// Sheet selects the worksheet of an .xlsx workbook; empty means the first one
	Sheet   string `mapstructure:"sheet"`
	Enabled bool   `mapstructure:"-"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}
