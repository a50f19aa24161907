// Package config holds configuration defaults, environment bindings,
// search paths and the config file writer for kanban-sheets.
package config

import "github.com/spf13/viper"

const (
	// EnvPrefix prefixes every environment variable read automatically.
	EnvPrefix = "KANBAN"

	// ConfigName is the config file base name searched by viper (.kanban.yaml).
	ConfigName = ".kanban"

	// ConfigFile is the file written by `kanban-sheets init`.
	ConfigFile = ConfigName + ".yaml"
)

// Backend defaults
const (
	DefaultBackend         = "file"
	DefaultFilePath        = "kanban.xlsx"
	DefaultSheetName       = "Sheet1"
	DefaultColumns         = "A:K"
	DefaultCredentialsFile = "credentials.json"
	DefaultLogLevel        = "info"
)

// defaults maps viper keys to their default values.
var defaults = map[string]interface{}{
	"backend":                DefaultBackend,
	"file.path":              DefaultFilePath,
	"file.sheet":             "",
	"sheets.spreadsheetId":   "",
	"sheets.sheetName":       DefaultSheetName,
	"sheets.columns":         DefaultColumns,
	"sheets.credentialsFile": DefaultCredentialsFile,
	"log.level":              DefaultLogLevel,
	"log.file":               "",
}

// envBindings keeps the historical variable names working alongside the
// KANBAN_<SECTION>_<KEY> form. The first variable that is set wins.
var envBindings = map[string][]string{
	"backend":                {"KANBAN_BACKEND"},
	"sheets.spreadsheetId":   {"KANBAN_SHEET_ID"},
	"sheets.sheetName":       {"KANBAN_SHEET_NAME"},
	"sheets.columns":         {"KANBAN_SHEET_COLUMNS"},
	"sheets.credentialsFile": {"KANBAN_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS"},
	"file.path":              {"KANBAN_FILE_PATH"},
	"file.sheet":             {"KANBAN_FILE_SHEET"},
	"log.level":              {"KANBAN_LOG_LEVEL"},
	"log.file":               {"KANBAN_LOG_FILE"},
}

// ApplyDefaults registers every default value on v.
func ApplyDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// BindEnv binds the explicit environment variable names on v.
func BindEnv(v *viper.Viper) error {
	for key, names := range envBindings {
		args := append([]string{key}, names...)
		if err := v.BindEnv(args...); err != nil {
			return err
		}
	}
	return nil
}
