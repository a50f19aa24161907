package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephgoksu/kanban-sheets/internal/config"
	"github.com/josephgoksu/kanban-sheets/internal/ui"
	"github.com/josephgoksu/kanban-sheets/store"
	"github.com/josephgoksu/kanban-sheets/types"
)

// initOptions are the flags of the init command.
type initOptions struct {
	output          string
	backend         string
	filePath        string
	spreadsheetID   string
	credentialsFile string
	force           bool
}

var initOpts initOptions

// initFs is the filesystem used by init. Tests swap it for a MemMapFs.
var initFs = afero.NewOsFs()

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a .kanban.yaml template and create the local task file",
	Long: `Write a .kanban.yaml configuration template.

With the file backend the task file is created as well, holding only the
header row. Existing files are kept; pass --force to overwrite the config.

Examples:
  kanban-sheets init
  kanban-sheets init --file-path board.csv
  kanban-sheets init --backend sheets --sheet-id 1AbC... --credentials sa.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd, initOpts)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	f := initCmd.Flags()
	f.StringVarP(&initOpts.output, "output", "o", config.ConfigFile, "config file to write")
	f.StringVar(&initOpts.backend, "backend", config.DefaultBackend, "storage backend: file or sheets")
	f.StringVar(&initOpts.filePath, "file-path", config.DefaultFilePath, "task file for the file backend (.csv, .xlsx, .db)")
	f.StringVar(&initOpts.spreadsheetID, "sheet-id", "", "spreadsheet id for the sheets backend")
	f.StringVar(&initOpts.credentialsFile, "credentials", config.DefaultCredentialsFile, "service account credentials for the sheets backend")
	f.BoolVarP(&initOpts.force, "force", "f", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, opts initOptions) error {
	cfg := config.DefaultAppConfig()
	cfg.Backend = strings.ToLower(strings.TrimSpace(opts.backend))
	cfg.File.Path = opts.filePath
	cfg.Sheets.SpreadsheetID = opts.spreadsheetID
	cfg.Sheets.CredentialsFile = opts.credentialsFile
	cfg.File.Enabled = cfg.Backend == store.BackendFile
	cfg.Sheets.Enabled = cfg.Backend == store.BackendSheets
	if err := config.Validate(&cfg); err != nil {
		return err
	}
	if cfg.File.Enabled {
		if _, err := store.FormatForPath(cfg.File.Path); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	err := config.WriteConfigFile(initFs, opts.output, cfg, opts.force)
	if errors.Is(err, config.ErrConfigExists) {
		return fmt.Errorf("%w (use --force to overwrite)", err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Wrote %s\n", ui.Icon("✔", ui.StyleSuccess), opts.output)

	if !cfg.File.Enabled {
		fmt.Fprintln(out, ui.StyleSubtle.Render("Share the spreadsheet with the service account before running the server."))
		return nil
	}
	return createTaskFile(cmd, &cfg, opts.output)
}

// createTaskFile opens the configured file once, which creates it with the
// header row when missing.
func createTaskFile(cmd *cobra.Command, cfg *types.AppConfig, configPath string) error {
	configAbs, err := filepath.Abs(configPath)
	if err != nil {
		return err
	}
	path := config.ResolvePath(cfg.File.Path, configAbs)
	conn, err := store.NewFileConnector(cmd.Context(), path, store.FileOptions{
		Fs:    initFs,
		Sheet: cfg.File.Sheet,
	})
	if err != nil {
		return fmt.Errorf("failed to create task file: %w", err)
	}
	if err := conn.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s Task file ready at %s\n", ui.Icon("✔", ui.StyleSuccess), path)
	return nil
}
