// Package main provides the entry point for the boardkit task board.
//
// With no arguments it starts the TUI; subcommands drive the same board
// core without a terminal UI.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"boardkit/internal/app"
	"boardkit/internal/cli"
	"boardkit/internal/config"
)

var (
	flagStore   string
	flagDataDir string
	flagConfig  string
)

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if flagConfig != "" {
		cfg, err = config.LoadConfig(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if flagStore != "" {
		cfg.Store = flagStore
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

func withDeps(run func(*cli.Dependencies) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		deps, err := cli.NewDependencies(cfg)
		if err != nil {
			return err
		}
		defer deps.Close()
		return run(deps)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boardkit",
	Short: "A local kanban task board",
	Long:  `boardkit is a keyboard-driven kanban board: tasks in ordered columns, with JSON import/export and local persistence.`,
	RunE: withDeps(func(deps *cli.Dependencies) error {
		model := app.NewModel(deps.Config, deps.Adapter, deps.Logger)
		program := tea.NewProgram(model, tea.WithAltScreen())
		_, err := program.Run()
		return err
	}),
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the board as a versioned JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		return withDeps(func(deps *cli.Dependencies) error {
			return cli.ExportCommand(deps, out)
		})(cmd, args)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the board with a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDeps(func(deps *cli.Dependencies) error {
			return cli.ImportCommand(deps, args[0])
		})(cmd, args)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show board statistics",
	RunE:  withDeps(cli.StatsCommand),
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe the stored board",
	RunE:  withDeps(cli.ClearCommand),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "storage backend: file, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory for board data")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "directory containing .boardkit.json")
	exportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	rootCmd.AddCommand(exportCmd, importCmd, statsCmd, clearCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
