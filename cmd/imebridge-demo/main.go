package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/imebridge"
	"github.com/iw2rmb/imebridge/internal/config"
	"github.com/iw2rmb/imebridge/internal/logging"
)

var (
	configPath string
	logLevel   string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "imebridge-demo",
	Short: "Terminal editor showing the input-method bridge at work",
	Long: `imebridge-demo opens an editor whose typing goes through an edit context,
the same path an input method uses. F2 starts a scripted composition of
"ni" and shows a candidate window at the reported character bounds; pick a
candidate with 1-3 or Enter, or cancel with Esc. Ctrl+Q quits.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}

		logger, closeLog, err := openLogger(cfg)
		if err != nil {
			return err
		}
		defer closeLog()
		logging.SetDefault(logger)

		text := strings.Join(args, " ")
		if text == "" {
			text = "Type here; F2 starts a composition.\nCtrl+C/X/V use the system clipboard.\nCtrl+Q quits."
		}

		m := newModel(cfg, text, logger)
		defer m.editor.Close()

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run terminal UI: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("imebridge-demo %s\n", imebridge.VersionTag())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "imebridge.yaml", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (the TUI owns the terminal)")
	rootCmd.AddCommand(versionCmd)
}

// openLogger logs to cfg.LogFile, or discards logs when none is set: stderr
// belongs to the TUI.
func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.NewWithWriter(f, cfg.LogLevel), func() { _ = f.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
