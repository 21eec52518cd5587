package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/rangeslider"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, logPath string
	cmd := &cobra.Command{
		Use:          "rangeslider-demo",
		Short:        "Drag, click and arrow-key range sliders in the terminal",
		Version:      rangeslider.Version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(configPath, logPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML file of [[slider]] tables (default: built-in sliders)")
	cmd.Flags().StringVar(&logPath, "log", "", "write slider diagnostics to this file")
	return cmd
}

func run(configPath, logPath string) error {
	entries, err := loadEntries(configPath)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "rangeslider-demo")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "rangeslider-demo",
		})
		logger.Info("starting", "version", rangeslider.Version(), "sliders", len(entries))
	}

	m, err := newModel(entries, logger)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	_, err = p.Run()
	return err
}
