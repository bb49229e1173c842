package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"movieobserver/config"
	"movieobserver/service"
	"movieobserver/tui"
)

var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Movie showtimes in your terminal",
	Long:  `Browse movies playing in theaters, filter original language screenings and open booking pages, all from the terminal.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger, closer, err := config.NewFileLogger(cfg)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer closer.Close()

		client := service.NewClient(cfg.APIURL, newHTTPClient(cfg))
		logger.Info("starting terminal ui", "api_url", client.BaseURL(), "version", version)

		model := tui.New(tui.Options{Client: client, Logger: logger})
		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		return err
	},
	SilenceUsage: true,
}

// Execute runs the command line with build metadata set by the linker.
func Execute(buildVersion string, buildCommit string) {
	if buildVersion != "" {
		version = buildVersion
	}
	if buildCommit != "" {
		commit = buildCommit
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(serveCmd, showtimesCmd, versionCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
