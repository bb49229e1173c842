package cmd

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"movieobserver/config"
	"movieobserver/service"
	"movieobserver/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the showtimes website",
	Long:  `Serve the showtimes website over HTTP, rendering pages from the showtimes API.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		logger := config.NewLogger(cfg, os.Stderr)

		client := service.NewClient(cfg.APIURL, newHTTPClient(cfg))
		srv, err := web.NewServer(client, logger, nil)
		if err != nil {
			return err
		}
		logger.Info("serving website", "addr", cfg.Addr, "api_url", client.BaseURL(), "env", cfg.Environment)
		return srv.ListenAndServe(cmd.Context(), cfg.Addr)
	},
	SilenceUsage: true,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides ADDR/PORT)")
}

func newHTTPClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.HTTPTimeout}
}
