package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/doctool/internal/httputil"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the operations over HTTP",
	Long: `Serve starts an HTTP server. POST /v1/call runs an operation from a JSON
body of the form {"operationName": ..., "arguments": {...}}, GET /v1/ops
lists the operations, and GET /health reports liveness.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides serve.addr)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := serveConfig()
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}

	router := httputil.NewRouter(newDispatcher(), log, cfg.RequestTimeout)

	log.Info().Str("addr", cfg.Addr).Msg("listening")
	return http.ListenAndServe(cfg.Addr, router)
}
