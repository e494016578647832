// ABOUTME: Serve command for the browser viewer
// ABOUTME: Runs the gin web server until interrupted

package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/config"
	"github.com/harper/headlines/internal/timeutil"
	"github.com/harper/headlines/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser viewer",
	Long: `Serve the news viewer over HTTP.

  /              page with tabs, search, and cards (?q=, ?nav=, ?home=1)
  /api/search    JSON cards and status (?q=)
  /api/topics    navigation presets
  /healthz       liveness
  /metrics       Prometheus metrics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		searcher, err := newSearcher(cfg)
		if err != nil {
			return err
		}

		if !debug {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := interruptContext(cmd.Context())
		defer stop()

		// Cards are plain links in the browser, nothing opens server-side
		server := web.New(web.Options{
			Searcher:  searcher,
			Renderer:  card.NewRenderer(nil, timeutil.LoadZone(cfg.GetTimeZone())),
			Nav:       navPresets(cfg),
			SeedTopic: cfg.GetSeedTopic(),
			Logger:    newLogger(os.Stderr),
		})
		return server.Run(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", config.DefaultServeAddr, "listen address")
}
