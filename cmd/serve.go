package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/alexiusacademia/gotank/internal/api"
	"github.com/alexiusacademia/gotank/internal/logging"
)

var (
	serveAddr      string
	serveRate      float64
	serveBurst     int
	serveNoLimiter bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculators as a JSON HTTP API",
	Long: `Start the HTTP API. Every calculator is available as a POST endpoint
under /api taking and returning JSON; GET /api/materials lists the catalog.

Settings come from flags, then GOTANK_ADDR, GOTANK_RATE_LIMIT and
GOTANK_RATE_BURST (also read from the --env-file).

Examples:
  gotank serve --addr :5000
  curl -X POST localhost:5000/api/calculate-shell -d '{"D": 20, "H": 15}'`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from config, :5000)")
	serveCmd.Flags().Float64Var(&serveRate, "rate", 0, "Requests per second per client (default from config)")
	serveCmd.Flags().IntVar(&serveBurst, "burst", 0, "Rate limiter burst (default from config)")
	serveCmd.Flags().BoolVar(&serveNoLimiter, "no-limit", false, "Disable rate limiting")
}

func runServe(cmd *cobra.Command, args []string) error {
	server := appConfig.Server
	if serveAddr != "" {
		server.Addr = serveAddr
	}
	if serveRate > 0 {
		server.RateLimit = serveRate
	}
	if serveBurst > 0 {
		server.Burst = serveBurst
	}

	var limiter *api.IPRateLimiter
	if !serveNoLimiter {
		limiter = api.NewIPRateLimiter(rate.Limit(server.RateLimit), server.Burst)
	}
	handler := api.NewRouter(api.NewHandler(catalog), limiter)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  gotank API listening on %s (Ctrl+C to stop)\n", server.Addr)
	logging.Info("starting api",
		zap.String("addr", server.Addr),
		zap.Float64("rate", server.RateLimit),
		zap.Int("burst", server.Burst),
		zap.Int("grades", catalog.Len()),
	)
	return api.Serve(ctx, server.Addr, handler)
}
