package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	dwavemcp "github.com/qanneal/dwave-mcp-go"
	"github.com/qanneal/dwave-mcp-go/internal/config"
	"github.com/qanneal/dwave-mcp-go/internal/logging"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	var (
		useHTTP       bool
		listen        string
		configPath    string
		logLevel      string
		logFormat     string
		useSimulator  bool
		simulatorType string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the adapter over stdio or streamable HTTP",
		Long: `Serve the MCP adapter. By default the server speaks the stdio
transport, which is what desktop MCP clients spawn. With --http it
listens on a TCP address and serves the streamable HTTP transport at
/mcp plus a JSON liveness message at the root path.

Flags given explicitly override values from the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = *loaded
			}

			flags := cmd.Flags()
			if flags.Changed("listen") {
				cfg.Listen = listen
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("use-simulator") {
				cfg.UseSimulator = useSimulator
			}
			if flags.Changed("simulator-type") {
				cfg.SimulatorType = simulatorType
			}
			if err := config.Validate(&cfg); err != nil {
				return err
			}

			logger := logging.New(logging.Config{
				Level:  logging.Level(cfg.LogLevel),
				Format: logging.Format(cfg.LogFormat),
			})

			s := dwavemcp.New(
				dwavemcp.WithLogger(logger),
				dwavemcp.WithSimulatorConfig(dwavemcp.SimulatorConfig{
					UseSimulator:  cfg.UseSimulator,
					SimulatorType: dwavemcp.SimulatorType(cfg.SimulatorType),
				}),
			)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			go func() {
				<-sigChan
				cancel()
			}()

			if useHTTP {
				return serveHTTP(ctx, s, cfg.Listen, logger)
			}

			return s.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&useHTTP, "http", false, "serve streamable HTTP instead of stdio")
	cmd.Flags().StringVar(&listen, "listen", "0.0.0.0:3000", "TCP address to listen on with --http")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
	cmd.Flags().BoolVar(&useSimulator, "use-simulator", true, "start with the simulator enabled")
	cmd.Flags().StringVar(&simulatorType, "simulator-type", "dwave", "initial simulator type: dwave, neal")

	return cmd
}

func serveHTTP(ctx context.Context, s *dwavemcp.Server, listen string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("serving MCP over HTTP",
			"listen", listen,
			"mcp_path", dwavemcp.MCPPath)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		logger.Info("shutting down HTTP server")

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
