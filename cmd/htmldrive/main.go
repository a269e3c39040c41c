// Command htmldrive serves the HTML-to-Google-Drive conversion API.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/smorand/htmldrive/internal/tools"
	"github.com/smorand/htmldrive/internal/transport"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "htmldrive",
		Short: "HTML to Google Drive conversion service",
		Long: "htmldrive converts base64-encoded HTML documents into Google Drive\n" +
			"artifacts (Docs, Sheets, Slides) using caller-supplied OAuth access tokens.",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var (
		port      int
		logFormat string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A local .env overrides nothing if absent.
			_ = godotenv.Load()

			logger, err := newLogger(logFormat, logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			config := transport.DefaultServerConfig()
			config.Logger = logger
			if port != 0 {
				config.Port = port
			} else if env := os.Getenv("HTMLDRIVE_PORT"); env != "" {
				p, err := strconv.Atoi(env)
				if err != nil {
					return fmt.Errorf("invalid HTMLDRIVE_PORT %q: %w", env, err)
				}
				config.Port = p
			}

			toolset := tools.NewTools(tools.ToolsConfig{Logger: logger}, nil, nil, nil, nil)
			server := transport.NewServer(config, toolset)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default 8080, or HTMLDRIVE_PORT)")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

func newLogger(format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(os.Stderr, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
