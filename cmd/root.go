package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/jsonreq/config"
	"github.com/s0up4200/jsonreq/request"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger

	// Command flags
	logLevel string
	indent   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jsonreq",
	Short: "Build APIJSON-style JSON requests from the command line",
	Long: `jsonreq assembles JSON requests for APIJSON-style query servers.

String values are percent-encoded the way the server expects, array requests
are wrapped and paginated, and search fields get their match patterns. Requests
come from the built-in samples or from presets declared in the config file.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&indent, "indent", false, "pretty-print JSON output")
}

// initializeApp loads the configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		if err := applyLogLevel(cfg, logLevel); err != nil {
			return err
		}
	}

	logger = setupLogger(cfg.Logging, os.Stderr)
	return nil
}

// applyLogLevel overrides the configured level with the --log-level flag
func applyLogLevel(cfg *config.Config, level string) error {
	if err := config.ValidateLogLevel(level); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	cfg.Logging.Level = level
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// Console format, colour only on a terminal
	color := cfg.Color && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()))
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// requestOptions returns the options every request built by a command uses
func requestOptions() []request.Option {
	opts := []request.Option{request.WithLogger(logger)}
	if cfg != nil && !cfg.Request.Encode {
		opts = append(opts, request.WithCodec(request.NopCodec{}))
	}
	return opts
}

// writeJSON writes v as a single JSON document followed by a newline
func writeJSON(w io.Writer, v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
