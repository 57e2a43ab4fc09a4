package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloudvec/cloudvec/v1/qdrant"
)

var (
	flagHost    string
	flagPort    int
	flagApiKey  string
	flagTLS     bool
	flagTimeout time.Duration
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cloudvec",
	Short: "Manage collections and vectors on a Qdrant server",
	Long: `cloudvec talks to a Qdrant vector search engine over its REST API.

The target server is taken from --host/--port flags, or from the
QDRANT_HOST and QDRANT_PORT environment variables when --host is
not given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", "", "Qdrant hostname (falls back to QDRANT_HOST)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "Qdrant REST port (falls back to QDRANT_PORT, default 6333)")
	rootCmd.PersistentFlags().StringVar(&flagApiKey, "api-key", "", "API key for secured deployments")
	rootCmd.PersistentFlags().BoolVar(&flagTLS, "tls", false, "use HTTPS instead of HTTP")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "per-request timeout (default 5s)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log client activity to stderr")

	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(upsertCmd)
	rootCmd.AddCommand(deletePointsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(demoCmd)
}

// Execute runs the CLI. Errors are printed to stderr here so main stays a
// one-liner.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorString(err))
		return err
	}
	return nil
}

// resolveConfig builds the client configuration from flags, falling back to
// QDRANT_* environment variables when no --host is given.
func resolveConfig() (*qdrant.Config, error) {
	var cfg *qdrant.Config
	if flagHost != "" {
		cfg = qdrant.FromHost(flagHost)
	} else {
		var err error
		cfg, err = qdrant.NewConfigFromEnv()
		if err != nil {
			return nil, err
		}
	}
	if flagPort != 0 {
		cfg = cfg.WithPort(flagPort)
	}
	if flagApiKey != "" {
		cfg = cfg.WithApiKey(flagApiKey)
	}
	if flagTLS {
		cfg = cfg.WithTLS(true)
	}
	if flagTimeout != 0 {
		cfg = cfg.WithTimeout(flagTimeout)
	}
	return cfg, nil
}

// connect resolves the configuration and opens a probed client.
func connect() (*qdrant.Client, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	log := zap.NewNop()
	if flagVerbose {
		devCfg := zap.NewDevelopmentConfig()
		log, err = devCfg.Build()
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
	}

	return qdrant.NewClient(qdrant.Params{Config: cfg, Logger: log})
}
