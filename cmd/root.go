package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jacklau/openclaw-search/internal/config"
	"github.com/jacklau/openclaw-search/internal/github"
	"github.com/jacklau/openclaw-search/internal/pipeline"
	"github.com/jacklau/openclaw-search/internal/render"
)

var (
	cfgFile string
	verbose bool
)

// errUsage reports that the command was invoked without a usable query. The
// message has already been printed to stdout.
var errUsage = errors.New("no query given")

const (
	usageLine      = "Usage: openclaw-search <query>"
	emptyQueryLine = "Please enter a query"
)

var rootCmd = &cobra.Command{
	Use:   "openclaw-search <query>",
	Short: "Search the OpenClaw repositories on GitHub",
	Long: `openclaw-search maps a free-text query to one of the configured OpenClaw
repositories, looks it up on GitHub, and lists matching top-level files.
When no keyword matches, every configured repository is looked up.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

// Execute runs the root command. Errors other than a missing query are
// printed to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errUsage) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default %s)", defaultConfigPath()))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".openclaw-search", "config.json")
	}
	return filepath.Join(home, ".openclaw-search", "config.json")
}

func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// loadConfig reads the config file. A .env file in the working directory, if
// present, is loaded first so ${VAR} references can resolve from it.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	path := cfgFile
	if path == "" {
		path = defaultConfigPath()
	}
	return config.Load(path)
}

// components holds initialized components for use by the search command.
type components struct {
	Config   *config.Config
	Client   *github.Client
	Pipeline *pipeline.Pipeline
	Logger   *slog.Logger
}

// initComponents creates all components from config.
func initComponents(cfg *config.Config, logger *slog.Logger) (*components, error) {
	timeout, err := cfg.GitHub.RequestTimeout()
	if err != nil {
		timeout = github.DefaultTimeout
	}

	client, err := github.NewClient(cfg.GitHub.APIURL, nil,
		github.WithTimeout(timeout),
		github.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("creating GitHub client: %w", err)
	}

	p := pipeline.New(pipeline.PipelineDeps{
		Searcher: client,
		Keywords: cfg.Keywords,
		Repos:    cfg.Repos,
		Logger:   logger,
	})

	return &components{
		Config:   cfg,
		Client:   client,
		Pipeline: p,
		Logger:   logger,
	}, nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, usageLine)
		return errUsage
	}

	query := normalizeQuery(args)
	if query == "" {
		fmt.Fprintln(out, emptyQueryLine)
		return errUsage
	}

	logger := setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	c, err := initComponents(cfg, logger)
	if err != nil {
		return fmt.Errorf("initializing components: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := c.Pipeline.Run(ctx, query)
	logger.Debug("search complete", "query", query, "results", len(results))

	fmt.Fprint(out, render.Report(query, results))
	return nil
}
