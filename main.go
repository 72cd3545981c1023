package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"marketboard/internal/catalog"
	"marketboard/internal/config"
	"marketboard/internal/extract"
	"marketboard/internal/fetcher"
	"marketboard/internal/pipeline"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "marketboard",
	Short: "Shows gold, currency and crypto prices scraped from a market listing page.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging.")
}

func main() {
	// Create context with cancellation for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newPipeline builds the fetch/extract/classify pipeline from configuration.
// A non-nil waiter makes every fetch wait for the upstream budget.
func newPipeline(cfg *config.Config, waiter fetcher.Waiter) (*pipeline.Pipeline, error) {
	c, err := buildCatalog(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	var source fetcher.Source = fetcher.NewPageSource(cfg.SourceURL, fetcher.ClientOptions{
		Timeout:   cfg.RequestTimeout,
		UserAgent: cfg.UserAgent,
	})
	if waiter != nil {
		source = fetcher.NewLimitedSource(source, waiter)
	}

	locator := extract.SelectorLocator{
		RowSelector:   cfg.RowSelector,
		NameSelector:  cfg.NameSelector,
		PriceSelector: cfg.PriceSelector,
	}

	return pipeline.New(source, locator, c), nil
}

// buildCatalog applies configured name lists over the built-in catalog
func buildCatalog(overrides config.CatalogConfig) (*catalog.Catalog, error) {
	defaults := catalog.Default()
	names := map[catalog.Category][]string{
		catalog.Gold:     overrides.Gold,
		catalog.Currency: overrides.Currency,
		catalog.Crypto:   overrides.Crypto,
	}

	for category, list := range names {
		if len(list) == 0 {
			names[category] = defaults.Names(category)
		}
	}

	c, err := catalog.New(names)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return c, nil
}
