package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivolee/stockdash/config"
	"github.com/ivolee/stockdash/internal/agents"
	"github.com/ivolee/stockdash/internal/app"
	"github.com/ivolee/stockdash/internal/dataflows"
	"github.com/ivolee/stockdash/internal/debug"
	"github.com/ivolee/stockdash/internal/display"
	"github.com/ivolee/stockdash/internal/search"
	"github.com/ivolee/stockdash/internal/sentiment"
	"github.com/ivolee/stockdash/internal/server"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "stockdash",
		Short: "StockDash - Chat-Driven Stock Dashboard",
		Long: `StockDash turns natural-language questions into live stock dashboards.
Ask about specific symbols or whole sectors and get key metrics, valuation
radars and sentiment readouts backed by real market data.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debugFlag, _ := cmd.Flags().GetBool("debug"); debugFlag {
				cfg.Debug = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return cfg.EnsureDirectories()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: start the interactive chat loop
			return runInteractiveMode(cfg)
		},
	}

	rootCmd.AddCommand(newAskCmd(cfg))
	rootCmd.AddCommand(newQuoteCmd(cfg))
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newChartCmd(cfg))
	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newConfigCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode")

	return rootCmd
}

// buildPipeline wires the full query pipeline from one config snapshot.
// It is also the rebuild hook the runtime calls when config.json changes.
func buildPipeline(ctx context.Context, cfg config.Config) (*app.Pipeline, error) {
	completer, err := agents.NewChatCompleter(ctx, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	provider := dataflows.NewYahooFundamentalsClient(&cfg)
	resolver := dataflows.NewSymbolResolver(provider, cfg.Debug)
	fetcher := dataflows.NewMetricsFetcher(provider, resolver, cfg.Debug)
	analyzer := sentiment.NewAnalyzer(dataflows.NewNewsScraperClient(&cfg))

	orchestrator := agents.NewOrchestrator(
		agents.NewInterpreter(completer, cfg.Debug),
		agents.NewSectorExpander(completer, cfg.Debug),
		fetcher,
		analyzer,
		cfg.Debug,
	)
	return &app.Pipeline{Orchestrator: orchestrator, Fetcher: fetcher}, nil
}

// newRuntime backs long-lived commands with the managed config file, so
// edits to config.json rebuild the pipeline without a restart.
func newRuntime(ctx context.Context, cfg *config.Config) (*app.Runtime, error) {
	manager, err := config.NewManager(config.WithInitialConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	return app.NewRuntime(ctx, manager, buildPipeline)
}

// newAskCmd runs one query non-interactively.
func newAskCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [QUERY]",
		Short: "Run one natural-language query and print the dashboard",
		Long: `Run a single query through the pipeline and print the result.
Example: stockdash ask "compare AAPL and MSFT"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := initDebugger(cfg); err != nil {
				return err
			}

			pipeline, err := buildPipeline(ctx, *cfg)
			if err != nil {
				return err
			}

			query := ""
			for i, arg := range args {
				if i > 0 {
					query += " "
				}
				query += arg
			}

			result := pipeline.Orchestrator.Run(ctx, query)
			display.NewRenderer(os.Stdout).RenderResult(&result)
			return nil
		},
	}
}

// newQuoteCmd prints an intraday quote. Longport is preferred when
// credentials are configured; Yahoo is the fallback.
func newQuoteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "quote [SYMBOL]",
		Short: "Show an intraday quote for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbol := dataflows.NormalizeSymbol(args[0])
			if err := dataflows.ValidateSymbol(symbol); err != nil {
				return err
			}

			quote, err := fetchQuote(cmd.Context(), cfg, symbol)
			if err != nil {
				return fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
			}

			fmt.Printf("%s (%s)\n", quote.Symbol, quote.Exchange)
			if quote.Name != "" {
				fmt.Printf("  Name:   %s\n", quote.Name)
			}
			fmt.Printf("  Price:  %s %s\n", quote.Price.StringFixed(2), quote.Currency)
			fmt.Printf("  Open:   %s\n", quote.Open.StringFixed(2))
			fmt.Printf("  High:   %s\n", quote.High.StringFixed(2))
			fmt.Printf("  Low:    %s\n", quote.Low.StringFixed(2))
			fmt.Printf("  Volume: %d\n", quote.Volume)
			return nil
		},
	}
}

// fetchQuote tries Longport first when credentials exist, then Yahoo.
func fetchQuote(ctx context.Context, cfg *config.Config, symbol string) (*dataflows.Quote, error) {
	if cfg.LongportAppKey != "" {
		client, err := dataflows.NewLongportClient(cfg)
		if err == nil {
			defer client.Close()
			if quote, err := client.GetQuote(ctx, symbol); err == nil {
				return quote, nil
			}
		}
	}
	return dataflows.NewYahooQuoteClient(cfg).GetQuote(symbol)
}

// newSearchCmd looks up symbols by company name in the local catalog.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [NAME]",
		Short: "Find symbols by company name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := search.NewEngine(search.DefaultCatalog())
			if err != nil {
				return fmt.Errorf("failed to build search index: %w", err)
			}
			defer engine.Close()

			query := ""
			for i, arg := range args {
				if i > 0 {
					query += " "
				}
				query += arg
			}

			results, err := engine.Search(query, 10)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Println("No matches found.")
				return nil
			}

			for _, stock := range results {
				fmt.Printf("%-12s %-35s %-22s %s\n", stock.Symbol, stock.Name, stock.Sector, stock.Exchange)
			}
			return nil
		},
	}
}

// newChartCmd exports a symbol's valuation radar as a PNG file.
func newChartCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart [SYMBOL]",
		Short: "Export a valuation radar chart as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			symbol := dataflows.NormalizeSymbol(args[0])
			if err := dataflows.ValidateSymbol(symbol); err != nil {
				return err
			}

			provider := dataflows.NewYahooFundamentalsClient(cfg)
			resolver := dataflows.NewSymbolResolver(provider, cfg.Debug)
			fetcher := dataflows.NewMetricsFetcher(provider, resolver, cfg.Debug)

			record, err := fetcher.Fetch(ctx, symbol)
			if err != nil {
				return fmt.Errorf("failed to fetch data for %s: %w", symbol, err)
			}

			png, err := display.RenderRadarChart(record)
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				out = fmt.Sprintf("%s_radar.png", symbol)
			}
			if err := os.WriteFile(out, png, 0644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Printf("Chart written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("out", "", "Output file path (default SYMBOL_radar.png)")
	return cmd
}

// newServeCmd runs the HTTP API for external chat UIs.
func newServeCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the query pipeline over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := initDebugger(cfg); err != nil {
				return err
			}

			runtime, err := newRuntime(ctx, cfg)
			if err != nil {
				return err
			}
			defer runtime.Close()

			engine, err := search.NewEngine(search.DefaultCatalog())
			if err != nil {
				return fmt.Errorf("failed to build search index: %w", err)
			}
			defer engine.Close()

			port := runtime.Config().ServerPort
			if flagPort, _ := cmd.Flags().GetInt("port"); flagPort > 0 {
				port = flagPort
			}
			return server.New(runtime, engine, port).Run()
		},
	}
	cmd.Flags().Int("port", 0, "Listen port (overrides SERVER_PORT)")
	return cmd
}

// newConfigCmd creates the config command
func newConfigCmd(cfg *config.Config) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Manage StockDash configuration settings",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(cfg)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(cfg)
		},
	})

	return configCmd
}

// newVersionCmd creates the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("StockDash v1.0.0")
			fmt.Println("Chat-Driven Stock Dashboard")
		},
	}
}

func initDebugger(cfg *config.Config) error {
	debugger := debug.NewEinoDebugger(cfg)
	if err := debugger.Initialize(); err != nil {
		return err
	}
	if debugger.IsEnabled() {
		fmt.Printf("Eino debug interface: %s\n", debugger.GetDebugURL())
	}
	return nil
}

func showConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Printf("  Provider:      %s\n", cfg.LLMProvider)
	fmt.Printf("  Model:         %s\n", cfg.Model)
	fmt.Printf("  Backend URL:   %s\n", cfg.BackendURL)
	fmt.Printf("  Server port:   %d\n", cfg.ServerPort)
	fmt.Printf("  Cache enabled: %v\n", cfg.CacheEnabled)
	fmt.Printf("  Data dir:      %s\n", cfg.DataDir)
	fmt.Printf("  Results dir:   %s\n", cfg.ResultsDir)
	fmt.Printf("  Debug:         %v\n", cfg.Debug)

	key := cfg.OpenRouterAPIKey
	if cfg.LLMProvider == "deepseek" {
		key = cfg.DeepSeekAPIKey
	}
	if key != "" {
		fmt.Println("  API key:       configured")
	} else {
		fmt.Println("  API key:       missing")
	}
	if cfg.LongportAppKey != "" {
		fmt.Println("  Longport:      configured")
	} else {
		fmt.Println("  Longport:      not configured (Yahoo quotes only)")
	}
}

func validateConfig(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	key := cfg.OpenRouterAPIKey
	if cfg.LLMProvider == "deepseek" {
		key = cfg.DeepSeekAPIKey
	}
	if key == "" {
		fmt.Println("Warning: no API key configured; queries will fail until one is set.")
	}

	fmt.Println("Configuration is valid.")
	return nil
}
