package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivolee/stockdash/config"
	"github.com/ivolee/stockdash/internal/app"
	"github.com/ivolee/stockdash/internal/display"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(0, 3)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// InteractiveSession handles the interactive chat loop
type InteractiveSession struct {
	runtime  *app.Runtime
	renderer *display.Renderer
}

// runInteractiveMode wires the managed pipeline and starts the chat
// loop. Config file edits during the session rebuild the pipeline.
func runInteractiveMode(cfg *config.Config) error {
	ctx := context.Background()
	if err := initDebugger(cfg); err != nil {
		return err
	}

	runtime, err := newRuntime(ctx, cfg)
	if err != nil {
		return err
	}
	defer runtime.Close()

	session := &InteractiveSession{
		runtime:  runtime,
		renderer: display.NewRenderer(os.Stdout),
	}
	return session.Start(ctx)
}

// Start begins the interactive session
func (s *InteractiveSession) Start(ctx context.Context) error {
	s.showWelcome()

	for {
		var query string
		prompt := &survey.Input{
			Message: "Ask:",
			Help:    "Ask about stocks ('how is AAPL doing') or sectors ('top AI stocks'). Type 'exit' to quit.",
		}
		if err := survey.AskOne(prompt, &query); err != nil {
			// Ctrl-C or closed stdin ends the session cleanly.
			fmt.Println("\nGoodbye!")
			return nil
		}

		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}

		switch strings.ToLower(query) {
		case "exit", "quit", "q":
			fmt.Println("Goodbye!")
			return nil
		case "help", "h", "?":
			s.showHelp()
			continue
		case "config":
			current := s.runtime.Config()
			showConfig(&current)
			continue
		}

		result := s.runtime.Orchestrator().Run(ctx, query)
		s.renderer.RenderResult(&result)
		fmt.Println()
	}
}

func (s *InteractiveSession) showWelcome() {
	fmt.Println()
	fmt.Println(bannerStyle.Render("StockDash · Chat-Driven Stock Dashboard"))
	fmt.Println()
	fmt.Println(hintStyle.Render("Ask about specific stocks or whole sectors, for example:"))
	fmt.Println(hintStyle.Render("  · how is Apple doing"))
	fmt.Println(hintStyle.Render("  · compare AAPL and MSFT"))
	fmt.Println(hintStyle.Render("  · top AI stocks with sentiment"))
	fmt.Println(hintStyle.Render("Type 'help' for commands, 'exit' to quit."))
	fmt.Println()
}

func (s *InteractiveSession) showHelp() {
	fmt.Println("Commands:")
	fmt.Println("  <question>  - Any natural-language stock question")
	fmt.Println("  config      - Show current configuration")
	fmt.Println("  help        - Show this help")
	fmt.Println("  exit        - Quit")
	fmt.Println()
	fmt.Println("Up to 5 symbols are analyzed per query; extra symbols are dropped.")
}
