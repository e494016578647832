// ABOUTME: Root Cobra command and global flags
// ABOUTME: Loads config, applies flag overrides, and launches the terminal viewer by default

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/headlines/internal/config"
	"github.com/harper/headlines/internal/feed"
	"github.com/harper/headlines/internal/status"
	"github.com/harper/headlines/internal/tui"
)

var (
	configPath   string
	apiKeyFlag   string
	providerFlag string
	logFileFlag  string
	debug        bool
	cfg          *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "headlines",
	Short: "News search viewer for the terminal, the browser, and AI agents",
	Long: `
██╗  ██╗███████╗ █████╗ ██████╗ ██╗     ██╗███╗   ██╗███████╗███████╗
██║  ██║██╔════╝██╔══██╗██╔══██╗██║     ██║████╗  ██║██╔════╝██╔════╝
███████║█████╗  ███████║██║  ██║██║     ██║██╔██╗ ██║█████╗  ███████╗
██╔══██║██╔══╝  ██╔══██║██║  ██║██║     ██║██║╚██╗██║██╔══╝  ╚════██║
██║  ██║███████╗██║  ██║██████╔╝███████╗██║██║ ╚████║███████╗███████║
╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝ ╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝╚══════╝

Search the news by keyword or preset topic.

Runs the interactive viewer by default. Use 'search' for one-shot output,
'serve' for the browser viewer, and 'mcp' for AI agents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(config.ExpandPath(configPath))
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if apiKeyFlag != "" {
			cfg.APIKey = apiKeyFlag
		}
		if providerFlag != "" {
			cfg.Provider = providerFlag
		}
		if logFileFlag != "" {
			cfg.LogFile = logFileFlag
		}
		return nil
	},
	RunE: runViewer,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ~/.config/headlines/config.json)")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "news provider API key (default: config file, then $"+config.APIKeyEnv+")")
	rootCmd.PersistentFlags().StringVar(&providerFlag, "provider", "", "search provider: newsapi or rss")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "log file for the interactive viewer and mcp server")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log request-level detail")
}

func runViewer(cmd *cobra.Command, args []string) error {
	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}

	logger, closeLog, err := fileLogger(cfg.GetLogFile())
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := interruptContext(cmd.Context())
	defer stop()

	board := &feed.Board{}
	renderer := newRenderer(cfg)
	renderer.OnOpenError(func(url string, err error) {
		logger.Warn("open failed", "url", url, "err", err)
	})

	ctrl := feed.New(feed.Options{
		Searcher:  searcher,
		Status:    status.New(),
		Container: board,
		Renderer:  renderer,
		Nav:       feed.NewNavList(navPresets(cfg)),
		SeedTopic: cfg.GetSeedTopic(),
		Logger:    logger,
	})

	p := tea.NewProgram(tui.NewViewer(ctx, ctrl, board), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// interruptContext cancels on Ctrl-C or SIGTERM
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
