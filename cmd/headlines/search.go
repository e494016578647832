// ABOUTME: One-shot search command printing article cards
// ABOUTME: Runs a single controller cycle and optionally opens one card in the browser

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/config"
	"github.com/harper/headlines/internal/feed"
	"github.com/harper/headlines/internal/status"
)

var searchCmd = &cobra.Command{
	Use:     "search <topic...>",
	Aliases: []string{"s"},
	Short:   "Search news and print the cards",
	Long: `Search news for a keyword and print one card per article: title,
source and publish date, description, and link.

With --tab the topic is matched against the navigation presets instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntP("open", "o", 0, "open the Nth card (1-based) in the browser")
	searchCmd.Flags().IntP("width", "w", 100, "truncate descriptions to this many columns")
	searchCmd.Flags().Bool("tab", false, "treat the topic as a navigation preset label or query")
	searchCmd.Flags().Bool("json", false, "print cards as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	openN, _ := cmd.Flags().GetInt("open")
	width, _ := cmd.Flags().GetInt("width")
	asTab, _ := cmd.Flags().GetBool("tab")
	asJSON, _ := cmd.Flags().GetBool("json")

	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}

	ctx, stop := interruptContext(cmd.Context())
	defer stop()

	logger := newLogger(cmd.ErrOrStderr())
	if !debug {
		logger.SetLevel(log.WarnLevel)
	}
	renderer := newRenderer(cfg)
	ctrl, board := feed.NewSession(feed.Options{
		Searcher:  searcher,
		Renderer:  renderer,
		SeedTopic: cfg.GetSeedTopic(),
		Logger:    logger,
	}, navPresets(cfg))

	topic := strings.Join(args, " ")
	var out feed.Outcome
	if asTab {
		item := ctrl.Nav().Match(topic)
		if item == nil {
			item = findLabel(ctrl.Nav(), topic)
		}
		if item == nil {
			return fmt.Errorf("no navigation preset matches %q", topic)
		}
		out = ctrl.ActivateTab(ctx, item)
	} else {
		out = ctrl.Submit(ctx, topic)
	}

	msg := ctrl.Status().Message()
	if out.Phase == feed.Failed {
		return errors.New(msg.Text)
	}

	cards := board.Cards()
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cards)
	}

	if msg.Visible {
		printStatus(cmd.ErrOrStderr(), msg)
	}
	printCards(cmd.OutOrStdout(), cards, width)

	if openN != 0 {
		if openN < 1 || openN > len(cards) {
			return fmt.Errorf("--open %d out of range (1-%d)", openN, len(cards))
		}
		var openErr error
		renderer.OnOpenError(func(_ string, err error) { openErr = err })
		cards[openN-1].Click()
		if openErr != nil {
			return fmt.Errorf("failed to open browser: %w", openErr)
		}
	}
	return nil
}

func findLabel(nav *feed.NavList, label string) *feed.NavItem {
	label = strings.TrimSpace(label)
	for _, it := range nav.Items() {
		if strings.EqualFold(it.Label, label) {
			return it
		}
	}
	return nil
}

func printStatus(w io.Writer, msg status.Message) {
	c := color.New(color.FgBlue)
	if msg.Severity == status.Error {
		c = color.New(color.FgRed)
	}
	c.Fprintln(w, msg.Text)
}

// printCards writes one block per card in the order rendered
func printCards(w io.Writer, cards []*card.Card, width int) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()
	link := color.New(color.FgCyan).SprintFunc()

	for i, c := range cards {
		if i > 0 {
			fmt.Fprintln(w, faint(strings.Repeat("─", config.SeparatorWidth)))
		}
		fmt.Fprintf(w, "%s %s\n", faint(fmt.Sprintf("%2d.", i+1)), bold(c.Title))
		fmt.Fprintf(w, "    %s\n", faint(c.Source))
		fmt.Fprintf(w, "    %s\n", truncate(c.Description, width-4))
		fmt.Fprintf(w, "    %s\n", link(c.URL))
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
