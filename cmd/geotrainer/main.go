// Package main provides the CLI entrypoint for geotrainer.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/config"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/deck"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/kv"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/progress"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/rewards"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/session"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/stats"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/statsui"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/tui"
)

var (
	reviewDecksDir string
	reviewDecksURL string
	reviewHint     bool
	reviewCheer    bool

	statsPlain bool

	resetDeckID string

	initForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "geotrainer",
		Short:         "Spaced-repetition flashcard trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReviewCmd,
	}

	rootCmd.PersistentFlags().StringVar(&reviewDecksDir, "decks-dir", "", "directory holding deck documents")
	rootCmd.PersistentFlags().StringVar(&reviewDecksURL, "decks-url", "", "base URL serving deck documents")
	rootCmd.Flags().BoolVar(&reviewHint, "hint", true, "show hints by default")
	rootCmd.Flags().BoolVar(&reviewCheer, "cheer", false, "cheer mode (reward lines on correct answers)")

	rootCmd.AddCommand(newDecksCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

func loadReviewConfig(cmd *cobra.Command) (model.ReviewConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.ReviewConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "decks-dir", &reviewDecksDir, fileCfg.Review.DecksDir)
	applyStringConfig(cmd, "decks-url", &reviewDecksURL, fileCfg.Review.DecksURL)
	applyBoolConfig(cmd, "hint", &reviewHint, fileCfg.Review.Hint)
	applyBoolConfig(cmd, "cheer", &reviewCheer, fileCfg.Review.Cheer)

	cfg := model.ReviewConfig{
		DecksDir: reviewDecksDir,
		DecksURL: reviewDecksURL,
		Hint:     reviewHint,
		Cheer:    reviewCheer,
	}
	if cfg.DecksDir == "" {
		cfg.DecksDir = config.DefaultDecksDir()
	}
	return cfg, nil
}

func newSource(cfg model.ReviewConfig) *deck.Source {
	if cfg.DecksURL != "" {
		return deck.NewHTTPSource(cfg.DecksURL)
	}
	return deck.NewFileSource(cfg.DecksDir)
}

// loadContent loads the index and all decks. An index failure degrades
// to an empty menu with a message rather than an error.
func loadContent(ctx context.Context, source *deck.Source) ([]model.DeckMeta, []model.Deck, string) {
	metas, err := source.LoadIndex(ctx)
	if err != nil {
		return nil, nil, fmt.Sprintf("デッキのインデックスを読み込めませんでした: %v", err)
	}
	return metas, source.LoadDecks(ctx, metas), ""
}

func runReviewCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadReviewConfig(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()
	_, decks, indexError := loadContent(ctx, newSource(cfg))

	store, err := kv.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	sess := session.New(progress.NewStore(store), rewards.LoadWallet(ctx, store), store, rnd, time.Now)
	lastDeckID, _ := session.LastDeckID(ctx, store)

	m := tui.NewModel(sess, decks, cfg, lastDeckID, indexError)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newDecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decks",
		Short: "List decks with true card counts",
		Args:  cobra.NoArgs,
		RunE:  runDecksCmd,
	}
}

func runDecksCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadReviewConfig(cmd.Root())
	if err != nil {
		return err
	}
	ctx := context.Background()
	source := newSource(cfg)
	metas, err := source.LoadIndex(ctx)
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		logErrln("No decks found. Create samples with: geotrainer init")
		return fmt.Errorf("no decks found")
	}
	decks := source.LoadDecks(ctx, metas)
	for _, line := range stats.RenderDecks(metas, decks) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-deck mastery",
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain-text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadReviewConfig(cmd.Root())
	if err != nil {
		return err
	}
	ctx := context.Background()
	metas, decks, indexError := loadContent(ctx, newSource(cfg))
	if indexError != "" {
		return fmt.Errorf("%s", indexError)
	}

	store, err := kv.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	overviews := stats.BuildOverview(ctx, metas, decks, progress.NewStore(store))

	if statsPlain {
		for _, line := range stats.RenderOverview(overviews) {
			fmt.Println(line)
		}
		for _, overview := range overviews {
			fmt.Println()
			fmt.Println(overview.Meta.Title)
			for _, line := range stats.RenderBoxes(overview) {
				fmt.Println(line)
			}
		}
		return nil
	}

	program := tea.NewProgram(statsui.NewModel(overviews), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard mastery state for a deck",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
	cmd.Flags().StringVar(&resetDeckID, "deck", "", "deck id to reset")
	return cmd
}

func runResetCmd(_ *cobra.Command, _ []string) error {
	if resetDeckID == "" {
		return fmt.Errorf("--deck is required")
	}
	store, err := kv.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	progress.NewStore(store).Reset(context.Background(), resetDeckID)
	fmt.Printf("Reset progress for deck %q\n", resetDeckID)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write bundled sample decks",
		Args:  cobra.NoArgs,
		RunE:  runInitCmd,
	}
	cmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	return cmd
}

func runInitCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadReviewConfig(cmd.Root())
	if err != nil {
		return err
	}
	if err := deck.WriteSamples(cfg.DecksDir, initForce); err != nil {
		return err
	}
	fmt.Printf("Wrote sample decks to %s\n", cfg.DecksDir)
	return nil
}

func defaultConfigTemplate() string {
	return `# geotrainer configuration
# Uncomment a value to enable it. CLI flags override config values.

[review]
# decks-dir = ""    # Directory holding deck documents (default: XDG config)
# decks-url = ""    # Base URL serving deck documents (overrides decks-dir)
# hint = true       # Show hints by default
# cheer = false     # Cheer mode (reward lines on correct answers)
`
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
