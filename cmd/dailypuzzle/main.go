// Command dailypuzzle is the local game client: it plays the daily
// puzzle chain in the terminal, keeps history in a local SQLite file, and
// pushes summarized results to the sync service on demand.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bluestock/dailypuzzle/internal/config"
	"github.com/bluestock/dailypuzzle/internal/database"
	"github.com/bluestock/dailypuzzle/internal/heatmap"
	"github.com/bluestock/dailypuzzle/internal/puzzle"
	"github.com/bluestock/dailypuzzle/internal/store"
	"github.com/bluestock/dailypuzzle/internal/streak"
	"github.com/bluestock/dailypuzzle/internal/syncer"
)

const usage = `usage: dailypuzzle <command>

commands:
  today    print today's puzzle set
  play     play today's puzzle chain
  stats    show streak and achievements
  heatmap  show this year's activity grid
  sync     push unsynced results to the sync service
`

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr so command output stays clean.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	if dir := filepath.Dir(cfg.LocalDB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}

	db, err := database.Open(ctx, cfg.LocalDB)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}
	defer db.Close()

	st, err := store.NewSQLiteStore(ctx, db)
	if err != nil {
		return err
	}

	switch args[0] {
	case "today":
		return cmdToday(stdout)
	case "play":
		return cmdPlay(ctx, st, logger, stdout)
	case "stats":
		return cmdStats(ctx, st, stdout)
	case "heatmap":
		return cmdHeatmap(ctx, st, stdout)
	case "sync":
		return cmdSync(ctx, st, cfg, logger, stdout)
	default:
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func cmdToday(stdout io.Writer) error {
	set := puzzle.Generate(time.Now().Format("2006-01-02"))
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(set)
}

func cmdStats(ctx context.Context, st store.Store, stdout io.Writer) error {
	history, err := st.ListCompletions(ctx)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	info := streak.Calculate(history, time.Now())

	fmt.Fprintf(stdout, "current streak: %d\n", info.Current)
	fmt.Fprintf(stdout, "longest streak: %d\n", info.Longest)
	fmt.Fprintf(stdout, "days played:    %d\n", info.TotalDays)

	achievements, err := st.ListAchievements(ctx)
	if err != nil {
		return fmt.Errorf("reading achievements: %w", err)
	}
	if len(achievements) > 0 {
		fmt.Fprintln(stdout, "\nachievements:")
		for _, a := range achievements {
			fmt.Fprintf(stdout, "  %s — %s\n", a.Name, a.Description)
		}
	}
	return nil
}

var intensityGlyphs = [5]rune{'·', '░', '▒', '▓', '█'}

func cmdHeatmap(ctx context.Context, st store.Store, stdout io.Writer) error {
	history, err := st.ListCompletions(ctx)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	proj := heatmap.Project(history, time.Now())

	// Month labels above their starting week column.
	labels := make([]rune, len(proj.Weeks)*2)
	for i := range labels {
		labels[i] = ' '
	}
	for _, m := range proj.Months {
		for i, r := range m.Name {
			pos := m.WeekIndex*2 + i
			if pos < len(labels) {
				labels[pos] = r
			}
		}
	}
	fmt.Fprintln(stdout, string(labels))

	for row := 0; row < 7; row++ {
		for _, week := range proj.Weeks {
			if d := week.Days[row]; d != nil {
				fmt.Fprintf(stdout, "%c ", intensityGlyphs[d.Intensity])
			} else {
				fmt.Fprint(stdout, "  ")
			}
		}
		fmt.Fprintln(stdout)
	}
	return nil
}

func cmdSync(ctx context.Context, st store.Store, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	rec := syncer.New(st, cfg.SyncURL, cfg.SyncTimeout, logger)
	res, err := rec.Reconcile(ctx)
	if err != nil {
		return err
	}
	if res.Failed {
		fmt.Fprintln(stdout, "sync failed; will retry next time")
		return nil
	}
	fmt.Fprintf(stdout, "synced %d record(s)\n", res.Synced)
	return nil
}
