// Package game drives one day's puzzle chain: phase machine, hint budget,
// timing, and the completion sequence of persist, streak recompute, and
// achievement unlock.
package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bluestock/dailypuzzle/internal/puzzle"
	"github.com/bluestock/dailypuzzle/internal/store"
	"github.com/bluestock/dailypuzzle/internal/streak"
)

// Phase is the session state.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhasePlaying     Phase = "playing"
	PhaseCompleted   Phase = "completed"
	PhaseAlreadyDone Phase = "already_done"
)

// Step is a position in the chain. Order is fixed.
type Step string

const (
	StepSequence Step = "sequence"
	StepMath     Step = "math"
	StepHangman  Step = "hangman"
	StepWordle   Step = "wordle"
)

// HintBudget is the number of hints available per day.
const HintBudget = 4

var (
	ErrNotPlaying  = errors.New("no puzzle in progress")
	ErrWrongStep   = errors.New("not the current step")
	ErrNoHintsLeft = errors.New("no hints remaining")
)

// Result is what Finish reports back to the caller.
type Result struct {
	Completion      store.Completion
	Streak          streak.Info
	NewAchievements []store.Achievement
}

// Session owns one calendar day for one player. A date can only be
// completed once: once the store holds a solved record for it, the
// session reports already_done and refuses to restart.
type Session struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	date       string
	set        puzzle.Set
	phase      Phase
	step       Step
	startedAt  time.Time
	hintsUsed  int
	hangmanWon bool
}

// NewSession derives today's puzzle set and checks whether the day is
// already done.
func NewSession(ctx context.Context, st store.Store, logger *slog.Logger, now func() time.Time) (*Session, error) {
	if now == nil {
		now = time.Now
	}
	date := now().Format("2006-01-02")

	s := &Session{
		store:  st,
		logger: logger,
		now:    now,
		date:   date,
		set:    puzzle.Generate(date),
		phase:  PhaseIdle,
	}

	existing, err := st.GetCompletion(ctx, date)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("loading today's completion: %w", err)
	case existing.Solved:
		s.phase = PhaseAlreadyDone
	}

	return s, nil
}

func (s *Session) Date() string        { return s.date }
func (s *Session) Phase() Phase        { return s.phase }
func (s *Session) Step() Step          { return s.step }
func (s *Session) Puzzles() puzzle.Set { return s.set }
func (s *Session) HintsUsed() int      { return s.hintsUsed }

// HintsRemaining reports the unused hint budget.
func (s *Session) HintsRemaining() int { return HintBudget - s.hintsUsed }

// progressState is the serialized part of a session that the step and
// start time don't already capture.
type progressState struct {
	HintsUsed  int  `json:"hintsUsed"`
	HangmanWon bool `json:"hangmanWon"`
}

// Start begins the chain, resuming saved progress for today if any
// exists: the step, start time, and spent hints all survive a restart,
// so quitting mid-chain doesn't reset the timer. Starting an
// already-completed day fails.
func (s *Session) Start(ctx context.Context) error {
	if s.phase == PhaseAlreadyDone || s.phase == PhaseCompleted {
		return fmt.Errorf("date %s already completed", s.date)
	}
	s.phase = PhasePlaying
	s.step = StepSequence
	s.startedAt = s.now()
	s.hintsUsed = 0

	p, err := s.store.GetProgress(ctx, s.date)
	switch {
	case errors.Is(err, store.ErrNotFound):
	case err != nil:
		return fmt.Errorf("loading progress: %w", err)
	default:
		var st progressState
		if json.Unmarshal([]byte(p.StateJSON), &st) == nil {
			s.step = Step(p.Step)
			s.startedAt = time.UnixMilli(p.StartedAt)
			s.hintsUsed = st.HintsUsed
			s.hangmanWon = st.HangmanWon
		}
	}

	s.saveProgress(ctx)
	return nil
}

// saveProgress is best effort: losing it only restarts the day's chain.
func (s *Session) saveProgress(ctx context.Context) {
	state, _ := json.Marshal(progressState{HintsUsed: s.hintsUsed, HangmanWon: s.hangmanWon})
	err := s.store.PutProgress(ctx, store.Progress{
		Date:      s.date,
		Step:      string(s.step),
		StateJSON: string(state),
		StartedAt: s.startedAt.UnixMilli(),
	})
	if err != nil {
		s.logger.Warn("saving progress failed", "date", s.date, "error", err)
	}
}

// UseHint spends one hint. The cost lands in the score via hintsUsed.
func (s *Session) UseHint() error {
	if s.phase != PhasePlaying {
		return ErrNotPlaying
	}
	if s.hintsUsed >= HintBudget {
		return ErrNoHintsLeft
	}
	s.hintsUsed++
	return nil
}

// SubmitSequence checks the sequence answer and advances on success.
func (s *Session) SubmitSequence(ctx context.Context, answer int) (bool, error) {
	if err := s.requireStep(StepSequence); err != nil {
		return false, err
	}
	if answer != s.set.Sequence.Answer {
		return false, nil
	}
	s.step = StepMath
	s.saveProgress(ctx)
	return true, nil
}

// SubmitMath checks the math answer and advances on success.
func (s *Session) SubmitMath(ctx context.Context, answer int) (bool, error) {
	if err := s.requireStep(StepMath); err != nil {
		return false, err
	}
	if answer != s.set.Math.Answer {
		return false, nil
	}
	s.step = StepHangman
	s.saveProgress(ctx)
	return true, nil
}

// FinishHangman records the hangman outcome. Either way the chain moves
// on: a lost hangman is tolerated, only the final word game gates the
// score multiplier.
func (s *Session) FinishHangman(ctx context.Context, won bool) error {
	if err := s.requireStep(StepHangman); err != nil {
		return err
	}
	s.hangmanWon = won
	s.step = StepWordle
	s.saveProgress(ctx)
	return nil
}

// FinishWordle ends the chain and runs the completion sequence. Order
// matters: the completion record must be durably written before the
// streak recompute reads history, and each achievement must be persisted
// before it is surfaced in the result.
func (s *Session) FinishWordle(ctx context.Context, won bool) (Result, error) {
	if err := s.requireStep(StepWordle); err != nil {
		return Result{}, err
	}
	return s.finish(ctx, won)
}

func (s *Session) requireStep(step Step) error {
	if s.phase != PhasePlaying {
		return ErrNotPlaying
	}
	if s.step != step {
		return fmt.Errorf("%w: at %s, expected %s", ErrWrongStep, s.step, step)
	}
	return nil
}

func (s *Session) finish(ctx context.Context, chainWon bool) (Result, error) {
	now := s.now()
	elapsed := int(now.Sub(s.startedAt) / time.Second)

	completion := store.Completion{
		Date:        s.date,
		Solved:      true,
		Score:       puzzle.FinalScore(s.set.Difficulty, elapsed, s.hintsUsed, chainWon),
		TimeTaken:   elapsed,
		Difficulty:  s.set.Difficulty,
		HintsUsed:   s.hintsUsed,
		CompletedAt: now.UnixMilli(),
	}

	// A failed write must surface: the day is not complete until the
	// record is durable.
	if err := s.store.PutCompletion(ctx, completion); err != nil {
		return Result{}, fmt.Errorf("persisting completion: %w", err)
	}

	history, err := s.store.ListCompletions(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("reading history: %w", err)
	}

	info := streak.Calculate(history, now)

	unlocked, err := s.store.ListAchievements(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("reading achievements: %w", err)
	}
	known := make(map[string]bool, len(unlocked))
	for _, a := range unlocked {
		known[a.ID] = true
	}

	var fresh []store.Achievement
	for _, a := range streak.CheckAchievements(info, history, now) {
		if known[a.ID] {
			continue
		}
		if err := s.store.PutAchievement(ctx, a); err != nil {
			return Result{}, fmt.Errorf("persisting achievement %s: %w", a.ID, err)
		}
		fresh = append(fresh, a)
		s.logger.Info("achievement unlocked", "id", a.ID, "name", a.Name)
	}

	s.phase = PhaseCompleted
	s.logger.Info("day completed",
		"date", s.date,
		"score", completion.Score,
		"time_taken", elapsed,
		"hints_used", s.hintsUsed,
		"hangman_won", s.hangmanWon,
		"chain_won", chainWon,
		"streak", info.Current,
	)

	return Result{Completion: completion, Streak: info, NewAchievements: fresh}, nil
}
