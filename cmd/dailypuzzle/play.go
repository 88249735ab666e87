package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bluestock/dailypuzzle/internal/game"
	"github.com/bluestock/dailypuzzle/internal/puzzle"
	"github.com/bluestock/dailypuzzle/internal/store"
)

func cmdPlay(ctx context.Context, st store.Store, logger *slog.Logger, stdout io.Writer) error {
	sess, err := game.NewSession(ctx, st, logger, nil)
	if err != nil {
		return err
	}
	if sess.Phase() == game.PhaseAlreadyDone {
		fmt.Fprintf(stdout, "You already finished %s. Come back tomorrow!\n", sess.Date())
		return nil
	}

	if err := sess.Start(ctx); err != nil {
		return err
	}

	set := sess.Puzzles()
	in := bufio.NewScanner(os.Stdin)
	fmt.Fprintf(stdout, "Daily puzzle for %s (difficulty %d). Type 'hint' for a hint (%d available).\n\n",
		sess.Date(), set.Difficulty, sess.HintsRemaining())

	if sess.Step() != game.StepSequence {
		fmt.Fprintf(stdout, "Resuming at the %s step.\n\n", sess.Step())
	}

	if err := playSequence(ctx, sess, set.Sequence, in, stdout); err != nil {
		return err
	}
	if err := playMath(ctx, sess, set.Math, in, stdout); err != nil {
		return err
	}
	if sess.Step() == game.StepHangman {
		hangmanWon, err := playHangman(sess, set.Hangman, in, stdout)
		if err != nil {
			return err
		}
		if err := sess.FinishHangman(ctx, hangmanWon); err != nil {
			return err
		}
	}
	wordleWon, err := playWordle(sess, set.Wordle, in, stdout)
	if err != nil {
		return err
	}

	res, err := sess.FinishWordle(ctx, wordleWon)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nDone! Score: %d (time %ds, hints %d)\n",
		res.Completion.Score, res.Completion.TimeTaken, res.Completion.HintsUsed)
	fmt.Fprintf(stdout, "Streak: %d (longest %d, total days %d)\n",
		res.Streak.Current, res.Streak.Longest, res.Streak.TotalDays)
	for _, a := range res.NewAchievements {
		fmt.Fprintf(stdout, "Achievement unlocked: %s — %s\n", a.Name, a.Description)
	}
	return nil
}

// prompt reads one line, handling the shared 'hint' command. Returns the
// trimmed input and whether a hint was requested instead.
func prompt(sess *game.Session, hint string, in *bufio.Scanner, stdout io.Writer) (string, bool, error) {
	fmt.Fprint(stdout, "> ")
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", false, err
		}
		return "", false, io.EOF
	}
	line := strings.TrimSpace(in.Text())
	if strings.EqualFold(line, "hint") {
		if err := sess.UseHint(); err != nil {
			fmt.Fprintf(stdout, "%v\n", err)
		} else {
			fmt.Fprintf(stdout, "Hint: %s (%d left)\n", hint, sess.HintsRemaining())
		}
		return "", true, nil
	}
	return line, false, nil
}

func playSequence(ctx context.Context, sess *game.Session, p puzzle.SequencePuzzle, in *bufio.Scanner, stdout io.Writer) error {
	if sess.Step() != game.StepSequence {
		return nil // resumed past this step
	}
	fmt.Fprintf(stdout, "[1/4] What comes next? %v\n", p.Sequence)
	for {
		line, wasHint, err := prompt(sess, p.Hint, in, stdout)
		if err != nil {
			return err
		}
		if wasHint {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(stdout, "Enter a number.")
			continue
		}
		ok, err := sess.SubmitSequence(ctx, n)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(stdout, "Correct!")
			return nil
		}
		fmt.Fprintln(stdout, "Not quite, try again.")
	}
}

func playMath(ctx context.Context, sess *game.Session, p puzzle.MathPuzzle, in *bufio.Scanner, stdout io.Writer) error {
	if sess.Step() != game.StepMath {
		return nil
	}
	fmt.Fprintf(stdout, "\n[2/4] %s = ?  choices: %v\n", p.Expression, p.Choices)
	for {
		line, wasHint, err := prompt(sess, p.Hint, in, stdout)
		if err != nil {
			return err
		}
		if wasHint {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(stdout, "Enter one of the choices.")
			continue
		}
		ok, err := sess.SubmitMath(ctx, n)
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintln(stdout, "Correct!")
			return nil
		}
		fmt.Fprintln(stdout, "Wrong, try again.")
	}
}

func playHangman(sess *game.Session, p puzzle.WordPuzzle, in *bufio.Scanner, stdout io.Writer) (bool, error) {
	word := p.Word
	var guessed []byte

	fmt.Fprintf(stdout, "\n[3/4] Hangman: %d letters, %d wrong guesses allowed.\n", len(word), puzzle.MaxWrongGuesses)
	for {
		fmt.Fprintf(stdout, "%s  (wrong: %d/%d)\n", maskWord(word, guessed), puzzle.WrongGuessCount(word, guessed), puzzle.MaxWrongGuesses)

		line, wasHint, err := prompt(sess, p.Hint, in, stdout)
		if err != nil {
			return false, err
		}
		if wasHint {
			continue
		}
		line = strings.ToUpper(line)
		if len(line) != 1 || line[0] < 'A' || line[0] > 'Z' {
			fmt.Fprintln(stdout, "Guess a single letter.")
			continue
		}
		if strings.IndexByte(string(guessed), line[0]) >= 0 {
			fmt.Fprintf(stdout, "Already guessed %c.\n", line[0])
			continue
		}
		guessed = append(guessed, line[0])

		if puzzle.WordRevealed(word, guessed) {
			fmt.Fprintf(stdout, "The word was %s — you got it!\n", word)
			return true, nil
		}
		if puzzle.WrongGuessCount(word, guessed) >= puzzle.MaxWrongGuesses {
			fmt.Fprintf(stdout, "Out of guesses. The word was %s. Moving on.\n", word)
			return false, nil
		}
	}
}

func playWordle(sess *game.Session, p puzzle.WordPuzzle, in *bufio.Scanner, stdout io.Writer) (bool, error) {
	word := p.Word

	fmt.Fprintf(stdout, "\n[4/4] Wordle: %d guesses for a %d-letter word.\n", puzzle.MaxWordGuesses, puzzle.WordLength)
	for attempt := 1; attempt <= puzzle.MaxWordGuesses; {
		line, wasHint, err := prompt(sess, p.Hint, in, stdout)
		if err != nil {
			return false, err
		}
		if wasHint {
			continue
		}
		guess := strings.ToUpper(line)
		if len(guess) != puzzle.WordLength {
			fmt.Fprintf(stdout, "Guesses must be %d letters.\n", puzzle.WordLength)
			continue
		}

		marks := puzzle.EvaluateGuess(guess, word)
		fmt.Fprintf(stdout, "   %s\n", renderMarks(guess, marks))
		if guess == word {
			fmt.Fprintln(stdout, "Solved!")
			return true, nil
		}
		attempt++
	}
	fmt.Fprintf(stdout, "Out of guesses. The word was %s.\n", word)
	return false, nil
}

func maskWord(word string, guessed []byte) string {
	var b strings.Builder
	for i := 0; i < len(word); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if strings.IndexByte(string(guessed), word[i]) >= 0 {
			b.WriteByte(word[i])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func renderMarks(guess string, marks []puzzle.LetterMark) string {
	var b strings.Builder
	for i, m := range marks {
		switch m {
		case puzzle.MarkCorrect:
			fmt.Fprintf(&b, "[%c]", guess[i])
		case puzzle.MarkPresent:
			fmt.Fprintf(&b, "(%c)", guess[i])
		default:
			fmt.Fprintf(&b, " %c ", guess[i])
		}
	}
	return b.String()
}
