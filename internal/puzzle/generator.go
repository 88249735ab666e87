package puzzle

import (
	"fmt"
	"time"
)

// SequencePuzzle asks for the next number in a pattern.
type SequencePuzzle struct {
	Sequence   []int  `json:"sequence"`
	Answer     int    `json:"answer"`
	Hint       string `json:"hint"`
	Difficulty int    `json:"difficulty"`
}

// MathPuzzle is a multiple-choice arithmetic question. Choices always holds
// four values: the answer plus three distinct positive decoys.
type MathPuzzle struct {
	Expression string `json:"expression"`
	Choices    []int  `json:"choices"`
	Answer     int    `json:"answer"`
	Hint       string `json:"hint"`
	Difficulty int    `json:"difficulty"`
}

// WordPuzzle is a hidden-word game (hangman or wordle variant).
type WordPuzzle struct {
	Word       string `json:"word"`
	Hint       string `json:"hint"`
	Difficulty int    `json:"difficulty"`
}

// Set is one day's full puzzle chain. It is derived, never stored: the
// same date always regenerates the same Set.
type Set struct {
	Date       string         `json:"date"`
	Difficulty int            `json:"difficulty"`
	Sequence   SequencePuzzle `json:"sequence"`
	Math       MathPuzzle     `json:"math"`
	Hangman    WordPuzzle     `json:"hangman"`
	Wordle     WordPuzzle     `json:"wordle"`
}

// DifficultyFor maps a date's weekday to a difficulty: Sunday/Monday easy,
// Tuesday through Thursday medium, Friday/Saturday hard.
func DifficultyFor(date string) int {
	t, _ := time.Parse("2006-01-02", date)
	switch wd := int(t.Weekday()); {
	case wd <= 1:
		return 1
	case wd <= 4:
		return 2
	default:
		return 3
	}
}

// Generate builds the puzzle chain for a date. It is a pure, total
// function: no I/O, no error paths, and a fixed draw order on the shared
// stream (sequence first, then math, each consuming a fixed number of
// draws), so regeneration is stable.
func Generate(date string) Set {
	difficulty := DifficultyFor(date)
	rng := NewRNG(DateSeed(date, saltPuzzle))

	return Set{
		Date:       date,
		Difficulty: difficulty,
		Sequence:   generateSequence(rng, difficulty),
		Math:       generateMath(rng, difficulty),
		Hangman: WordPuzzle{
			Word:       HangmanWordFor(date, difficulty),
			Hint:       "Guess the hidden word one letter at a time",
			Difficulty: difficulty,
		},
		Wordle: WordPuzzle{
			Word:       WordleWordFor(date, difficulty),
			Hint:       "Find the five-letter word in six guesses",
			Difficulty: difficulty,
		},
	}
}

// generateSequence consumes exactly 2 draws at every difficulty.
func generateSequence(rng *RNG, difficulty int) SequencePuzzle {
	var seq []int
	var answer int
	var hint string

	switch difficulty {
	case 1: // arithmetic progression
		start := rng.IntN(10) + 1
		diff := rng.IntN(5) + 1
		seq = make([]int, 5)
		for i := range seq {
			seq[i] = start + i*diff
		}
		answer = start + 5*diff
		hint = fmt.Sprintf("Each number increases by %d", diff)
	case 2: // geometric progression
		start := rng.IntN(3) + 2
		ratio := rng.IntN(2) + 2
		seq = make([]int, 4)
		term := start
		for i := range seq {
			seq[i] = term
			term *= ratio
		}
		answer = term
		hint = fmt.Sprintf("Each number is multiplied by %d", ratio)
	default: // fibonacci-like
		a := rng.IntN(5) + 1
		b := rng.IntN(5) + 2
		seq = []int{a, b}
		for i := 2; i < 5; i++ {
			seq = append(seq, seq[i-1]+seq[i-2])
		}
		answer = seq[3] + seq[4]
		hint = "Each number is the sum of the previous two"
	}

	return SequencePuzzle{Sequence: seq, Answer: answer, Hint: hint, Difficulty: difficulty}
}

// generateMath consumes exactly 12 draws at every difficulty: 3 for the
// operands/operator, 6 for the decoys (offset+sign pairs), 3 for the
// shuffle. Decoy collisions are resolved by incrementing, not redrawing,
// so the draw budget never varies.
func generateMath(rng *RNG, difficulty int) MathPuzzle {
	var expression, hint string
	var answer int

	switch difficulty {
	case 1:
		a := rng.IntN(20) + 5
		b := rng.IntN(20) + 5
		op := rng.IntN(3)
		switch op {
		case 0:
			answer = a + b
			expression = fmt.Sprintf("%d + %d", a, b)
		case 1:
			answer = a - b
			expression = fmt.Sprintf("%d - %d", a, b)
		default:
			answer = a * b
			expression = fmt.Sprintf("%d × %d", a, b)
		}
		hint = "Compute " + expression
	case 2:
		a := rng.IntN(10) + 2
		b := rng.IntN(10) + 2
		c := rng.IntN(5) + 1
		answer = a*b + c
		expression = fmt.Sprintf("%d × %d + %d", a, b, c)
		hint = "Multiply first, then add (order of operations)"
	default:
		a := rng.IntN(5) + 2
		b := rng.IntN(5) + 2
		c := rng.IntN(10) + 1
		answer = (a + b) * c
		expression = fmt.Sprintf("(%d + %d) × %d", a, b, c)
		hint = "Solve the brackets first"
	}

	choices := append(decoys(rng, answer), answer)
	shuffle(rng, choices)

	return MathPuzzle{
		Expression: expression,
		Choices:    choices,
		Answer:     answer,
		Hint:       hint,
		Difficulty: difficulty,
	}
}

// decoys returns three distinct positive wrong answers near the correct
// one. Exactly 6 draws.
func decoys(rng *RNG, answer int) []int {
	wrongs := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		offset := rng.IntN(10) + 1
		wrong := answer - offset
		if rng.Float64() > 0.5 {
			wrong = answer + offset
		}
		for wrong <= 0 || wrong == answer || containsInt(wrongs, wrong) {
			wrong++
		}
		wrongs = append(wrongs, wrong)
	}
	return wrongs
}

// shuffle is a Fisher-Yates over the choices. Exactly len(vals)-1 draws.
func shuffle(rng *RNG, vals []int) {
	for i := len(vals) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		vals[i], vals[j] = vals[j], vals[i]
	}
}

func containsInt(vals []int, v int) bool {
	for _, x := range vals {
		if x == v {
			return true
		}
	}
	return false
}
