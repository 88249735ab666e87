package puzzle

import "strings"

// Word game limits.
const (
	MaxWrongGuesses = 6 // hangman
	MaxWordGuesses  = 6 // wordle
	WordLength      = 5
)

// LetterMark is the per-letter verdict for a wordle guess.
type LetterMark uint8

const (
	MarkAbsent LetterMark = iota
	MarkPresent
	MarkCorrect
)

// EvaluateGuess marks each letter of guess against target: exact positions
// first, then remaining letters matched left-to-right against unused
// target letters, so duplicates are only credited as often as they occur.
func EvaluateGuess(guess, target string) []LetterMark {
	marks := make([]LetterMark, len(guess))
	used := make([]bool, len(target))

	for i := 0; i < len(guess) && i < len(target); i++ {
		if guess[i] == target[i] {
			marks[i] = MarkCorrect
			used[i] = true
		}
	}
	for i := 0; i < len(guess); i++ {
		if marks[i] == MarkCorrect {
			continue
		}
		for j := 0; j < len(target); j++ {
			if !used[j] && guess[i] == target[j] {
				marks[i] = MarkPresent
				used[j] = true
				break
			}
		}
	}
	return marks
}

// WrongGuessCount counts distinct guessed letters that do not occur in
// word. Repeating a wrong guess costs nothing extra.
func WrongGuessCount(word string, guessed []byte) int {
	wrong := 0
	for i, l := range guessed {
		if containsByte(guessed[:i], l) {
			continue
		}
		if !strings.ContainsRune(word, rune(l)) {
			wrong++
		}
	}
	return wrong
}

// WordRevealed reports whether every letter of word has been guessed.
func WordRevealed(word string, guessed []byte) bool {
	for i := 0; i < len(word); i++ {
		if !containsByte(guessed, word[i]) {
			return false
		}
	}
	return true
}

func containsByte(set []byte, b byte) bool {
	for _, x := range set {
		if x == b {
			return true
		}
	}
	return false
}
