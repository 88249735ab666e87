package puzzle

// lossMultiplier is the partial credit applied when the chain finished on
// a failed word game.
const lossMultiplier = 0.7

// Score computes the raw score for a completed chain: base points per
// difficulty, a time bonus that decays to zero over five minutes, and a
// 50-point penalty per hint. Never negative.
func Score(difficulty, timeTakenSeconds, hintsUsed int) int {
	bonus := 300 - timeTakenSeconds
	if bonus < 0 {
		bonus = 0
	}
	s := difficulty*100 + bonus - hintsUsed*50
	if s < 0 {
		s = 0
	}
	return s
}

// FinalScore applies the chain outcome: a lost word game still ends the
// day, but at reduced credit (truncated toward zero).
func FinalScore(difficulty, timeTakenSeconds, hintsUsed int, chainWon bool) int {
	s := Score(difficulty, timeTakenSeconds, hintsUsed)
	if chainWon {
		return s
	}
	return int(float64(s) * lossMultiplier)
}
