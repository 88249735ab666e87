package puzzle

// Word pools for the hidden-word games, fixed per difficulty. All entries
// are 5 letters, uppercase. Changing a list (or its order) changes which
// word a given date maps to, so treat these as frozen.
var hangmanWords = map[int][]string{
	1: {"APPLE", "BRAIN", "CHAIR", "DANCE", "EARTH", "FLAME", "GRACE", "HAPPY", "LIGHT", "MOUSE", "NIGHT", "OCEAN", "PIANO", "RIVER", "SMILE", "TABLE", "WATER", "YOUNG"},
	2: {"BLOOM", "CHEST", "DRIVE", "FRESH", "GLOBE", "HEART", "LUNAR", "MAGIC", "NERVE", "OLIVE", "PIXEL", "QUIET", "RELAY", "SPINE", "TREND", "VIVID", "WINDY", "FROST"},
	3: {"CRYPT", "DWARF", "EPOCH", "GLYPH", "HUMID", "JAZZY", "LYMPH", "MYRRH", "NYMPH", "PROXY", "RUGBY", "SYNTH", "TRYST", "VYING", "WALTZ", "ZESTY", "BLITZ", "EXPEL"},
}

var wordleWords = map[int][]string{
	1: {"APPLE", "BRAIN", "CHAIR", "DANCE", "EARTH", "FLAME", "GRACE", "HAPPY", "LIGHT", "MOUSE", "NIGHT", "OCEAN", "PIANO", "RIVER", "SMILE", "TABLE", "WATER", "YOUNG", "BREAD", "CLOUD", "DREAM", "FLOOR", "GIANT", "HEART", "INPUT"},
	2: {"BLOOM", "CHEST", "DRIVE", "FRESH", "GLOBE", "LUNAR", "MAGIC", "NERVE", "OLIVE", "PIXEL", "QUIET", "RELAY", "SPINE", "TREND", "VIVID", "WINDY", "FROST", "BLAND", "CRISP", "DELTA", "EMBER", "FLOCK", "GROAN", "HOVER", "IVORY"},
	3: {"CRYPT", "DWARF", "EPOCH", "GLYPH", "JAZZY", "LYMPH", "MYRRH", "NYMPH", "PROXY", "RUGBY", "SYNTH", "TRYST", "VYING", "WALTZ", "ZESTY", "BLITZ", "EXPEL", "APHID", "BRISK", "CHURN", "DRAWL", "EVOKE", "FJORD", "GLITZ", "KNACK"},
}

// wordFor picks a word by hashing date+salt directly. This is deliberately
// independent of the shared Mulberry32 stream: the word games key off their
// own hash so they stay stable even if the arithmetic generators change
// their draw counts.
func wordFor(date, salt string, difficulty int, pool map[int][]string) string {
	list, ok := pool[difficulty]
	if !ok {
		list = pool[1]
	}
	return list[int(DateSeed(date, salt))%len(list)]
}

// HangmanWordFor returns the hangman word for a date and difficulty.
func HangmanWordFor(date string, difficulty int) string {
	return wordFor(date, saltHangman, difficulty, hangmanWords)
}

// WordleWordFor returns the wordle word for a date and difficulty.
func WordleWordFor(date string, difficulty int) string {
	return wordFor(date, saltWordle, difficulty, wordleWords)
}
