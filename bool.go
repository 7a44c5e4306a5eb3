package textscan

// boolWords is the fixed table of recognized boolean words. Matching is a
// table lookup on the longest candidate first, never inferred from prefixes.
var boolWords = []struct {
	word string
	val  bool
}{
	{"false", false},
	{"true", true},
	{"yes", true},
	{"off", false},
	{"on", true},
	{"no", false},
}

// ParseBool converts the leading boolean word of b after optional whitespace.
//
// Recognized words are true, false, yes, no, on and off, compared ASCII
// case-insensitively. next points just past the matched word.
func ParseBool(b []byte) (bool, int, error) {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}

	for _, w := range boolWords {
		if matchWordFold(b[i:], w.word) {
			return w.val, i + len(w.word), nil
		}
	}
	return false, 0, noConversionError("ParseBool", b)
}

// matchWordFold reports whether b starts with word, ignoring ASCII case.
func matchWordFold(b []byte, word string) bool {
	if len(b) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if b[i]|0x20 != word[i] {
			return false
		}
	}
	return true
}
