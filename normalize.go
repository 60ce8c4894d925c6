package satzbau

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// germanLower folds case the way German orthography does.
var germanLower = cases.Lower(language.German)

// foldCase returns the lower case form of s used for suffix and
// lexicon matching.
func foldCase(s string) string {
	return germanLower.String(norm.NFC.String(s))
}

// NormalizeTemplate puts a word definition into composed Unicode form
// (so "a" + combining diaeresis and "ä" are the same letter) and trims
// surrounding whitespace.
func NormalizeTemplate(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// NormalizeKey returns the canonical lexicon lookup key for s.
func NormalizeKey(s string) string {
	return strings.TrimSpace(foldCase(s))
}

// Capitalize upper-cases the first letter of s and leaves the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var reWhitespace = regexp.MustCompile(`\s+`)

// CollapseWhitespace turns line breaks and runs of whitespace into
// single spaces and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// shortForms are the contractions applied to composed texts. Each rule
// replaces only its first occurrence.
var shortForms = []struct {
	re  *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`\bin dem\b`), "im"},
	{regexp.MustCompile(`\bin das\b`), "ins"},
	{regexp.MustCompile(`\bzu dem\b`), "zum"},
	{regexp.MustCompile(`\bzu der\b`), "zur"},
}

// beautify contracts preposition + article pairs, "in dem" -> "im".
func beautify(s string) string {
	for _, r := range shortForms {
		if loc := r.re.FindStringIndex(s); loc != nil {
			s = s[:loc[0]] + r.rep + s[loc[1]:]
		}
	}
	return s
}

// terminalPunctuation lists the characters replaced by a configured
// punctuation mark.
const terminalPunctuation = ".,:;!?"

// punctuate replaces a trailing punctuation character of s with p, or
// appends p if there is none.
func punctuate(s, p string) string {
	if r, size := utf8.DecodeLastRuneInString(s); size > 0 && strings.ContainsRune(terminalPunctuation, r) {
		s = s[:len(s)-size]
	}
	return s + p
}
