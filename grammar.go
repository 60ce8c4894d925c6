// Package satzbau generates grammatically correct German noun phrases,
// adjective forms and sentences from compact templates.
//
// Nouns and adjectives are immutable values: every mutator returns a new
// value and leaves the receiver untouched, so a configured word can be
// reused as the base for any number of derived forms.
//
//	apple := satzbau.MustNoun("der apfel, die äpfel, des apfels")
//	apple.Dative().Count(5).String() // "fünf Äpfeln"
package satzbau

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Gender is the grammatical gender of a noun. The zero value means
// "not set".
type Gender uint8

const (
	Feminine Gender = iota + 1
	Neuter
	Masculine
)

// Case is the grammatical case. The zero value means "not set" and
// resolves to Nominative when rendering.
type Case uint8

const (
	Nominative Case = iota + 1
	Accusative
	Dative
	Genitive
)

// Number is the grammatical number. The zero value means "not set" and
// resolves to Singular when rendering.
type Number uint8

const (
	Singular Number = iota + 1
	Plural
)

// ArticleType selects the article emitted in front of a noun phrase.
// The zero value means "not set"; see Noun for how it is resolved.
type ArticleType uint8

const (
	Definite ArticleType = iota + 1
	Indefinite
	Negation
	NoArticle
)

// Cases lists all cases in table order.
var Cases = []Case{Nominative, Accusative, Dative, Genitive}

// Numbers lists both numbers in table order.
var Numbers = []Number{Singular, Plural}

func (g Gender) valid() bool      { return g >= Feminine && g <= Masculine }
func (c Case) valid() bool        { return c >= Nominative && c <= Genitive }
func (n Number) valid() bool      { return n == Singular || n == Plural }
func (a ArticleType) valid() bool { return a >= Definite && a <= NoArticle }

func (g Gender) String() string {
	switch g {
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	case Masculine:
		return "masculine"
	}
	return "unset"
}

func (c Case) String() string {
	switch c {
	case Nominative:
		return "nominative"
	case Accusative:
		return "accusative"
	case Dative:
		return "dative"
	case Genitive:
		return "genitive"
	}
	return "unset"
}

func (n Number) String() string {
	switch n {
	case Singular:
		return "singular"
	case Plural:
		return "plural"
	}
	return "unset"
}

func (a ArticleType) String() string {
	switch a {
	case Definite:
		return "definite"
	case Indefinite:
		return "indefinite"
	case Negation:
		return "negation"
	case NoArticle:
		return "none"
	}
	return "unset"
}

// ParseGender accepts "f", "n", "m", the long names and the definite
// nominative articles "die", "das", "der".
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "feminine", "die":
		return Feminine, nil
	case "n", "neuter", "das":
		return Neuter, nil
	case "m", "masculine", "der":
		return Masculine, nil
	}
	return 0, errors.Wrapf(ErrInvalidEnum, "gender %q", s)
}

// ParseCase accepts the long case names and their three-letter
// abbreviations (nom, acc, dat, gen).
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nominative", "nom":
		return Nominative, nil
	case "accusative", "acc":
		return Accusative, nil
	case "dative", "dat":
		return Dative, nil
	case "genitive", "gen":
		return Genitive, nil
	}
	return 0, errors.Wrapf(ErrInvalidEnum, "case %q", s)
}

// ParseNumber accepts "s", "p", "singular" and "plural".
func ParseNumber(s string) (Number, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "singular":
		return Singular, nil
	case "p", "plural":
		return Plural, nil
	}
	return 0, errors.Wrapf(ErrInvalidEnum, "number %q", s)
}

// ParseArticleType accepts "definite", "indefinite", "negation" and "none".
func ParseArticleType(s string) (ArticleType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "definite":
		return Definite, nil
	case "indefinite":
		return Indefinite, nil
	case "negation":
		return Negation, nil
	case "none":
		return NoArticle, nil
	}
	return 0, errors.Wrapf(ErrInvalidEnum, "article type %q", s)
}

// mustBeValid panics on out-of-domain enum values. They can only come
// from unchecked conversions such as Case(9), which is a programming error.
func mustBeValid(g Gender, c Case, n Number) {
	if !g.valid() {
		panic(errors.NewAssertionErrorWithWrappedErrf(ErrInvalidEnum, "gender %d", g))
	}
	if !c.valid() {
		panic(errors.NewAssertionErrorWithWrappedErrf(ErrInvalidEnum, "case %d", c))
	}
	if !n.valid() {
		panic(errors.NewAssertionErrorWithWrappedErrf(ErrInvalidEnum, "number %d", n))
	}
}
