package satzbau

import (
	"regexp"
	"strings"
)

// stemRules turn a dictionary form into the stem that endings attach to.
// They run in order on the end of the word.
var stemRules = []struct {
	re  *regexp.Regexp
	rep string
}{
	// leise -> leis, dunkel -> dunkl
	{regexp.MustCompile(`e(l?)$`), "$1"},
	// teuer -> teur (diphthong + er)
	{regexp.MustCompile(`(eu|ei|au)er$`), "${1}r"},
	// hoch -> hoh, also at the end of phrases like "sehr hoch"
	{regexp.MustCompile(`hoch$`), "hoh"},
}

// adjectiveStem applies stemRules to base.
func adjectiveStem(base string) string {
	stem := base
	for _, r := range stemRules {
		stem = r.re.ReplaceAllString(stem, r.rep)
	}
	return stem
}

// Adjective is a declinable adjective. Adjectives have no inherent
// gender; a noun sets gender, case, number and article of its attributes
// when it renders them. Unset fields render as neuter nominative singular
// with a definite article.
//
// Adjective values are immutable; every mutator returns a new value.
type Adjective struct {
	stem string
	// synonyms is set for adjectives created by AdjectiveSynonyms.
	synonyms *Picker[Adjective]

	gender  Gender
	article ArticleType
	gcase   Case
	number  Number
}

// NewAdjective creates an adjective from its dictionary form, e.g. "klein".
func NewAdjective(base string) (Adjective, error) {
	base = NormalizeTemplate(base)
	if base == "" {
		return Adjective{}, templateError(base, ErrEmptyAdjective)
	}
	return Adjective{stem: adjectiveStem(base)}, nil
}

// MustAdjective is like NewAdjective but panics on error.
func MustAdjective(base string) Adjective {
	a, err := NewAdjective(base)
	if err != nil {
		panic(err)
	}
	return a
}

// Stem returns the normalized stem the endings attach to.
func (a Adjective) Stem() string {
	return a.stem
}

// Gender sets the gender of the noun the adjective describes.
func (a Adjective) Gender(g Gender) Adjective {
	a.gender = g
	return a
}

// Article sets the article preceding the adjective, which selects weak,
// mixed or strong endings.
func (a Adjective) Article(t ArticleType) Adjective {
	a.article = t
	return a
}

// Case sets the grammatical case.
func (a Adjective) Case(c Case) Adjective {
	a.gcase = c
	return a
}

// Nominative sets the nominative case.
func (a Adjective) Nominative() Adjective { return a.Case(Nominative) }

// Accusative sets the accusative case.
func (a Adjective) Accusative() Adjective { return a.Case(Accusative) }

// Dative sets the dative case.
func (a Adjective) Dative() Adjective { return a.Case(Dative) }

// Genitive sets the genitive case.
func (a Adjective) Genitive() Adjective   { return a.Case(Genitive) }

// Number sets singular or plural.
func (a Adjective) Number(n Number) Adjective {
	a.number = n
	return a
}

// Singular sets the singular.
func (a Adjective) Singular() Adjective { return a.Number(Singular) }

// Plural sets the plural.
func (a Adjective) Plural() Adjective { return a.Number(Plural) }

// Render returns the declined adjective.
func (a Adjective) Render() string {
	if a.synonyms != nil {
		return a.applyTo(a.synonyms.Next()).Render()
	}
	t, g, c, n := a.article, a.gender, a.gcase, a.number
	if t == 0 {
		t = Definite
	}
	if g == 0 {
		g = Neuter
	}
	if c == 0 {
		c = Nominative
	}
	if n == 0 {
		n = Singular
	}
	mustBeValid(g, c, n)
	return a.stem + adjectiveEnding(t, g, c, n)
}

func (a Adjective) String() string {
	return a.Render()
}

func (Adjective) isNode() {}

// applyTo copies the fields set on a onto other.
func (a Adjective) applyTo(other Adjective) Adjective {
	if a.article != 0 {
		other = other.Article(a.article)
	}
	if a.gender != 0 {
		other = other.Gender(a.gender)
	}
	if a.gcase != 0 {
		other = other.Case(a.gcase)
	}
	if a.number != 0 {
		other = other.Number(a.number)
	}
	return other
}

// Table renders the adjective in all cases and numbers for gender g,
// keeping the configured article.
func (a Adjective) Table(g Gender) DeclensionTable {
	a = a.Gender(g)
	table := DeclensionTable{Gender: g}
	for _, n := range Numbers {
		forms := table.forms(n)
		for _, c := range Cases {
			forms.set(c, a.Case(c).Number(n).Render())
		}
	}
	return table
}

// adjectiveEnding implements the weak/strong/mixed adjective endings.
// The checks are ordered: number first, then gender, then case and
// article type.
func adjectiveEnding(t ArticleType, g Gender, c Case, n Number) string {
	if n == Plural {
		if t != NoArticle || c == Dative {
			return "en"
		}
		if c == Nominative || c == Accusative {
			return "e"
		}
		return "er"
	}
	switch g {
	case Feminine:
		if c == Nominative || c == Accusative {
			return "e"
		}
		if t == NoArticle {
			return "er"
		}
		return "en"
	case Masculine:
		if c == Accusative || c == Genitive {
			return "en"
		}
		if c == Dative {
			if t == NoArticle {
				return "em"
			}
			return "en"
		}
		if t == Definite {
			return "e"
		}
		return "er"
	}
	if c == Genitive {
		return "en"
	}
	if c == Dative {
		if t == NoArticle {
			return "em"
		}
		return "en"
	}
	if t == Definite {
		return "e"
	}
	return "es"
}

// adjectivesFromWords wraps plain words as adjectives. Blank words are
// skipped.
func adjectivesFromWords(words []string) []Adjective {
	out := make([]Adjective, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		out = append(out, MustAdjective(w))
	}
	return out
}
