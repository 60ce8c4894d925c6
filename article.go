package satzbau

import (
	"github.com/cockroachdb/errors"
)

// ParseGenderFromArticle resolves the gender of a definite nominative
// singular article. Only the exact lowercase forms "die", "das" and "der"
// are recognized; ok is false for anything else.
func ParseGenderFromArticle(article string) (g Gender, ok bool) {
	switch article {
	case "die":
		return Feminine, true
	case "das":
		return Neuter, true
	case "der":
		return Masculine, true
	}
	return 0, false
}

// GenerateArticle returns the article for the given configuration, or
// the empty string where German has none (NoArticle, indefinite plural).
func GenerateArticle(t ArticleType, g Gender, c Case, n Number) string {
	mustBeValid(g, c, n)
	switch t {
	case NoArticle:
		return ""
	case Definite:
		return definiteArticle(g, c, n)
	case Indefinite:
		return indefiniteArticle(g, c, n)
	case Negation:
		return negationArticle(g, c, n)
	}
	panic(errors.NewAssertionErrorWithWrappedErrf(ErrInvalidEnum, "article type %d", t))
}

func definiteArticle(g Gender, c Case, n Number) string {
	if n == Plural {
		switch c {
		case Nominative, Accusative:
			return "die"
		case Genitive:
			return "der"
		}
		return "den"
	}
	switch g {
	case Feminine:
		if c == Nominative || c == Accusative {
			return "die"
		}
		return "der"
	case Neuter:
		switch c {
		case Nominative, Accusative:
			return "das"
		case Dative:
			return "dem"
		}
		return "des"
	}
	switch c {
	case Nominative:
		return "der"
	case Accusative:
		return "den"
	case Dative:
		return "dem"
	}
	return "des"
}

func indefiniteArticle(g Gender, c Case, n Number) string {
	if n == Plural {
		return ""
	}
	switch g {
	case Feminine:
		if c == Nominative || c == Accusative {
			return "eine"
		}
		return "einer"
	case Neuter:
		switch c {
		case Nominative, Accusative:
			return "ein"
		case Dative:
			return "einem"
		}
		return "eines"
	}
	switch c {
	case Nominative:
		return "ein"
	case Accusative:
		return "einen"
	case Dative:
		return "einem"
	}
	return "eines"
}

// negationArticle is "k" + the indefinite article in the singular. The
// plural has its own forms since there is no indefinite plural to derive
// them from.
func negationArticle(g Gender, c Case, n Number) string {
	if n == Singular {
		return "k" + indefiniteArticle(g, c, n)
	}
	switch c {
	case Nominative, Accusative:
		return "keine"
	case Genitive:
		return "keiner"
	}
	return "keinen"
}
