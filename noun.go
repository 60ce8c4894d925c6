package satzbau

import (
	"strings"
)

// nounStems is the parsed form of a noun template. It is shared by all
// values derived from the same NewNoun call and never modified.
type nounStems struct {
	gender             Gender
	nominativeSingular string
	nominativePlural   string
	genitiveSingular   string
	// defining is an adjective that is part of the noun itself, as in
	// "das bayerische Bier".
	defining *Adjective
}

// Noun is a declinable noun phrase: article, optional numeral,
// attributes, defining adjective and the declined noun.
//
// When no article type is set, a counted plural renders without article,
// other singulars with the indefinite and other plurals with the definite
// article.
//
// Noun values are immutable; every mutator returns a new value.
type Noun struct {
	stems *nounStems
	// synonyms is set for nouns created by Synonyms.
	synonyms *Picker[Noun]

	article    ArticleType
	gcase      Case
	number     Number
	count      float64
	hasCount   bool
	attributes []Adjective
}

// NewNoun parses a noun template of the form
//
//	"ARTICLE [ADJECTIVE] WORD, [ARTICLE] PLURAL, [ARTICLE] GENITIVE"
//
// where ARTICLE is der, die or das and gives the gender. PLURAL and
// GENITIVE are the nominative plural and genitive singular; when they
// start with "-" they are suffixes appended to WORD:
//
//	NewNoun("das auto, die autos, des autos")
//	NewNoun("das Meer,-e,-s")
//	NewNoun("der blaue Himmel,-,-s")
//
// The returned error is a *TemplateError.
func NewNoun(template string) (Noun, error) {
	template = NormalizeTemplate(template)
	segments := strings.Split(template, ",")
	if len(segments) < 3 {
		return Noun{}, templateError(template, ErrWrongTemplateSyntax)
	}

	words := strings.Fields(segments[0])
	if len(words) == 0 {
		return Noun{}, templateError(template, ErrWrongTemplateSyntax)
	}
	gender, ok := ParseGenderFromArticle(words[0])
	if !ok {
		return Noun{}, templateError(template, ErrUnknownGender)
	}
	if len(words) < 2 {
		return Noun{}, templateError(template, ErrWrongTemplateSyntax)
	}

	s := &nounStems{
		gender:             gender,
		nominativeSingular: words[len(words)-1],
	}
	if len(words) > 2 {
		adj, err := NewAdjective(strings.Join(words[1:len(words)-1], " "))
		if err != nil {
			return Noun{}, templateError(template, ErrWrongTemplateSyntax)
		}
		s.defining = &adj
	}

	plural, ok := lastWord(segments[1])
	if !ok {
		return Noun{}, templateError(template, ErrWrongTemplateSyntax)
	}
	genitive, ok := lastWord(segments[2])
	if !ok {
		return Noun{}, templateError(template, ErrWrongTemplateSyntax)
	}
	s.nominativePlural = expandSuffix(s.nominativeSingular, plural)
	s.genitiveSingular = expandSuffix(s.nominativeSingular, genitive)

	return Noun{stems: s}, nil
}

// MustNoun is like NewNoun but panics on error.
func MustNoun(template string) Noun {
	n, err := NewNoun(template)
	if err != nil {
		panic(err)
	}
	return n
}

// lastWord returns the last whitespace separated token of segment; a
// leading article is thereby ignored.
func lastWord(segment string) (string, bool) {
	fields := strings.Fields(segment)
	if len(fields) == 0 {
		return "", false
	}
	return fields[len(fields)-1], true
}

func expandSuffix(stem, form string) string {
	if suffix, ok := strings.CutPrefix(form, "-"); ok {
		return stem + suffix
	}
	return form
}

// Gender returns the gender given by the template article. It is zero
// for synonym groups, whose members may differ.
func (n Noun) Gender() Gender {
	if n.stems == nil {
		return 0
	}
	return n.stems.gender
}

// Article selects the article type; NoArticle renders the bare noun.
func (n Noun) Article(t ArticleType) Noun {
	n.article = t
	return n
}

// Specific selects the definite article (der, die, das).
func (n Noun) Specific() Noun { return n.Article(Definite) }

// Unspecific selects the indefinite article (ein, eine).
func (n Noun) Unspecific() Noun { return n.Article(Indefinite) }

// Negated selects the negation article (kein, keine).
func (n Noun) Negated() Noun { return n.Article(Negation) }

// Case sets the grammatical case.
func (n Noun) Case(c Case) Noun {
	n.gcase = c
	return n
}

// Nominative sets the nominative case.
func (n Noun) Nominative() Noun { return n.Case(Nominative) }

// Accusative sets the accusative case.
func (n Noun) Accusative() Noun { return n.Case(Accusative) }

// Dative sets the dative case.
func (n Noun) Dative() Noun { return n.Case(Dative) }

// Genitive sets the genitive case.
func (n Noun) Genitive() Noun   { return n.Case(Genitive) }

// Number sets singular or plural.
func (n Noun) Number(num Number) Noun {
	n.number = num
	return n
}

// Singular sets the singular.
func (n Noun) Singular() Noun { return n.Number(Singular) }

// Plural sets the plural.
func (n Noun) Plural() Noun { return n.Number(Plural) }

// Count sets how many of the noun there are. One yields the singular
// (with an indefinite instead of a negation article), zero and negative
// counts yield the negated noun, anything else the plural preceded by
// the spelled out number:
//
//	apple.Count(3)  // "drei Äpfel"
//	apple.Count(0)  // "kein Apfel"
//	apple.Count(11) // "11 Äpfel"
func (n Noun) Count(c float64) Noun {
	if c == 1 {
		if n.article == Negation {
			return n.Unspecific().Singular()
		}
		return n.Singular()
	}
	if c <= 0 {
		n.count, n.hasCount = 0, false
		return n.Negated()
	}
	n.number = Plural
	n.count, n.hasCount = c, true
	return n
}

// Attributes replaces the adjectives describing the noun. They are
// declined along with the noun.
func (n Noun) Attributes(adjectives ...Adjective) Noun {
	n.attributes = append([]Adjective(nil), adjectives...)
	return n
}

// AttributeWords is Attributes for plain adjective words; blank words
// are skipped.
func (n Noun) AttributeWords(words ...string) Noun {
	n.attributes = adjectivesFromWords(words)
	return n
}

// Render returns the noun phrase, e.g. "den fünf roten Äpfeln".
func (n Noun) Render() string {
	if n.synonyms != nil {
		return n.applyTo(n.synonyms.Next()).Render()
	}
	if n.stems == nil {
		return ""
	}

	num := n.number
	counted := n.hasCount && num != Singular && n.count != 0
	c := n.gcase
	if c == 0 {
		c = Nominative
	}
	if num == 0 {
		num = Singular
	}
	t := n.article
	if t == 0 {
		switch {
		case counted:
			t = NoArticle
		case num == Singular:
			t = Indefinite
		default:
			t = Definite
		}
	}
	g := n.stems.gender

	var words []string
	article := GenerateArticle(t, g, c, num)
	if article != "" {
		words = append(words, article)
	}
	// Adjectives after an article that is not there ("ein" has no
	// plural) take the endings of a bare noun: "kleine Steine".
	at := t
	if article == "" {
		at = NoArticle
	}
	if counted && n.count != 1 {
		words = append(words, FormatNumber(n.count))
	}
	if len(n.attributes) > 0 {
		attrs := make([]string, len(n.attributes))
		for i, a := range n.attributes {
			attrs[i] = a.Case(c).Article(at).Gender(g).Number(num).Render()
		}
		words = append(words, strings.Join(attrs, ", "))
	}
	if d := n.stems.defining; d != nil {
		words = append(words, d.Case(c).Article(at).Gender(g).Number(num).Render())
	}
	words = append(words, Capitalize(n.stems.decline(c, num)))
	return strings.Join(words, " ")
}

func (n Noun) String() string {
	return n.Render()
}

func (Noun) isNode() {}

// applyTo copies the configuration set on n onto other.
func (n Noun) applyTo(other Noun) Noun {
	if n.gcase != 0 {
		other = other.Case(n.gcase)
	}
	if n.number != 0 {
		other = other.Number(n.number)
	}
	if n.article != 0 {
		other = other.Article(n.article)
	}
	if len(n.attributes) > 0 {
		other = other.Attributes(n.attributes...)
	}
	if n.hasCount && n.count != 0 && n.number != Singular {
		other = other.Count(n.count)
	}
	return other
}

// Table renders the noun in all cases and numbers, keeping the
// configured article, attributes and count.
func (n Noun) Table() DeclensionTable {
	table := DeclensionTable{Gender: n.Gender()}
	for _, num := range Numbers {
		forms := table.forms(num)
		for _, c := range Cases {
			forms.set(c, n.Case(c).Number(num).Render())
		}
	}
	return table
}

// decline returns the bare noun for case c and number num.
func (s *nounStems) decline(c Case, num Number) string {
	if num == Plural {
		pl := s.nominativePlural
		if c == Dative && !strings.HasSuffix(pl, "s") && !strings.HasSuffix(pl, "n") {
			return pl + "n"
		}
		return pl
	}
	switch c {
	case Nominative:
		return s.nominativeSingular
	case Genitive:
		return s.genitiveSingular
	}
	switch s.gender {
	case Feminine:
		return s.nominativeSingular
	case Neuter:
		// "das Herz, dem Herzen" is the one neuter noun taking the plural
		// stem in the dative.
		if c == Dative && foldCase(s.nominativeSingular) == "herz" {
			return s.nominativePlural
		}
		return s.nominativeSingular
	}
	if IsNDeclension(s.nominativeSingular) {
		return s.nominativePlural
	}
	return s.nominativeSingular
}

// nDeclensionEndings mark masculine nouns of the n-declension.
var nDeclensionEndings = []string{
	"e",
	"et",
	"ad",
	"at",
	"it",
	"ik",
	"ot",
	"ut",
	"bär",
	"and",
	"ant",
	"aut",
	"ent",
	"eut",
	"ist",
	"nom",
	"urg",
	"isk",
	"und",
	"soph",
	"arch",
	"held",
	"graf",
	"graph",
	"herr",
	"bauer",
	"depp",
	"narr",
	"mensch",
	"prinz",
	"nachbar",
	"architekt",
}

// IsNDeclension reports whether a masculine noun takes its plural form in
// the accusative and dative singular ("der Bär, den Bären"). An ending
// counts only where it occurs for the first time at the very end of the
// word, so "Name" matches "-e" while "See" does not. "Staat" is excluded
// although it matches "-at".
func IsNDeclension(word string) bool {
	word = foldCase(word)
	if word == "staat" {
		return false
	}
	for _, ending := range nDeclensionEndings {
		if i := strings.Index(word, ending); i >= 0 && i == len(word)-len(ending) {
			return true
		}
	}
	return false
}
