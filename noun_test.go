package satzbau

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNounFromTemplate(t *testing.T) {
	see := MustNoun("der see, die seen, des sees")
	assert.Equal(t, "einen See", see.Accusative().Render())

	meer := MustNoun("das Meer,-e,-s")
	assert.Equal(t, "der Meere", meer.Genitive().Plural().Render())
}

// declensionCase lists the definite forms of a word, as found in any
// German grammar.
type declensionCase struct {
	nomSg, nomPl, accSg, accPl, genSg, genPl, datSg, datPl string
}

func TestNounDeclension(t *testing.T) {
	words := []declensionCase{
		{"der Berg", "die Berge", "den Berg", "die Berge", "des Berges", "der Berge", "dem Berg", "den Bergen"},
		{"das Bild", "die Bilder", "das Bild", "die Bilder", "des Bildes", "der Bilder", "dem Bild", "den Bildern"},
		{"die Kraft", "die Kräfte", "die Kraft", "die Kräfte", "der Kraft", "der Kräfte", "der Kraft", "den Kräften"},
		{"das Schaf", "die Schafe", "das Schaf", "die Schafe", "des Schafs", "der Schafe", "dem Schaf", "den Schafen"},
		{"der Boden", "die Böden", "den Boden", "die Böden", "des Bodens", "der Böden", "dem Boden", "den Böden"},
		{"die Mutter", "die Mütter", "die Mutter", "die Mütter", "der Mutter", "der Mütter", "der Mutter", "den Müttern"},
		{"der Jäger", "die Jäger", "den Jäger", "die Jäger", "des Jägers", "der Jäger", "dem Jäger", "den Jägern"},
		{"der Bär", "die Bären", "den Bären", "die Bären", "des Bären", "der Bären", "dem Bären", "den Bären"},
		{"die Meinung", "die Meinungen", "die Meinung", "die Meinungen", "der Meinung", "der Meinungen", "der Meinung", "den Meinungen"},
		{"der Staat", "die Staaten", "den Staat", "die Staaten", "des Staates", "der Staaten", "dem Staat", "den Staaten"},
		{"der Name", "die Namen", "den Namen", "die Namen", "des Namens", "der Namen", "dem Namen", "den Namen"},
		{"das Radio", "die Radios", "das Radio", "die Radios", "des Radios", "der Radios", "dem Radio", "den Radios"},
		{"die Kamera", "die Kameras", "die Kamera", "die Kameras", "der Kamera", "der Kameras", "der Kamera", "den Kameras"},
		{"das Herz", "die Herzen", "das Herz", "die Herzen", "des Herzen", "der Herzen", "dem Herzen", "den Herzen"},
	}
	for _, w := range words {
		t.Run(w.nomSg, func(t *testing.T) {
			word := MustNoun(fmt.Sprintf("%s, %s, %s", w.nomSg, w.nomPl, w.genSg)).Specific()
			assert.Equal(t, w.nomSg, word.Render())
			assert.Equal(t, w.accSg, word.Accusative().Render())
			assert.Equal(t, w.datSg, word.Dative().Render())
			assert.Equal(t, w.genSg, word.Genitive().Render())

			word = word.Plural()
			assert.Equal(t, w.nomPl, word.Render())
			assert.Equal(t, w.accPl, word.Accusative().Render())
			assert.Equal(t, w.datPl, word.Dative().Render())
			assert.Equal(t, w.genPl, word.Genitive().Render())
		})
	}
}

func TestNounTemplateErrors(t *testing.T) {
	tests := []struct {
		template string
		want     error
	}{
		{"auto", ErrWrongTemplateSyntax},
		{"", ErrWrongTemplateSyntax},
		{"das auto", ErrWrongTemplateSyntax},
		{"das auto, die autos", ErrWrongTemplateSyntax},
		{"das, -s, -s", ErrWrongTemplateSyntax},
		{"das auto, , -s", ErrWrongTemplateSyntax},
		{"dasauto,-s,-s", ErrUnknownGender},
		{"auto,autos,autos", ErrUnknownGender},
		{"dem auto,-s,-s", ErrUnknownGender},
	}
	for _, tt := range tests {
		_, err := NewNoun(tt.template)
		require.Error(t, err, tt.template)
		assert.True(t, errors.Is(err, tt.want), "%q: %v", tt.template, err)
		var te *TemplateError
		require.True(t, errors.As(err, &te), tt.template)
		assert.Equal(t, tt.template, te.Template)
	}
	assert.Panics(t, func() { MustNoun("auto") })
}

func TestNounRoundTrip(t *testing.T) {
	templates := map[string]string{
		"der see, die seen, des sees":        "See",
		"das Meer,-e,-s":                     "Meer",
		"die tür,-en,-":                      "Tür",
		"das bayerische Bier,-e,-es":         "Bier",
		"der apfel, die äpfel, des apfels":   "Apfel",
		"das Haus,häuser,-es":                "Haus",
		"die Kamera, die Kameras, der Kamera": "Kamera",
	}
	for tmpl, stem := range templates {
		n := MustNoun(tmpl).Article(NoArticle).Nominative().Singular()
		want := stem
		if n.stems.defining != nil {
			want = "bayerisches " + stem
		}
		assert.Equal(t, want, n.Render(), tmpl)
	}
}

func TestNounIsImmutable(t *testing.T) {
	base := MustNoun("der apfel, die äpfel, des apfels")
	a := base.Dative().Specific()
	b := base.Plural().AttributeWords("rot")
	assert.Equal(t, "ein Apfel", base.Render())
	assert.Equal(t, "dem Apfel", a.Render())
	assert.Equal(t, "die roten Äpfel", b.Render())
	assert.Equal(t, "ein Apfel", base.Render())
}

func TestNounArticleIdempotent(t *testing.T) {
	n := MustNoun("die geschichte,-n,-")
	for _, art := range []ArticleType{Definite, Indefinite, Negation, NoArticle} {
		assert.Equal(t, n.Article(art).Render(), n.Article(art).Article(art).Render())
	}
}

func TestNounAttributes(t *testing.T) {
	ocean := MustNoun("das Meer,-e,-s").AttributeWords("rot", "weit")
	assert.Equal(t, "ein rotes, weites Meer", ocean.Render())
	assert.Equal(t, "das rote, weite Meer", ocean.Specific().Render())

	stone := MustNoun("der stein,-e,-s").Attributes(MustAdjective("klein")).Specific()
	assert.Equal(t, "der kleine Stein", stone.Render())
	assert.Equal(t, "die kleinen Steine", stone.Plural().Render())
	assert.Equal(t, "kleine Steine", stone.Plural().Unspecific().Render())

	door := MustNoun("die tür,-en,-").AttributeWords("viel zu klein")
	assert.Equal(t, "der viel zu kleinen Tür", door.Genitive().Specific().Render())

	// attributes are replaced, not appended
	assert.Equal(t, "ein weites Meer", ocean.AttributeWords("weit").Render())
	assert.Equal(t, "ein Meer", ocean.Attributes().Render())
}

func TestNounDefiningAdjective(t *testing.T) {
	beer := MustNoun("das bayerische Bier,-e,-es").AttributeWords("groß")
	assert.Equal(t, "eines großen bayerischen Bieres", beer.Genitive().Render())
	assert.Equal(t, "eines großen, leckeren bayerischen Bieres",
		beer.AttributeWords("groß", "lecker").Genitive().Render())
}

func TestNounNegated(t *testing.T) {
	apple := MustNoun("der apfel, die äpfel, des apfels")
	assert.Equal(t, "kein Apfel", apple.Negated().Render())
	assert.Equal(t, "keine Äpfel", apple.Negated().Plural().Render())
	assert.Equal(t, "keiner Äpfel", apple.Negated().Plural().Genitive().Render())
}

func TestNounCount(t *testing.T) {
	apple := MustNoun("der apfel, die äpfel, des apfels")
	tests := []struct {
		name string
		noun Noun
		want string
	}{
		{"three", apple.Count(3), "drei Äpfel"},
		{"dative five", apple.Dative().Count(5), "fünf Äpfeln"},
		{"specific dative five", apple.Specific().Dative().Count(5), "den fünf Äpfeln"},
		{"unspecific nine", apple.Unspecific().Count(9), "neun Äpfel"},
		{"nine singular", apple.Count(9).Singular(), "ein Apfel"},
		{"nine specific", apple.Count(9).Specific(), "die neun Äpfel"},

		{"negative", apple.Count(-2), "kein Apfel"},
		{"plural negative", apple.Plural().Count(-2), "keine Äpfel"},
		{"specific negative", apple.Specific().Count(-2), "kein Apfel"},
		{"specific negative singular", apple.Specific().Count(-2).Singular(), "kein Apfel"},
		{"plural minus one", apple.Plural().Count(-1), "keine Äpfel"},

		{"zero", apple.Count(0), "kein Apfel"},
		{"zero plural", apple.Count(0).Plural(), "keine Äpfel"},
		{"zero specific", apple.Count(0).Specific(), "der Apfel"},
		{"specific zero", apple.Specific().Count(0), "kein Apfel"},
		{"zero plural one", apple.Count(0).Plural().Count(1), "ein Apfel"},
		{"zero plural genitive", apple.Count(0).Plural().Genitive(), "keiner Äpfel"},
		{"plural zero genitive", apple.Plural().Count(0).Genitive(), "keiner Äpfel"},
		{"zero genitive", apple.Count(0).Genitive(), "keines Apfels"},

		{"eleven", apple.Count(11), "11 Äpfel"},
		{"half", apple.Count(0.5), "0,5 Äpfel"},
		{"decimal", apple.Count(1.2), "1,2 Äpfel"},
		{"decimal singular", apple.Count(1.2).Singular(), "ein Apfel"},

		{"one", apple.Count(1), "ein Apfel"},
		{"one plural", apple.Count(1).Plural(), "die Äpfel"},
		{"plural one", apple.Plural().Count(1), "ein Apfel"},
		{"specific", apple.Specific(), "der Apfel"},
		{"specific one", apple.Specific().Count(1), "der Apfel"},

		{"zero with attribute", apple.Count(0).AttributeWords("klein"), "kein kleiner Apfel"},
		{"two with attribute", apple.Count(2).AttributeWords("rot"), "zwei rote Äpfel"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.noun.Render(), tt.name)
	}
	assert.Equal(t, apple.Negated().Render(), apple.Count(0).Render())
	assert.Equal(t, apple.Negated().Render(), apple.Count(-5).Render())
}

func TestIsNDeclension(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"Bär", true},
		{"Name", true},
		{"Affe", true},
		{"Mensch", true},
		{"Student", true},
		{"Polizist", true},
		{"Fotograf", true},
		{"Bauer", true},
		{"Architekt", true},
		{"Staat", false},
		{"STAAT", false},
		{"See", false},
		{"Berg", false},
		{"Apfel", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNDeclension(tt.word), tt.word)
	}
	// stable across calls
	assert.Equal(t, IsNDeclension("Staat"), IsNDeclension("Staat"))
}

func TestNounTable(t *testing.T) {
	table := MustNoun("der Bär, die Bären, des Bären").Specific().Table()
	assert.Equal(t, Masculine, table.Gender)
	assert.Equal(t, CaseForms{
		Nominative: "der Bär",
		Accusative: "den Bären",
		Dative:     "dem Bären",
		Genitive:   "des Bären",
	}, table.Singular)
	assert.Equal(t, "den Bären", table.Get(Dative, Plural))
}

func TestZeroNounRendersEmpty(t *testing.T) {
	var n Noun
	assert.Empty(t, n.Render())
	assert.Equal(t, Gender(0), n.Gender())
}

func TestNounNormalizesUnicode(t *testing.T) {
	// "a" followed by a combining diaeresis
	n := MustNoun("der apfel, die äpfel, des apfels").Plural()
	assert.Equal(t, "die Äpfel", n.Render())
}
