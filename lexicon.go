package satzbau

import (
	"maps"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"
)

// ErrUnknownWord reports a synonym group referring to a key that is not
// defined in the lexicon.
var ErrUnknownWord = errors.New("unknown word")

// lexiconFile is the TOML layout of a lexicon:
//
//	[nouns]
//	apfel = "der apfel, die äpfel, des apfels"
//
//	[adjectives]
//	rot = "rot"
//
//	[synonyms]
//	licht = ["licht", "lampe"]
type lexiconFile struct {
	Nouns      map[string]string   `toml:"nouns"`
	Adjectives map[string]string   `toml:"adjectives"`
	Synonyms   map[string][]string `toml:"synonyms"`
}

// Lexicon is a named vocabulary of nouns, adjectives and synonym groups.
// Keys are compared after NormalizeKey.
//
// Looking words up is safe for concurrent use, rendering synonym groups
// is not (see Picker).
type Lexicon struct {
	nouns             map[string]Noun
	adjectives        map[string]Adjective
	nounSynonyms      map[string]Noun
	adjectiveSynonyms map[string]Adjective
}

// LexiconKeys lists the keys of a lexicon by kind, sorted.
type LexiconKeys struct {
	Nouns      []string `json:"nouns"`
	Adjectives []string `json:"adjectives"`
	Synonyms   []string `json:"synonyms"`
}

// LoadLexicon reads a TOML lexicon from path.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open lexicon %s", path)
	}
	lex, err := ParseLexicon(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load lexicon %s", path)
	}
	return lex, nil
}

// ParseLexicon parses a TOML lexicon. A malformed noun template or
// adjective fails the whole lexicon with an error naming its key; the
// error wraps the *TemplateError.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var f lexiconFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(err, "decode lexicon")
	}
	for _, key := range md.Undecoded() {
		log.Warn().Str("key", key.String()).Msg("ignoring unknown lexicon entry")
	}

	l := &Lexicon{
		nouns:             make(map[string]Noun, len(f.Nouns)),
		adjectives:        make(map[string]Adjective, len(f.Adjectives)),
		nounSynonyms:      make(map[string]Noun),
		adjectiveSynonyms: make(map[string]Adjective),
	}

	for _, raw := range slices.Sorted(maps.Keys(f.Nouns)) {
		n, err := NewNoun(f.Nouns[raw])
		if err != nil {
			return nil, errors.Wrapf(err, "noun %q", raw)
		}
		addEntry(l.nouns, raw, n)
	}
	for _, raw := range slices.Sorted(maps.Keys(f.Adjectives)) {
		a, err := NewAdjective(f.Adjectives[raw])
		if err != nil {
			return nil, errors.Wrapf(err, "adjective %q", raw)
		}
		addEntry(l.adjectives, raw, a)
	}
	for _, raw := range slices.Sorted(maps.Keys(f.Synonyms)) {
		if err := l.addSynonyms(raw, f.Synonyms[raw]); err != nil {
			return nil, errors.Wrapf(err, "synonyms %q", raw)
		}
	}

	log.Debug().
		Int("nouns", len(l.nouns)).
		Int("adjectives", len(l.adjectives)).
		Int("synonyms", len(l.nounSynonyms)+len(l.adjectiveSynonyms)).
		Msg("lexicon parsed")
	return l, nil
}

// addEntry stores v under the normalized key. On a collision the first
// entry in key order wins.
func addEntry[T any](m map[string]T, raw string, v T) {
	key := NormalizeKey(raw)
	if _, ok := m[key]; ok {
		log.Warn().Str("key", raw).Msg("duplicate lexicon key, keeping first")
		return
	}
	m[key] = v
}

// addSynonyms builds a synonym group from refs, which must all name
// nouns or all name adjectives.
func (l *Lexicon) addSynonyms(raw string, refs []string) error {
	var (
		nouns      []Noun
		adjectives []Adjective
	)
	for _, ref := range refs {
		key := NormalizeKey(ref)
		if n, ok := l.nouns[key]; ok {
			nouns = append(nouns, n)
		} else if a, ok := l.adjectives[key]; ok {
			adjectives = append(adjectives, a)
		} else {
			return errors.Wrapf(ErrUnknownWord, "%q", ref)
		}
	}
	switch {
	case len(nouns) > 0 && len(adjectives) > 0:
		return errors.New("group mixes nouns and adjectives")
	case len(nouns) > 0:
		addEntry(l.nounSynonyms, raw, Synonyms(nouns...))
	case len(adjectives) > 0:
		addEntry(l.adjectiveSynonyms, raw, AdjectiveSynonyms(adjectives...))
	default:
		return errors.New("empty group")
	}
	return nil
}

// Noun looks up a noun or a noun synonym group.
func (l *Lexicon) Noun(key string) (Noun, bool) {
	key = NormalizeKey(key)
	if n, ok := l.nouns[key]; ok {
		return n, true
	}
	n, ok := l.nounSynonyms[key]
	return n, ok
}

// Adjective looks up an adjective or an adjective synonym group.
func (l *Lexicon) Adjective(key string) (Adjective, bool) {
	key = NormalizeKey(key)
	if a, ok := l.adjectives[key]; ok {
		return a, true
	}
	a, ok := l.adjectiveSynonyms[key]
	return a, ok
}

// NounSynonyms looks up a noun synonym group only.
func (l *Lexicon) NounSynonyms(key string) (Noun, bool) {
	n, ok := l.nounSynonyms[NormalizeKey(key)]
	return n, ok
}

// AdjectiveSynonyms looks up an adjective synonym group only.
func (l *Lexicon) AdjectiveSynonyms(key string) (Adjective, bool) {
	a, ok := l.adjectiveSynonyms[NormalizeKey(key)]
	return a, ok
}

// Keys returns all keys of the lexicon.
func (l *Lexicon) Keys() LexiconKeys {
	synonyms := slices.Collect(maps.Keys(l.nounSynonyms))
	synonyms = slices.AppendSeq(synonyms, maps.Keys(l.adjectiveSynonyms))
	slices.Sort(synonyms)
	return LexiconKeys{
		Nouns:      slices.Sorted(maps.Keys(l.nouns)),
		Adjectives: slices.Sorted(maps.Keys(l.adjectives)),
		Synonyms:   synonyms,
	}
}

// Len returns the number of entries of all kinds.
func (l *Lexicon) Len() int {
	return len(l.nouns) + len(l.adjectives) + len(l.nounSynonyms) + len(l.adjectiveSynonyms)
}
