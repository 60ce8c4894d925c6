package satzbau

import (
	"math/rand/v2"
)

// Picker draws items at random without replacement. When every item has
// been drawn the pool is refilled. The first draw of a new round never
// repeats the last draw of the previous one, so with two or more items no
// item is returned twice in a row.
//
// A Picker is not safe for concurrent use.
type Picker[T any] struct {
	items     []T
	remaining []int
	last      int
	// held is the item kept out of the first draw of a round, -1 if none.
	held int
	intN func(int) int
}

// NewPicker returns a picker over a copy of items.
func NewPicker[T any](items []T) *Picker[T] {
	return newPicker(items, rand.IntN)
}

func newPicker[T any](items []T, intN func(int) int) *Picker[T] {
	return &Picker[T]{
		items: append([]T(nil), items...),
		last:  -1,
		held:  -1,
		intN:  intN,
	}
}

// Len returns the number of items the picker chooses from.
func (p *Picker[T]) Len() int {
	return len(p.items)
}

// Next returns the next item, or the zero value if there are no items.
func (p *Picker[T]) Next() T {
	if len(p.items) == 0 {
		var zero T
		return zero
	}
	if len(p.remaining) == 0 {
		p.refill()
	}
	i := p.intN(len(p.remaining))
	picked := p.remaining[i]
	p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	if p.held >= 0 {
		p.remaining = append(p.remaining, p.held)
		p.held = -1
	}
	p.last = picked
	return p.items[picked]
}

func (p *Picker[T]) refill() {
	p.remaining = make([]int, 0, len(p.items))
	for i := range p.items {
		if i == p.last && len(p.items) > 1 {
			p.held = i
			continue
		}
		p.remaining = append(p.remaining, i)
	}
}

// Synonyms returns a noun that renders as a different one of nouns each
// time, picked by a Picker. Case, number, article, attributes and count
// set on the returned noun are applied to the picked one:
//
//	light := Synonyms(MustNoun("das licht,-er,-es"), MustNoun("die lampe,-n,-"))
//	light.Dative().Plural().String() // "den Lichtern" or "den Lampen"
//
// All values derived from the returned noun share the picker.
func Synonyms(nouns ...Noun) Noun {
	return Noun{synonyms: NewPicker(nouns)}
}

// AdjectiveSynonyms is Synonyms for adjectives.
func AdjectiveSynonyms(adjectives ...Adjective) Adjective {
	return Adjective{synonyms: NewPicker(adjectives)}
}

// Variants is a node that renders a different one of its nodes each time.
type Variants struct {
	picker *Picker[Node]
}

// NewVariants returns a node picking from nodes.
func NewVariants(nodes ...Node) Variants {
	return Variants{picker: NewPicker(nodes)}
}

// VariantStrings is NewVariants for literal strings.
func VariantStrings(variants ...string) Variants {
	nodes := make([]Node, len(variants))
	for i, v := range variants {
		nodes[i] = Literal(v)
	}
	return NewVariants(nodes...)
}

// Render picks the next variant and renders it.
func (v Variants) Render(props any) string {
	if v.picker == nil {
		return ""
	}
	return renderNode(v.picker.Next(), props)
}

func (v Variants) String() string {
	return v.Render(nil)
}

func (Variants) isNode() {}
