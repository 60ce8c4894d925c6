package satzbau

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// Node is a renderable piece of text. The implementations are Literal,
// Noun, Adjective, Variants, List, Text and Func.
//
// props are render time properties handed down to every Func in the
// tree; nodes that do not use them ignore them.
type Node interface {
	isNode()
}

// Render renders any node with props.
func Render(n Node, props any) string {
	return renderNode(n, props)
}

func renderNode(n Node, props any) string {
	switch v := n.(type) {
	case nil:
		return ""
	case Literal:
		return string(v)
	case Noun:
		return v.Render()
	case Adjective:
		return v.Render()
	case Variants:
		return v.Render(props)
	case List:
		return v.Render(props)
	case Text:
		return v.Render(props)
	case Func:
		if v == nil {
			return ""
		}
		return renderNode(v(props), props)
	}
	return ""
}

// Literal is text inserted verbatim.
type Literal string

func (Literal) isNode() {}

// Func produces a node from the render time properties.
type Func func(props any) Node

func (Func) isNode() {}

// List renders its items as an enumeration: "a, b und c".
type List struct {
	items []Node
	any   bool
	empty Node
}

// NewList returns a list joined with "und".
func NewList(items ...Node) List {
	return List{items: append([]Node(nil), items...)}
}

// NounList is NewList for nouns.
func NounList(nouns ...Noun) List {
	items := make([]Node, len(nouns))
	for i, n := range nouns {
		items[i] = n
	}
	return List{items: items}
}

// AdjectiveList is NewList for adjectives.
func AdjectiveList(adjectives ...Adjective) List {
	items := make([]Node, len(adjectives))
	for i, a := range adjectives {
		items[i] = a
	}
	return List{items: items}
}

// StringList is NewList for literal strings.
func StringList(items ...string) List {
	nodes := make([]Node, len(items))
	for i, s := range items {
		nodes[i] = Literal(s)
	}
	return List{items: nodes}
}

// Any joins the last item with "oder".
func (l List) Any() List {
	l.any = true
	return l
}

// Every joins the last item with "und".
func (l List) Every() List {
	l.any = false
	return l
}

// Empty sets what an empty list renders as; by default nothing.
func (l List) Empty(n Node) List {
	l.empty = n
	return l
}

// Len returns the number of items.
func (l List) Len() int {
	return len(l.items)
}

// Render joins the rendered items, or renders the empty node of an
// empty list.
func (l List) Render(props any) string {
	switch len(l.items) {
	case 0:
		return renderNode(l.empty, props)
	case 1:
		return renderNode(l.items[0], props)
	}
	head := make([]string, len(l.items)-1)
	for i, item := range l.items[:len(l.items)-1] {
		head[i] = renderNode(item, props)
	}
	last := renderNode(l.items[len(l.items)-1], props)
	connector := " und "
	if l.any {
		connector = " oder "
	}
	return strings.Join(head, ", ") + connector + last
}

func (l List) String() string {
	return l.Render(nil)
}

func (List) isNode() {}

// Formatting controls the clean up applied to a rendered Text.
type Formatting struct {
	// ShortForms contracts "in dem" to "im", "in das" to "ins",
	// "zu dem" to "zum" and "zu der" to "zur".
	ShortForms bool
	// TrimWhitespace collapses line breaks and whitespace runs to single
	// spaces and trims both ends.
	TrimWhitespace bool
}

// Capitalization selects whether a Text starts with a capital letter.
type Capitalization uint8

const (
	// CapitalizeNone leaves the text as rendered.
	CapitalizeNone Capitalization = iota
	// CapitalizeFirst upper cases the first letter.
	CapitalizeFirst
)

// Text interleaves literal parts with nodes. Like words, Text values are
// immutable and every mutator returns a new value.
type Text struct {
	literals       []string
	slots          []Node
	formatting     Formatting
	capitalization Capitalization
	punctuation    string
}

// Compose builds a text from literals and slots taken alternately,
// starting with literals[0]. Short forms and whitespace trimming are on.
func Compose(literals []string, slots []Node) Text {
	return Text{
		literals:   append([]string(nil), literals...),
		slots:      append([]Node(nil), slots...),
		formatting: Formatting{ShortForms: true, TrimWhitespace: true},
	}
}

// Sentence is Compose with a capitalized first letter and a final ".".
func Sentence(literals []string, slots []Node) Text {
	return Compose(literals, slots).Capitalization(CapitalizeFirst).Punctuation(".")
}

// NewText composes a text from pieces. Strings become literal parts.
// Nodes, functions returning a Node or a string (with or without props)
// and slices of nodes, nouns, adjectives or strings become slots, slices
// rendered as a List. Other scalars such as numbers are formatted with
// fmt.Sprint; any other function or slice panics.
//
//	NewText("ich sitze in ", plane.Dative().Specific())
func NewText(pieces ...any) Text {
	var (
		literals []string
		slots    []Node
		lit      strings.Builder
	)
	slot := func(n Node) {
		literals = append(literals, lit.String())
		lit.Reset()
		slots = append(slots, n)
	}
	for _, p := range pieces {
		switch v := p.(type) {
		case string:
			lit.WriteString(v)
		case []string:
			slot(StringList(v...))
		case []Node:
			slot(NewList(v...))
		case []Noun:
			slot(NounList(v...))
		case []Adjective:
			slot(AdjectiveList(v...))
		case func(any) Node:
			slot(Func(v))
		case func() Node:
			slot(Func(func(any) Node { return v() }))
		case func(any) string:
			slot(Func(func(props any) Node { return Literal(v(props)) }))
		case func() string:
			slot(Func(func(any) Node { return Literal(v()) }))
		case Node:
			slot(v)
		default:
			switch reflect.ValueOf(v).Kind() {
			case reflect.Func, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
				panic(errors.NewAssertionErrorWithWrappedErrf(ErrInvalidEnum, "text piece of type %T", v))
			}
			lit.WriteString(fmt.Sprint(v))
		}
	}
	literals = append(literals, lit.String())
	return Compose(literals, slots)
}

// NewSentence is NewText with a capitalized first letter and a final ".".
//
//	NewSentence("ich mag ", train.Plural()).String() // "Ich mag Züge."
func NewSentence(pieces ...any) Text {
	return NewText(pieces...).Capitalization(CapitalizeFirst).Punctuation(".")
}

// Formatting replaces the clean up rules of the text.
func (t Text) Formatting(f Formatting) Text {
	t.formatting = f
	return t
}

// Capitalization sets whether the text starts with a capital letter.
func (t Text) Capitalization(c Capitalization) Text {
	t.capitalization = c
	return t
}

// Punctuation makes the text end in p, replacing a trailing punctuation
// mark. An empty p leaves the end as it is.
func (t Text) Punctuation(p string) Text {
	t.punctuation = p
	return t
}

// Shout ends the text with "!".
func (t Text) Shout() Text { return t.Punctuation("!") }

// Ask ends the text with "?".
func (t Text) Ask() Text { return t.Punctuation("?") }

// Render renders the text, handing props to nested nodes.
func (t Text) Render(props any) string {
	var b strings.Builder
	for i := 0; i < len(t.literals) || i < len(t.slots); i++ {
		if i < len(t.literals) {
			b.WriteString(t.literals[i])
		}
		if i < len(t.slots) {
			b.WriteString(renderNode(t.slots[i], props))
		}
	}
	s := b.String()
	if t.formatting.ShortForms {
		s = beautify(s)
	}
	if t.formatting.TrimWhitespace {
		s = CollapseWhitespace(s)
	}
	if t.capitalization == CapitalizeFirst {
		s = Capitalize(s)
	}
	if t.punctuation != "" {
		s = punctuate(s, t.punctuation)
	}
	return s
}

func (t Text) String() string {
	return t.Render(nil)
}

func (Text) isNode() {}
