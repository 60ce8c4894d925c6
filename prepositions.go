package satzbau

// Within renders "in" + dative, "in einem Haus".
func Within(n Noun) Text {
	return preposition("in ", n.Dative())
}

// Into renders "in" + accusative, "in ein Haus".
func Into(n Noun) Text {
	return preposition("in ", n.Accusative())
}

// To renders "zu" + dative, "zu einem Haus".
func To(n Noun) Text {
	return preposition("zu ", n.Dative())
}

// preposition leaves contraction to the enclosing text, so To(house)
// renders "zu dem Haus" on its own and "zum Haus" inside a sentence.
func preposition(p string, n Noun) Text {
	return Compose([]string{p}, []Node{n}).Formatting(Formatting{})
}
