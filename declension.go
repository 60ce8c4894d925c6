package satzbau

// CaseForms holds one rendered form per case.
type CaseForms struct {
	Nominative string `json:"nominative"`
	Accusative string `json:"accusative"`
	Dative     string `json:"dative"`
	Genitive   string `json:"genitive"`
}

// Get returns the form for case c.
func (f CaseForms) Get(c Case) string {
	switch c {
	case Nominative:
		return f.Nominative
	case Accusative:
		return f.Accusative
	case Dative:
		return f.Dative
	case Genitive:
		return f.Genitive
	}
	return ""
}

func (f *CaseForms) set(c Case, s string) {
	switch c {
	case Nominative:
		f.Nominative = s
	case Accusative:
		f.Accusative = s
	case Dative:
		f.Dative = s
	case Genitive:
		f.Genitive = s
	}
}

// DeclensionTable holds all eight case/number forms of a word under one
// article configuration.
type DeclensionTable struct {
	Gender   Gender    `json:"-"`
	Singular CaseForms `json:"singular"`
	Plural   CaseForms `json:"plural"`
}

// Get returns the form for case c and number n.
func (t DeclensionTable) Get(c Case, n Number) string {
	if n == Plural {
		return t.Plural.Get(c)
	}
	return t.Singular.Get(c)
}

func (t *DeclensionTable) forms(n Number) *CaseForms {
	if n == Plural {
		return &t.Plural
	}
	return &t.Singular
}
