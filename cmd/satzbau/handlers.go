package main

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog/log"

	"github.com/cours-de-latin/satzbau"
)

// ---- JSON request and response types --------------------------------------

type phraseResponse struct {
	Text string `json:"text"`
}

type declensionResponse struct {
	Gender   string            `json:"gender"`
	Article  string            `json:"article"`
	Singular satzbau.CaseForms `json:"singular"`
	Plural   satzbau.CaseForms `json:"plural"`
}

type sentencePart struct {
	Text       *string  `json:"text,omitempty"`
	Noun       string   `json:"noun,omitempty"`
	Case       string   `json:"case,omitempty"`
	Number     string   `json:"number,omitempty"`
	Article    string   `json:"article,omitempty"`
	Count      *float64 `json:"count,omitempty"`
	Attributes []string `json:"attributes,omitempty"`
}

type sentenceRequest struct {
	Parts       []sentencePart `json:"parts"`
	Punctuation *string        `json:"punctuation,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// errNotFound marks lexicon keys that do not exist.
var errNotFound = errors.New("not found")

// ---- server ---------------------------------------------------------------

// server holds the lexicon the handlers resolve keys against. Synonym
// groups share their pickers, so every render runs under mu.
type server struct {
	mu  sync.Mutex
	lex *satzbau.Lexicon
}

// newServer returns a server for lex, which must not be nil.
func newServer(lex *satzbau.Lexicon) *server {
	return &server{lex: lex}
}

// setLexicon swaps the lexicon, e.g. after the file changed on disk.
func (s *server) setLexicon(lex *satzbau.Lexicon) {
	s.mu.Lock()
	s.lex = lex
	s.mu.Unlock()
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/noun", s.handleNoun)
	mux.HandleFunc("/api/declension", s.handleDeclension)
	mux.HandleFunc("/api/adjective", s.handleAdjective)
	mux.HandleFunc("/api/sentence", s.handleSentence)
	mux.HandleFunc("/api/lexicon", s.handleLexicon)
	return mux
}

// ---- helpers --------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeFailure maps library errors to status codes.
func writeFailure(w http.ResponseWriter, err error) {
	var te *satzbau.TemplateError
	switch {
	case errors.Is(err, errNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &te), errors.Is(err, satzbau.ErrInvalidEnum):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// isTemplate reports whether ref is a noun template rather than a key.
func isTemplate(ref string) bool {
	return strings.Contains(ref, ",")
}

// resolveNoun parses ref as a template or looks it up in lex.
func resolveNoun(lex *satzbau.Lexicon, ref string) (satzbau.Noun, error) {
	if isTemplate(ref) {
		return satzbau.NewNoun(ref)
	}
	if n, ok := lex.Noun(ref); ok {
		return n, nil
	}
	return satzbau.Noun{}, errors.Wrapf(errNotFound, "noun %q", ref)
}

// resolveAdjective looks ref up in lex and falls back to the plain word.
func resolveAdjective(lex *satzbau.Lexicon, ref string) (satzbau.Adjective, error) {
	if a, ok := lex.Adjective(ref); ok {
		return a, nil
	}
	return satzbau.NewAdjective(ref)
}

// nounOptions are the optional modifiers of a noun phrase. Empty strings
// keep the noun's defaults.
type nounOptions struct {
	Case       string
	Number     string
	Article    string
	Count      *float64
	Attributes []string
}

func (o nounOptions) apply(lex *satzbau.Lexicon, n satzbau.Noun) (satzbau.Noun, error) {
	if len(o.Attributes) > 0 {
		attrs := make([]satzbau.Adjective, 0, len(o.Attributes))
		for _, ref := range o.Attributes {
			a, err := resolveAdjective(lex, ref)
			if err != nil {
				return n, err
			}
			attrs = append(attrs, a)
		}
		n = n.Attributes(attrs...)
	}
	if o.Article != "" {
		t, err := satzbau.ParseArticleType(o.Article)
		if err != nil {
			return n, err
		}
		n = n.Article(t)
	}
	if o.Case != "" {
		c, err := satzbau.ParseCase(o.Case)
		if err != nil {
			return n, err
		}
		n = n.Case(c)
	}
	if o.Number != "" {
		num, err := satzbau.ParseNumber(o.Number)
		if err != nil {
			return n, err
		}
		n = n.Number(num)
	}
	if o.Count != nil {
		if math.IsNaN(*o.Count) || math.IsInf(*o.Count, 0) {
			return n, errors.Wrapf(satzbau.ErrInvalidEnum, "count %v", *o.Count)
		}
		n = n.Count(*o.Count)
	}
	return n, nil
}

func queryNounOptions(r *http.Request) (nounOptions, error) {
	q := r.URL.Query()
	o := nounOptions{
		Case:       q.Get("case"),
		Number:     q.Get("number"),
		Article:    q.Get("article"),
		Attributes: q["attr"],
	}
	if raw := q.Get("count"); raw != "" {
		c, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return o, errors.Wrapf(satzbau.ErrInvalidEnum, "count %q", raw)
		}
		o.Count = &c
	}
	return o, nil
}

// nounRef returns the template or key query parameter.
func nounRef(r *http.Request) (string, bool) {
	q := r.URL.Query()
	if t := q.Get("template"); t != "" {
		return t, true
	}
	if k := q.Get("key"); k != "" {
		return k, true
	}
	return "", false
}

// ---- handlers -------------------------------------------------------------

func (s *server) handleNoun(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	ref, ok := nounRef(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing 'template' or 'key' query parameter")
		return
	}
	opts, err := queryNounOptions(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := resolveNoun(s.lex, ref)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if n, err = opts.apply(s.lex, n); err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, phraseResponse{Text: n.Render()})
}

func (s *server) handleDeclension(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	ref, ok := nounRef(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing 'template' or 'key' query parameter")
		return
	}
	article := satzbau.Definite
	if raw := r.URL.Query().Get("article"); raw != "" {
		t, err := satzbau.ParseArticleType(raw)
		if err != nil {
			writeFailure(w, err)
			return
		}
		article = t
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := resolveNoun(s.lex, ref)
	if err != nil {
		writeFailure(w, err)
		return
	}
	table := n.Article(article).Table()
	writeJSON(w, http.StatusOK, declensionResponse{
		Gender:   table.Gender.String(),
		Article:  article.String(),
		Singular: table.Singular,
		Plural:   table.Plural,
	})
}

func (s *server) handleAdjective(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	ref := q.Get("word")
	if ref == "" {
		ref = q.Get("key")
	}
	if ref == "" {
		writeError(w, http.StatusBadRequest, "missing 'word' or 'key' query parameter")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, err := resolveAdjective(s.lex, ref)
	if err != nil {
		writeFailure(w, err)
		return
	}
	if raw := q.Get("gender"); raw != "" {
		g, err := satzbau.ParseGender(raw)
		if err != nil {
			writeFailure(w, err)
			return
		}
		a = a.Gender(g)
	}
	if raw := q.Get("article"); raw != "" {
		t, err := satzbau.ParseArticleType(raw)
		if err != nil {
			writeFailure(w, err)
			return
		}
		a = a.Article(t)
	}
	if raw := q.Get("case"); raw != "" {
		c, err := satzbau.ParseCase(raw)
		if err != nil {
			writeFailure(w, err)
			return
		}
		a = a.Case(c)
	}
	if raw := q.Get("number"); raw != "" {
		num, err := satzbau.ParseNumber(raw)
		if err != nil {
			writeFailure(w, err)
			return
		}
		a = a.Number(num)
	}
	writeJSON(w, http.StatusOK, phraseResponse{Text: a.Render()})
}

func (s *server) handleSentence(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var body sentenceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Parts) == 0 {
		writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'parts' array")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pieces := make([]any, 0, len(body.Parts))
	for i, p := range body.Parts {
		switch {
		case p.Text != nil && p.Noun == "":
			pieces = append(pieces, *p.Text)
		case p.Noun != "" && p.Text == nil:
			n, err := resolveNoun(s.lex, p.Noun)
			if err == nil {
				n, err = nounOptions{
					Case:       p.Case,
					Number:     p.Number,
					Article:    p.Article,
					Count:      p.Count,
					Attributes: p.Attributes,
				}.apply(s.lex, n)
			}
			if err != nil {
				writeFailure(w, errors.Wrapf(err, "part %d", i))
				return
			}
			pieces = append(pieces, n)
		default:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("part %d: exactly one of 'text' or 'noun' required", i))
			return
		}
	}
	text := satzbau.NewSentence(pieces...)
	if body.Punctuation != nil {
		text = text.Punctuation(*body.Punctuation)
	}
	writeJSON(w, http.StatusOK, phraseResponse{Text: text.Render(nil)})
}

func (s *server) handleLexicon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	s.mu.Lock()
	keys := s.lex.Keys()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, keys)
}
