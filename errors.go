package satzbau

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrWrongTemplateSyntax reports a noun template without the three
	// comma separated segments or without a word after the article.
	ErrWrongTemplateSyntax = errors.New("wrong template syntax")

	// ErrUnknownGender reports a noun template whose first token is not
	// one of "der", "die", "das".
	ErrUnknownGender = errors.New("could not detect gender")

	// ErrEmptyAdjective reports an adjective constructed from a blank string.
	ErrEmptyAdjective = errors.New("empty adjective")

	// ErrInvalidEnum reports a grammatical category outside its domain.
	ErrInvalidEnum = errors.New("invalid enum value")
)

// TemplateError is returned when a word definition cannot be parsed.
// Err is one of ErrWrongTemplateSyntax, ErrUnknownGender or
// ErrEmptyAdjective.
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %q: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

func templateError(template string, err error) error {
	return errors.WithStack(&TemplateError{Template: template, Err: err})
}
