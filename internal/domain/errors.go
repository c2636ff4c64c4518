package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors are raised by the layers around the analysis code.
// The analysis functions themselves are total and never fail.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyPrompt indicates a quality score was requested for blank text.
	ErrEmptyPrompt = fmt.Errorf("%w: prompt is empty", ErrInvalidInput)

	// ErrEmptyQuery indicates a search was requested without a query.
	ErrEmptyQuery = fmt.Errorf("%w: query is empty", ErrInvalidInput)

	// ErrUnknownMode indicates an unrecognised search mode name.
	ErrUnknownMode = fmt.Errorf("%w: unknown search mode", ErrInvalidInput)

	// ErrUnsupportedSource indicates an unknown corpus source type.
	ErrUnsupportedSource = errors.New("unsupported corpus source")
)

// ValidatePrompt enforces the non-empty precondition of quality scoring.
func ValidatePrompt(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyPrompt
	}
	return nil
}

// ValidateQuery enforces the non-empty precondition of search.
func ValidateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}
