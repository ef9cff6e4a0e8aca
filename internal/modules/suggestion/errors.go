package suggestion

import "errors"

var (
	ErrValidation          = errors.New("validation error")
	ErrMalformedSuggestion = errors.New("malformed suggestion payload")
	ErrEmptySuggestion     = errors.New("suggestion contains no materials or labor arrays")
)
