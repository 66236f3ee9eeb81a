package analysis

import "errors"

var (
	ErrEmptyText    = errors.New("text is empty")
	ErrTextTooLong  = errors.New("text exceeds the maximum input length")
	ErrTooFewTokens = errors.New("text is too short to score with the language model")
	ErrNoWords      = errors.New("text contains no words")
)

// IsInputError reports whether err was caused by the submitted text rather
// than by a model failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrTextTooLong) ||
		errors.Is(err, ErrTooFewTokens) ||
		errors.Is(err, ErrNoWords)
}
