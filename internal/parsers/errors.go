package parsers

import "errors"

// Parse failure classes. Parse wraps one of these so callers can count failures with errors.Is.
var (
	ErrEmptyLine       = errors.New("empty line")
	ErrGrammarMismatch = errors.New("line does not match combined log format")
	ErrInvalidEntry    = errors.New("line matched but holds invalid values")
)

const (
	OutcomeParsed          = "parsed"
	OutcomeEmpty           = "empty"
	OutcomeGrammarMismatch = "grammar_mismatch"
	OutcomeInvalid         = "invalid"
)

// Outcome maps a Parse error to a stable label used in reports and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeParsed
	case errors.Is(err, ErrEmptyLine):
		return OutcomeEmpty
	case errors.Is(err, ErrInvalidEntry):
		return OutcomeInvalid
	default:
		return OutcomeGrammarMismatch
	}
}
