package vitok

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidText indicates the input text is not valid UTF-8.
	ErrInvalidText = errors.New("vitok: text is not valid UTF-8")

	// ErrRulesFailed indicates the embedded normalization tables could
	// not be loaded. This is a build defect, not an input condition.
	ErrRulesFailed = errors.New("vitok: loading normalization rules failed")
)
