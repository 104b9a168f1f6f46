package prompt

import "errors"

// ErrAborted signals the respondent aborted input (e.g., Ctrl+C).
var ErrAborted = errors.New("prompt: aborted")
