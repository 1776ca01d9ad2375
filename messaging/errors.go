package messaging

import "errors"

var (
	ErrEmptyRecipient      = errors.New("recipient is required")
	ErrRunnerNotConfigured = errors.New("script runner not configured")
)
