package applescript

import "fmt"

// RunError is returned when the scripting runtime fails or cannot be started.
// Err is the untouched error from os/exec.
type RunError struct {
	Err    error
	Output string
}

func (e *RunError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("osascript: %v", e.Err)
	}
	return fmt.Sprintf("osascript: %v: %s", e.Err, e.Output)
}

func (e *RunError) Unwrap() error {
	return e.Err
}
