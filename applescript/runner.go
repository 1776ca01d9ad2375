package applescript

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

const DefaultOSAScriptPath = "osascript"

// Runner executes an AppleScript snippet and returns whatever it printed.
type Runner interface {
	Run(ctx context.Context, script string) ([]byte, error)
}

// OSAScript runs scripts through the osascript binary, feeding the source on stdin.
type OSAScript struct {
	Path string
}

func NewOSAScript(path string) *OSAScript {
	if path == "" {
		path = DefaultOSAScriptPath
	}
	return &OSAScript{Path: path}
}

// Run blocks until osascript exits. It only stops early if ctx is cancelled.
func (o *OSAScript) Run(ctx context.Context, script string) ([]byte, error) {
	path := o.Path
	if path == "" {
		path = DefaultOSAScriptPath
	}
	cmd := exec.CommandContext(ctx, path, "-")
	cmd.Stdin = strings.NewReader(script)
	output, err := cmd.CombinedOutput()
	output = bytes.TrimSpace(output)
	if err != nil {
		return output, &RunError{Err: err, Output: string(output)}
	}
	return output, nil
}
