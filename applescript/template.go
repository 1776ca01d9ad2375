// Package applescript renders the Messages automation script and hands it to
// the OS scripting runtime.
package applescript

import (
	"fmt"
	"strings"
)

// Service types exposed by Messages.app.
const (
	ServiceIMessage = "iMessage"
	ServiceSMS      = "SMS"
)

const DefaultApplication = "Messages"

const sendScript = `
tell application "%s"
    set targetService to 1st service whose service type = %s
    set theBuddy to buddy "%s" of targetService
    send "%s" to theBuddy
end tell
`

// Template selects the application and service a send script targets.
// With Escape set, recipient and message go through Quote before rendering.
type Template struct {
	Application string
	ServiceType string
	Escape      bool
}

var DefaultTemplate = Template{Application: DefaultApplication, ServiceType: ServiceIMessage}

// Render interpolates recipient and message into the send script as-is
// unless Escape is set. Unescaped, a double quote in either argument produces
// a script osascript will refuse to compile.
func (t Template) Render(recipient, message string) string {
	app := t.Application
	if app == "" {
		app = DefaultApplication
	}
	if t.Escape {
		recipient, message = Quote(recipient), Quote(message)
	}
	return fmt.Sprintf(sendScript, app, t.Service(), recipient, message)
}

// Service is the service type the script selects, defaulting to iMessage.
func (t Template) Service() string {
	if t.ServiceType == "" {
		return ServiceIMessage
	}
	return t.ServiceType
}

// BuildSendScript renders the default iMessage send script.
func BuildSendScript(recipient, message string) string {
	return DefaultTemplate.Render(recipient, message)
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Quote escapes s for use inside an AppleScript string literal.
func Quote(s string) string {
	return quoteReplacer.Replace(s)
}

// ValidServiceType reports whether s names a Messages service type.
func ValidServiceType(s string) bool {
	return s == ServiceIMessage || s == ServiceSMS
}
