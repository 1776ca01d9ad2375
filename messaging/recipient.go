package messaging

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const (
	SchemeTel   = "tel"
	SchemeEmail = "mailto"
)

// ParsedURI is a recipient handle split into scheme and identifier.
type ParsedURI struct {
	Scheme     string
	Identifier string
}

func (p ParsedURI) String() string {
	if p.Scheme == "" {
		return p.Identifier
	}
	return p.Scheme + ":" + p.Identifier
}

func (p ParsedURI) IsEmpty() bool {
	return p.Scheme == "" && p.Identifier == ""
}

// ParseRecipient guesses what kind of handle recipient is. The identifier is
// left exactly as given; the scheme is empty when the handle is neither an
// email address nor something that looks like a phone number.
func ParseRecipient(recipient string) ParsedURI {
	switch {
	case strings.Contains(recipient, "@"):
		return ParsedURI{Scheme: SchemeEmail, Identifier: recipient}
	case looksLikePhone(recipient):
		return ParsedURI{Scheme: SchemeTel, Identifier: recipient}
	default:
		return ParsedURI{Identifier: recipient}
	}
}

func looksLikePhone(s string) bool {
	digits := 0
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return false
		}
	}
	return digits >= 3
}

// NormalizeRecipient rewrites phone-number handles to E.164 using region for
// numbers without a country code. Anything that isn't a parseable phone
// number comes back unchanged.
func NormalizeRecipient(recipient, region string) string {
	if ParseRecipient(recipient).Scheme != SchemeTel {
		return recipient
	}
	num, err := phonenumbers.Parse(recipient, strings.ToUpper(region))
	if err != nil {
		return recipient
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}
