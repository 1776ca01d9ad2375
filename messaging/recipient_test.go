package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecipient(t *testing.T) {
	tests := []struct {
		in     string
		scheme string
	}{
		{in: "+8615510010000", scheme: SchemeTel},
		{in: "(555) 555-0100", scheme: SchemeTel},
		{in: "hello@gmail.com", scheme: SchemeEmail},
		{in: "John Appleseed", scheme: ""},
		{in: "12", scheme: ""},
		{in: "", scheme: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			uri := ParseRecipient(tt.in)
			assert.Equal(t, tt.scheme, uri.Scheme)
			assert.Equal(t, tt.in, uri.Identifier)
		})
	}
}

func TestParsedURIString(t *testing.T) {
	assert.Equal(t, "tel:+8615510010000", ParseRecipient("+8615510010000").String())
	assert.Equal(t, "mailto:hello@gmail.com", ParseRecipient("hello@gmail.com").String())
	assert.Equal(t, "someone", ParseRecipient("someone").String())
	assert.True(t, ParseRecipient("").IsEmpty())
}

func TestNormalizeRecipient(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		region string
		want   string
	}{
		{name: "already e164", in: "+8615510010000", region: "", want: "+8615510010000"},
		{name: "formatted international", in: "+86 155-1001-0000", region: "", want: "+8615510010000"},
		{name: "national with region", in: "155 1001 0000", region: "cn", want: "+8615510010000"},
		{name: "national without region", in: "155 1001 0000", region: "", want: "155 1001 0000"},
		{name: "email untouched", in: "hello@gmail.com", region: "US", want: "hello@gmail.com"},
		{name: "name untouched", in: "John", region: "US", want: "John"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRecipient(tt.in, tt.region))
		})
	}
}
