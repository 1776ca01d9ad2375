// Package messaging sends messages by driving Messages.app through AppleScript.
package messaging

import (
	"github.com/rs/zerolog"

	"imessage-sender/applescript"
)

type Client struct {
	runner   applescript.Runner
	template applescript.Template
	store    Store
	log      zerolog.Logger
}

func NewClient(runner applescript.Runner) *Client {
	return NewClientWithStore(runner, nil)
}

// NewClientWithStore allows the caller to provide a persistent Store implementation.
func NewClientWithStore(runner applescript.Runner, store Store) *Client {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Client{
		runner:   runner,
		template: applescript.DefaultTemplate,
		store:    store,
		log:      zerolog.Nop(),
	}
}

// WithTemplate replaces the application/service the client targets.
func (c *Client) WithTemplate(t applescript.Template) *Client {
	c.template = t
	return c
}

func (c *Client) WithLogger(log zerolog.Logger) *Client {
	c.log = log
	return c
}

// History returns every message recorded by this client's store.
func (c *Client) History() ([]Message, error) {
	return c.store.List()
}
