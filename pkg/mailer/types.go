package mailer

import (
	"net/mail"
)

// Tags are provider-specific labels attached to a message.
// Providers that do not support tags ignore them.
type Tags map[string]string

// Recipient formats name and address as an RFC 5322 mailbox.
// An empty name returns the bare address.
func Recipient(name, address string) string {
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}

// Email is a message ready for a Sender.
type Email struct {
	Headers     map[string]string
	Tags        Tags
	Subject     string
	HTML        string
	Text        string // plain-text alternative
	From        string // overrides the provider default when set
	ReplyTo     string
	To          []string
	CC          []string
	BCC         []string
}
