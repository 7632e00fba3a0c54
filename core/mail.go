package core

import "net/mail"

type (
	Attachment struct {
		Filename    string
		ContentType string
		Content     string // base64, as produced by EncodeFile
	}

	EmailMessage struct {
		To          []mail.Address
		Subject     string
		BodyStr     string
		Attachments []Attachment
	}

	// EmailService is any service that can send emails.
	EmailService interface {
		// SendMessages sends messages concurrently
		SendMessages(messages ...*EmailMessage)
	}
)

func (m *EmailMessage) HasRecipients() bool { return len(m.To) > 0 }
func (m *EmailMessage) HasContent() bool    { return m.BodyStr != "" }
