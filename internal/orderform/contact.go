package orderform

import (
	"context"
	"errors"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

// ContactSender posts one contact message to the backend.
type ContactSender interface {
	SendContact(ctx context.Context, msg domain.ContactMessage) error
}

type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerSuccess
	BannerError
)

// Banner is the inline status line shown under the contact form.
type Banner struct {
	Kind    BannerKind
	Message string
}

// ContactForm is the single-step sibling of the order wizard: collect four
// fields, submit once, clear on success, keep everything on failure.
type ContactForm struct {
	Name    string
	Email   string
	Subject string
	Message string

	sender  ContactSender
	sending bool
	banner  Banner
}

func NewContactForm(sender ContactSender) *ContactForm {
	return &ContactForm{sender: sender}
}

func (c *ContactForm) IsSending() bool { return c.sending }
func (c *ContactForm) Status() Banner  { return c.banner }

func (c *ContactForm) Submit(ctx context.Context) {
	if c.sending {
		return
	}
	c.sending = true
	c.banner = Banner{}
	defer func() { c.sending = false }()

	msg := domain.ContactMessage{Name: c.Name, Email: c.Email, Subject: c.Subject, Message: c.Message}
	if err := c.sender.SendContact(ctx, msg); err != nil {
		text := "Something went wrong. Please try again."
		var se *ServerError
		if errors.As(err, &se) && se.Message != "" {
			text = se.Message
		}
		c.banner = Banner{Kind: BannerError, Message: text}
		return
	}

	c.Name, c.Email, c.Subject, c.Message = "", "", "", ""
	c.banner = Banner{Kind: BannerSuccess, Message: "Your message has been sent successfully!"}
}
