package orderform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

type stubContactSender struct {
	calls []domain.ContactMessage
	err   error
}

func (s *stubContactSender) SendContact(_ context.Context, msg domain.ContactMessage) error {
	s.calls = append(s.calls, msg)
	return s.err
}

func filledContactForm(sender ContactSender) *ContactForm {
	c := NewContactForm(sender)
	c.Name = "Ayesha"
	c.Email = "ayesha@example.com"
	c.Subject = "Custom portrait"
	c.Message = "Can you do a family of four?"
	return c
}

func TestContactSubmitSuccess(t *testing.T) {
	sender := &stubContactSender{}
	c := filledContactForm(sender)

	c.Submit(context.Background())

	assert.Len(t, sender.calls, 1)
	assert.Equal(t, "Custom portrait", sender.calls[0].Subject)

	// all four fields cleared, success banner shown
	assert.Empty(t, c.Name)
	assert.Empty(t, c.Email)
	assert.Empty(t, c.Subject)
	assert.Empty(t, c.Message)
	assert.Equal(t, BannerSuccess, c.Status().Kind)
	assert.Equal(t, "Your message has been sent successfully!", c.Status().Message)
	assert.False(t, c.IsSending())
}

func TestContactSubmitServerError(t *testing.T) {
	sender := &stubContactSender{err: &ServerError{Message: "All fields are required"}}
	c := filledContactForm(sender)

	c.Submit(context.Background())

	// fields kept, server-provided message surfaced
	assert.Equal(t, "Ayesha", c.Name)
	assert.Equal(t, "Can you do a family of four?", c.Message)
	assert.Equal(t, BannerError, c.Status().Kind)
	assert.Equal(t, "All fields are required", c.Status().Message)
}

func TestContactSubmitTransportError(t *testing.T) {
	sender := &stubContactSender{err: errors.New("connection refused")}
	c := filledContactForm(sender)

	c.Submit(context.Background())

	assert.Equal(t, "Ayesha", c.Name)
	assert.Equal(t, BannerError, c.Status().Kind)
	assert.Equal(t, "Something went wrong. Please try again.", c.Status().Message)
}
