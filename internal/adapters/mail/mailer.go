// Package mail relays order and contact emails over SMTP.
package mail

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	gomail "gopkg.in/gomail.v2"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

const fromName = "Miskaa Store"

type Config struct {
	Host  string
	Port  int
	User  string
	Pass  string
	From  string // sender address; defaults to User
	Admin string // shop owner recipient
}

type Mailer struct {
	cfg    Config
	send   func(msgs ...*gomail.Message) error
	client *http.Client
}

func New(cfg Config) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass)
	return &Mailer{
		cfg:    cfg,
		send:   func(msgs ...*gomail.Message) error { return d.DialAndSend(msgs...) },
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (m *Mailer) configured() bool {
	return m.cfg.Host != "" && m.cfg.User != "" && m.cfg.Pass != ""
}

// SendOrderEmails sends the customer confirmation and then the admin
// notification as two separate sends. The customer email goes out first; a
// failed admin send still fails the whole call, so a client retry can
// deliver the customer email twice.
func (m *Mailer) SendOrderEmails(ctx context.Context, conf domain.OrderConfirmation, cust domain.Customer, screenshotURL string) error {
	if !m.configured() {
		log.Warn().Msg("smtp not configured, skipping order emails")
		return nil
	}

	customerBody, err := renderCustomerEmail(cust.Name, conf)
	if err != nil {
		return fmt.Errorf("render customer email: %w", err)
	}
	customerMsg := gomail.NewMessage()
	customerMsg.SetAddressHeader("From", m.cfg.From, fromName)
	customerMsg.SetHeader("To", cust.Email)
	customerMsg.SetHeader("Subject", fmt.Sprintf("Order Confirmation - #%s", conf.OrderID))
	customerMsg.SetBody("text/html", customerBody)

	adminBody, err := renderAdminEmail(cust, conf, screenshotURL)
	if err != nil {
		return fmt.Errorf("render admin email: %w", err)
	}
	adminMsg := gomail.NewMessage()
	adminMsg.SetAddressHeader("From", m.cfg.From, fromName)
	adminMsg.SetHeader("To", m.cfg.Admin)
	adminMsg.SetHeader("Subject", fmt.Sprintf("New Order Received - #%s", conf.OrderID))
	adminMsg.SetBody("text/html", adminBody)
	if screenshotURL != "" {
		if data, err := m.fetch(ctx, screenshotURL); err != nil {
			// the body still carries the link, so a dead URL degrades the
			// attachment rather than blocking the notification
			log.Warn().Err(err).Str("url", screenshotURL).Msg("payment screenshot not attachable")
		} else {
			adminMsg.Attach("payment-screenshot.jpg", gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}))
		}
	}

	if err := m.send(customerMsg); err != nil {
		return fmt.Errorf("send customer email: %w", err)
	}
	if err := m.send(adminMsg); err != nil {
		return fmt.Errorf("send admin email: %w", err)
	}
	return nil
}

func (m *Mailer) SendContactEmail(_ context.Context, msg domain.ContactMessage) error {
	if !m.configured() {
		log.Warn().Msg("smtp not configured, skipping contact email")
		return nil
	}

	body, err := renderContactEmail(msg)
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}
	ref := uuid.NewString()[:8]
	mm := gomail.NewMessage()
	mm.SetAddressHeader("From", m.cfg.From, fromName)
	mm.SetHeader("To", m.cfg.Admin)
	mm.SetHeader("Reply-To", msg.Email)
	mm.SetHeader("Subject", fmt.Sprintf("Contact Form: %s [#%s]", msg.Subject, ref))
	mm.SetBody("text/html", body)

	if err := m.send(mm); err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	return nil
}

func (m *Mailer) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
