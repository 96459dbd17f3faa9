package mail

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

func testConfig() Config {
	return Config{
		Host:  "smtp.test",
		Port:  587,
		User:  "shop@example.com",
		Pass:  "secret",
		Admin: "owner@example.com",
	}
}

func captureMailer(cfg Config) (*Mailer, *[]*gomail.Message) {
	m := New(cfg)
	var sent []*gomail.Message
	m.send = func(msgs ...*gomail.Message) error {
		sent = append(sent, msgs...)
		return nil
	}
	return m, &sent
}

func sampleOrder() (domain.OrderConfirmation, domain.Customer) {
	conf := domain.OrderConfirmation{
		OrderID:         "ORD-000123",
		ProductName:     "Faceless Portrait",
		Size:            `Small (8" x 10")`,
		Color:           "Pastel",
		DeliveryDate:    "March 15, 2025",
		TotalPrice:      2500,
		AdvanceAmount:   1250,
		BalanceAmount:   1250,
		Notes:           "No additional notes",
		ReferenceImages: []string{"http://shop.test/uploads/ref1.jpg"},
	}
	cust := domain.Customer{
		Name:    "Ayesha",
		Email:   "ayesha@example.com",
		Phone:   "9876543210",
		Address: "12 Beach Road, Chennai 600001",
	}
	return conf, cust
}

func rawMessage(t *testing.T, msg *gomail.Message) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestSendOrderEmailsCustomerFirst(t *testing.T) {
	m, sent := captureMailer(testConfig())
	conf, cust := sampleOrder()

	err := m.SendOrderEmails(context.Background(), conf, cust, "")
	require.NoError(t, err)
	require.Len(t, *sent, 2)

	customer, admin := (*sent)[0], (*sent)[1]
	assert.Equal(t, []string{"ayesha@example.com"}, customer.GetHeader("To"))
	assert.Equal(t, []string{"Order Confirmation - #ORD-000123"}, customer.GetHeader("Subject"))
	assert.Equal(t, []string{"owner@example.com"}, admin.GetHeader("To"))
	assert.Equal(t, []string{"New Order Received - #ORD-000123"}, admin.GetHeader("Subject"))
}

func TestRenderCustomerEmail(t *testing.T) {
	conf, cust := sampleOrder()

	body, err := renderCustomerEmail(cust.Name, conf)
	require.NoError(t, err)
	assert.Contains(t, body, "Thank you for your order, Ayesha!")
	assert.Contains(t, body, "#ORD-000123")
	assert.Contains(t, body, "March 15, 2025")
	assert.Contains(t, body, "&#8377;2500")
	assert.Contains(t, body, "&#8377;1250")
}

func TestRenderAdminEmail(t *testing.T) {
	conf, cust := sampleOrder()

	body, err := renderAdminEmail(cust, conf, "http://shop.test/uploads/shot.jpg")
	require.NoError(t, err)
	assert.Contains(t, body, "9876543210")
	assert.Contains(t, body, "12 Beach Road, Chennai 600001")
	assert.Contains(t, body, "http://shop.test/uploads/ref1.jpg")
	assert.Contains(t, body, "http://shop.test/uploads/shot.jpg")
	assert.Contains(t, body, "No additional notes")

	// optional sections drop out when empty
	conf.Notes = ""
	conf.ReferenceImages = nil
	body, err = renderAdminEmail(cust, conf, "")
	require.NoError(t, err)
	assert.NotContains(t, body, "Customer Notes")
	assert.NotContains(t, body, "Reference Images")
	assert.NotContains(t, body, "Payment Screenshot")
}

func TestSendOrderEmailsAttachesScreenshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("screenshot bytes"))
	}))
	defer srv.Close()

	m, sent := captureMailer(testConfig())
	conf, cust := sampleOrder()

	err := m.SendOrderEmails(context.Background(), conf, cust, srv.URL+"/uploads/shot.jpg")
	require.NoError(t, err)
	require.Len(t, *sent, 2)
	assert.Contains(t, rawMessage(t, (*sent)[1]), `filename="payment-screenshot.jpg"`)
}

func TestSendOrderEmailsScreenshotFetchFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	m, sent := captureMailer(testConfig())
	conf, cust := sampleOrder()

	// a dead screenshot URL must not block the notification
	err := m.SendOrderEmails(context.Background(), conf, cust, srv.URL+"/gone.jpg")
	require.NoError(t, err)
	require.Len(t, *sent, 2)
	assert.NotContains(t, rawMessage(t, (*sent)[1]), `filename="payment-screenshot.jpg"`)
}

func TestSendOrderEmailsAdminFailureAfterCustomerSend(t *testing.T) {
	m := New(testConfig())
	var sent []*gomail.Message
	m.send = func(msgs ...*gomail.Message) error {
		sent = append(sent, msgs...)
		if len(sent) == 2 {
			return errors.New("smtp 451")
		}
		return nil
	}
	conf, cust := sampleOrder()

	err := m.SendOrderEmails(context.Background(), conf, cust, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin")
	// the customer email already went out
	require.Len(t, sent, 2)
	assert.Equal(t, []string{"ayesha@example.com"}, sent[0].GetHeader("To"))
}

func TestSendOrderEmailsUnconfigured(t *testing.T) {
	m, sent := captureMailer(Config{Admin: "owner@example.com"})
	conf, cust := sampleOrder()

	err := m.SendOrderEmails(context.Background(), conf, cust, "")
	assert.NoError(t, err)
	assert.Empty(t, *sent)
}

func TestSendContactEmail(t *testing.T) {
	m, sent := captureMailer(testConfig())

	err := m.SendContactEmail(context.Background(), domain.ContactMessage{
		Name:    "Ayesha",
		Email:   "ayesha@example.com",
		Subject: "Custom portrait",
		Message: "Can you do a family of four?",
	})
	require.NoError(t, err)
	require.Len(t, *sent, 1)

	msg := (*sent)[0]
	assert.Equal(t, []string{"owner@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"ayesha@example.com"}, msg.GetHeader("Reply-To"))

	subject := msg.GetHeader("Subject")
	require.Len(t, subject, 1)
	assert.Regexp(t, `^Contact Form: Custom portrait \[#[0-9a-f-]{8}\]$`, subject[0])
}

func TestRenderContactEmail(t *testing.T) {
	body, err := renderContactEmail(domain.ContactMessage{
		Name:    "Ayesha",
		Email:   "ayesha@example.com",
		Subject: "Custom portrait",
		Message: "Can you do a family of four?",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "Ayesha")
	assert.Contains(t, body, "Can you do a family of four?")
}

func TestSendContactEmailSMTPError(t *testing.T) {
	m := New(testConfig())
	m.send = func(msgs ...*gomail.Message) error { return errors.New("dial tcp: refused") }

	err := m.SendContactEmail(context.Background(), domain.ContactMessage{
		Name: "A", Email: "a@example.com", Subject: "S", Message: "M",
	})
	assert.Error(t, err)
}

func TestNewDefaultsFromToUser(t *testing.T) {
	m := New(testConfig())
	assert.Equal(t, "shop@example.com", m.cfg.From)
}
