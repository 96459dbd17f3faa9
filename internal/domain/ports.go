package domain

import "context"

// FileStorage persists an uploaded file under a unique name and returns the
// serving path plus an absolute URL under which it is immediately retrievable.
type FileStorage interface {
	SaveFile(ctx context.Context, name string, data []byte) (path string, url string, err error)
}

// MailSender is the outbound email capability the backend relies on.
type MailSender interface {
	// SendOrderEmails sends the customer confirmation first and the admin
	// notification second; it fails when either send fails.
	SendOrderEmails(ctx context.Context, conf OrderConfirmation, cust Customer, screenshotURL string) error
	SendContactEmail(ctx context.Context, msg ContactMessage) error
}
