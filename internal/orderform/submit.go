package orderform

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

// Uploader sends one file to the storage backend and returns the URL under
// which it is retrievable.
type Uploader interface {
	Upload(ctx context.Context, file domain.ImageFile) (string, error)
}

// ConfirmationSender asks the backend to send the customer and admin
// confirmation emails for a completed draft.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, conf domain.OrderConfirmation, cust domain.Customer, screenshotURL string) error
}

// Receipt is what the terminal thank-you view displays.
type Receipt struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
}

// NewOrderID derives an order id from the last six digits of the unix
// millisecond timestamp. Not globally unique; there is no server-side
// uniqueness check to reconcile against.
func NewOrderID(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	return "ORD-" + ms[len(ms)-6:]
}

// Submit runs the order pipeline: upload reference images concurrently,
// then the payment screenshot, then one confirmation-email call. Any
// failure aborts the rest, and the draft keeps all its fields so the user
// can resubmit; files already uploaded are not cleaned up, and a retry
// re-uploads everything from scratch.
func (f *Form) Submit(ctx context.Context) (Receipt, error) {
	if f.submitting {
		return Receipt{}, ErrSubmitInProgress
	}
	if f.step != StepShip || !f.Step3Valid() {
		return Receipt{}, ErrStepIncomplete
	}
	f.submitting = true
	defer func() { f.submitting = false }()

	orderID := NewOrderID(f.now())

	urls := make([]string, len(f.images))
	g, gctx := errgroup.WithContext(ctx)
	for i, img := range f.images {
		i, img := i, img
		g.Go(func() error {
			u, err := f.uploads.Upload(gctx, img)
			if err != nil {
				return fmt.Errorf("upload reference image %q: %w", img.Name, err)
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Receipt{}, err
	}

	var screenshotURL string
	if f.screenshot != nil {
		u, err := f.uploads.Upload(ctx, *f.screenshot)
		if err != nil {
			return Receipt{}, fmt.Errorf("upload payment screenshot: %w", err)
		}
		screenshotURL = u
	}

	conf := f.buildConfirmation(orderID, urls)
	if err := f.orders.SendOrderConfirmation(ctx, conf, f.customer, screenshotURL); err != nil {
		return Receipt{}, fmt.Errorf("send order confirmation: %w", err)
	}

	return Receipt{OrderID: orderID, CustomerName: f.customer.Name, CustomerEmail: f.customer.Email}, nil
}

func (f *Form) buildConfirmation(orderID string, imageURLs []string) domain.OrderConfirmation {
	sizeLabel := ""
	if f.size.ID != "" {
		sizeLabel = fmt.Sprintf("%s (%s)", f.size.Name, f.size.Dimensions)
	}
	notes := f.notes
	if strings.TrimSpace(notes) == "" {
		notes = "No additional notes"
	}
	conf := domain.OrderConfirmation{
		OrderID:       orderID,
		ProductName:   f.product.Name,
		Size:          sizeLabel,
		Color:         f.color.Name,
		DeliveryDate:  f.deliveryDate.Format("January 2, 2006"),
		TotalPrice:    f.TotalPrice(),
		AdvanceAmount: f.AdvanceAmount(),
		BalanceAmount: f.BalanceAmount(),
		Notes:         notes,
	}
	if f.product.RequiresText {
		conf.Text = f.text
	}
	if len(imageURLs) > 0 {
		conf.ReferenceImages = imageURLs
	}
	return conf
}
