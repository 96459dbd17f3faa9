// Package orderform drives the three-step order wizard: Customize, Pay,
// Ship. The draft order lives entirely inside a Form value; nothing is
// persisted until submit, and a failed submit leaves every field intact so
// the user can resubmit without re-entering data.
package orderform

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

type Step int

const (
	StepCustomize Step = iota + 1
	StepPay
	StepShip
)

const (
	minDeliveryLeadDays = 5
	maxImageBytes       = 5 << 20

	upiID    = "7598068106@pthdfc"
	upiPayee = "harichselvamc"
)

var (
	ErrStepIncomplete   = errors.New("current step is incomplete")
	ErrTooManyImages    = errors.New("too many reference images")
	ErrUnknownOption    = errors.New("option does not belong to this product")
	ErrDeliveryTooSoon  = errors.New("delivery date is too soon")
	ErrSubmitInProgress = errors.New("submit already in progress")
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// ServerError carries a message reported by the backend, as opposed to a
// transport failure. Forms surface it verbatim to the user.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string { return e.Message }

type Form struct {
	product domain.Product
	uploads Uploader
	orders  ConfirmationSender
	now     func() time.Time

	step       Step
	submitting bool

	size         domain.SizeOption
	color        domain.ColorOption
	deliveryDate time.Time
	text         string
	notes        string
	images       []domain.ImageFile
	screenshot   *domain.ImageFile
	customer     domain.Customer
}

// New starts a draft order for the product: first size and color selected
// when the product has any, delivery date at the minimum lead time.
func New(p domain.Product, uploads Uploader, orders ConfirmationSender) *Form {
	f := &Form{product: p, uploads: uploads, orders: orders, now: time.Now, step: StepCustomize}
	if len(p.Sizes) > 0 {
		f.size = p.Sizes[0]
	}
	if len(p.Colors) > 0 {
		f.color = p.Colors[0]
	}
	f.deliveryDate = f.MinDeliveryDate()
	return f
}

func (f *Form) Product() domain.Product         { return f.product }
func (f *Form) Step() Step                      { return f.step }
func (f *Form) IsSubmitting() bool              { return f.submitting }
func (f *Form) SelectedSize() domain.SizeOption { return f.size }
func (f *Form) SelectedColor() domain.ColorOption {
	return f.color
}
func (f *Form) DeliveryDate() time.Time          { return f.deliveryDate }
func (f *Form) Text() string                     { return f.text }
func (f *Form) Notes() string                    { return f.notes }
func (f *Form) Images() []domain.ImageFile       { return f.images }
func (f *Form) Screenshot() *domain.ImageFile    { return f.screenshot }
func (f *Form) CustomerDetails() domain.Customer { return f.customer }

// MinDeliveryDate is today plus the preparation lead time; the date control
// must never accept anything earlier.
func (f *Form) MinDeliveryDate() time.Time {
	y, m, d := f.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local).AddDate(0, 0, minDeliveryLeadDays)
}

func (f *Form) SetSize(id string) error {
	s, ok := f.product.Size(id)
	if !ok {
		return ErrUnknownOption
	}
	f.size = s
	return nil
}

func (f *Form) SetColor(id string) error {
	c, ok := f.product.Color(id)
	if !ok {
		return ErrUnknownOption
	}
	f.color = c
	return nil
}

func (f *Form) SetDeliveryDate(t time.Time) error {
	if t.Before(f.MinDeliveryDate()) {
		return ErrDeliveryTooSoon
	}
	f.deliveryDate = t
	return nil
}

func (f *Form) SetText(s string)  { f.text = s }
func (f *Form) SetNotes(s string) { f.notes = s }

func (f *Form) SetCustomer(c domain.Customer) { f.customer = c }

// AddImages appends the acceptable files from the batch. Oversized or
// non-JPEG/PNG files are dropped silently before the cap check; if the rest
// would push the list past MaxImages the whole batch is rejected and the
// list is left unchanged.
func (f *Form) AddImages(files []domain.ImageFile) (int, error) {
	accepted := make([]domain.ImageFile, 0, len(files))
	for _, file := range files {
		if acceptImage(file) {
			accepted = append(accepted, file)
		}
	}
	if len(accepted) == 0 {
		return 0, nil
	}
	if f.product.MaxImages > 0 && len(f.images)+len(accepted) > f.product.MaxImages {
		return 0, fmt.Errorf("%w: you can only upload up to %d images", ErrTooManyImages, f.product.MaxImages)
	}
	f.images = append(f.images, accepted...)
	return len(accepted), nil
}

// RemoveImage drops the image at index i, keeping the order of the rest.
func (f *Form) RemoveImage(i int) {
	if i < 0 || i >= len(f.images) {
		return
	}
	f.images = append(f.images[:i], f.images[i+1:]...)
}

// SetPaymentScreenshot keeps at most one screenshot; a file that fails the
// drop filter is ignored and reported false.
func (f *Form) SetPaymentScreenshot(file domain.ImageFile) bool {
	if !acceptImage(file) {
		return false
	}
	f.screenshot = &file
	return true
}

func acceptImage(f domain.ImageFile) bool {
	if f.Size <= 0 || f.Size > maxImageBytes {
		return false
	}
	switch f.ContentType {
	case "image/jpeg", "image/png":
		return true
	case "":
		switch strings.ToLower(path.Ext(f.Name)) {
		case ".jpg", ".jpeg", ".png":
			return true
		}
	}
	return false
}

func (f *Form) Step1Valid() bool {
	if f.product.RequiresText && strings.TrimSpace(f.text) == "" {
		return false
	}
	if f.product.RequiresImage && len(f.images) == 0 {
		return false
	}
	return true
}

func (f *Form) Step2Valid() bool {
	return f.screenshot != nil
}

func (f *Form) Step3Valid() bool {
	return strings.TrimSpace(f.customer.Name) != "" &&
		emailRe.MatchString(f.customer.Email) &&
		phoneRe.MatchString(f.customer.Phone) &&
		strings.TrimSpace(f.customer.Address) != ""
}

// Next advances one step when the current step's guard holds.
func (f *Form) Next() error {
	switch f.step {
	case StepCustomize:
		if !f.Step1Valid() {
			return ErrStepIncomplete
		}
		f.step = StepPay
	case StepPay:
		if !f.Step2Valid() {
			return ErrStepIncomplete
		}
		f.step = StepShip
	default:
		return ErrStepIncomplete
	}
	return nil
}

// Back is always allowed and preserves all field state.
func (f *Form) Back() {
	if f.submitting {
		return
	}
	if f.step > StepCustomize {
		f.step--
	}
}

// TotalPrice is the product base price plus the selected size's modifier;
// colors never affect price.
func (f *Form) TotalPrice() int {
	return f.product.Price + f.size.PriceModifier
}

// AdvanceAmount is half the total, rounded half-up so that advance and
// balance always sum exactly to the total.
func (f *Form) AdvanceAmount() int {
	return (f.TotalPrice() + 1) / 2
}

func (f *Form) BalanceAmount() int {
	return f.TotalPrice() - f.AdvanceAmount()
}

// UPILink is the payment deep link rendered as a QR code on the Pay step.
// It is informational only; payment is confirmed by screenshot review.
func (f *Form) UPILink() string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&cu=INR&am=%d", upiID, upiPayee, f.AdvanceAmount())
}
