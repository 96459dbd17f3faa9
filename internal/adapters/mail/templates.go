package mail

import (
	"html/template"
	"strings"

	"github.com/harichselvamc/merakiartist/internal/domain"
)

const rowStyle = `padding: 8px; border-bottom: 1px solid #ddd;`

var customerTmpl = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a1a;">Thank you for your order, {{.Name}}!</h2>
  <p>Your order #{{.Conf.OrderID}} has been received and is being processed.</p>

  <h3 style="color: #1a1a1a; margin-top: 24px;">Order Summary</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="` + rowStyle + `">Product:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.ProductName}}</td></tr>
    {{if .Conf.Size}}<tr><td style="` + rowStyle + `">Size:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.Size}}</td></tr>{{end}}
    {{if .Conf.Color}}<tr><td style="` + rowStyle + `">Color:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.Color}}</td></tr>{{end}}
    <tr><td style="` + rowStyle + `">Delivery Date:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.DeliveryDate}}</td></tr>
    <tr><td style="` + rowStyle + ` font-weight: bold;">Total Amount:</td><td style="` + rowStyle + ` text-align: right; font-weight: bold;">&#8377;{{.Conf.TotalPrice}}</td></tr>
    <tr><td style="` + rowStyle + `">Advance Paid:</td><td style="` + rowStyle + ` text-align: right;">&#8377;{{.Conf.AdvanceAmount}}</td></tr>
    <tr><td style="` + rowStyle + `">Balance Due:</td><td style="` + rowStyle + ` text-align: right;">&#8377;{{.Conf.BalanceAmount}}</td></tr>
  </table>

  <p style="margin-top: 24px;">We'll contact you soon with updates on your order.</p>
  <p>Thank you for shopping with us!</p>
</div>
`))

var adminTmpl = template.Must(template.New("admin").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a1a;">New Order Received</h2>

  <h3 style="color: #1a1a1a; margin-top: 24px;">Customer Information</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="` + rowStyle + `">Name:</td><td style="` + rowStyle + ` text-align: right;">{{.Customer.Name}}</td></tr>
    <tr><td style="` + rowStyle + `">Email:</td><td style="` + rowStyle + ` text-align: right;">{{.Customer.Email}}</td></tr>
    <tr><td style="` + rowStyle + `">Phone:</td><td style="` + rowStyle + ` text-align: right;">{{.Customer.Phone}}</td></tr>
    <tr><td style="` + rowStyle + `">Shipping Address:</td><td style="` + rowStyle + ` text-align: right;">{{.Customer.Address}}</td></tr>
  </table>

  <h3 style="color: #1a1a1a; margin-top: 24px;">Order Details</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="` + rowStyle + `">Order ID:</td><td style="` + rowStyle + ` text-align: right;">#{{.Conf.OrderID}}</td></tr>
    <tr><td style="` + rowStyle + `">Product:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.ProductName}}</td></tr>
    {{if .Conf.Size}}<tr><td style="` + rowStyle + `">Size:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.Size}}</td></tr>{{end}}
    {{if .Conf.Color}}<tr><td style="` + rowStyle + `">Color:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.Color}}</td></tr>{{end}}
    <tr><td style="` + rowStyle + `">Delivery Date:</td><td style="` + rowStyle + ` text-align: right;">{{.Conf.DeliveryDate}}</td></tr>
    <tr><td style="` + rowStyle + `">Total Amount:</td><td style="` + rowStyle + ` text-align: right;">&#8377;{{.Conf.TotalPrice}}</td></tr>
    <tr><td style="` + rowStyle + `">Advance Paid:</td><td style="` + rowStyle + ` text-align: right;">&#8377;{{.Conf.AdvanceAmount}}</td></tr>
  </table>

  {{if .Conf.Text}}
  <h3 style="color: #1a1a1a; margin-top: 24px;">Custom Text</h3>
  <p>{{.Conf.Text}}</p>
  {{end}}

  {{if .Conf.Notes}}
  <h3 style="color: #1a1a1a; margin-top: 24px;">Customer Notes</h3>
  <p>{{.Conf.Notes}}</p>
  {{end}}

  {{if .Conf.ReferenceImages}}
  <h3 style="color: #1a1a1a; margin-top: 24px;">Reference Images</h3>
  <ul>
    {{range .Conf.ReferenceImages}}<li><a href="{{.}}">{{.}}</a></li>{{end}}
  </ul>
  {{end}}

  {{if .ScreenshotURL}}
  <h3 style="color: #1a1a1a; margin-top: 24px;">Payment Screenshot</h3>
  <p>Attached to this email. <a href="{{.ScreenshotURL}}">View online</a></p>
  {{end}}
</div>
`))

var contactTmpl = template.Must(template.New("contact").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a1a;">New Contact Message</h2>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="` + rowStyle + `">Name:</td><td style="` + rowStyle + ` text-align: right;">{{.Name}}</td></tr>
    <tr><td style="` + rowStyle + `">Email:</td><td style="` + rowStyle + ` text-align: right;">{{.Email}}</td></tr>
    <tr><td style="` + rowStyle + `">Subject:</td><td style="` + rowStyle + ` text-align: right;">{{.Subject}}</td></tr>
  </table>
  <h3 style="color: #1a1a1a; margin-top: 24px;">Message</h3>
  <p>{{.Message}}</p>
</div>
`))

func renderCustomerEmail(name string, conf domain.OrderConfirmation) (string, error) {
	var b strings.Builder
	err := customerTmpl.Execute(&b, struct {
		Name string
		Conf domain.OrderConfirmation
	}{name, conf})
	return b.String(), err
}

func renderAdminEmail(cust domain.Customer, conf domain.OrderConfirmation, screenshotURL string) (string, error) {
	var b strings.Builder
	err := adminTmpl.Execute(&b, struct {
		Customer      domain.Customer
		Conf          domain.OrderConfirmation
		ScreenshotURL string
	}{cust, conf, screenshotURL})
	return b.String(), err
}

func renderContactEmail(msg domain.ContactMessage) (string, error) {
	var b strings.Builder
	err := contactTmpl.Execute(&b, msg)
	return b.String(), err
}
