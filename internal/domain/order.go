package domain

// ImageFile is an in-memory file blob handed to the order form by the
// embedding UI before anything touches the network.
type ImageFile struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// Customer holds the identity fields collected on the shipping step.
type Customer struct {
	Name    string `json:"customerName"`
	Email   string `json:"customerEmail"`
	Phone   string `json:"customerPhone"`
	Address string `json:"address"`
}

// OrderConfirmation is the transient record built once at submit time and
// passed to the mail relay. Nothing retains it afterwards; the two emails
// sent are the only durable trace of an order.
type OrderConfirmation struct {
	OrderID         string   `json:"orderId"`
	ProductName     string   `json:"productName"`
	Size            string   `json:"size"`
	Color           string   `json:"color"`
	DeliveryDate    string   `json:"deliveryDate"`
	TotalPrice      int      `json:"totalPrice"`
	AdvanceAmount   int      `json:"advanceAmount"`
	BalanceAmount   int      `json:"balanceAmount"`
	Text            string   `json:"text,omitempty"`
	Notes           string   `json:"notes"`
	ReferenceImages []string `json:"referenceImages,omitempty"`
}

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
