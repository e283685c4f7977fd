package domain

type (
	Order struct {
		OrderID   string
		CreatedAt string
		Status    string
		Total     float64
		Items     []OrderItem
	}

	OrderItem struct {
		ProductID string
		Name      string
		Format    Format
		Quantity  int
		UnitPrice float64
	}

	// Download is a purchased design file available for re-download.
	Download struct {
		ProductID string
		Name      string
		Format    Format
		URL       string
	}
)

type (
	// PaymentOrder is an order registered with the external
	// payment collaborator, awaiting the success callback.
	PaymentOrder struct {
		OrderID  string
		Amount   float64
		Currency string
		Receipt  string
	}

	// PaymentCallback carries the collaborator's success callback
	// fields; only signature validity is consumed by the core.
	PaymentCallback struct {
		OrderID   string
		PaymentID string
		Signature string
	}
)
