package domain

import (
	"strings"
	"time"
)

// Payment methods accepted at checkout.
const (
	PaymentCOD    = "cod"
	PaymentOnline = "online"
)

// Payment channels for online payments.
const (
	ChannelUPI      = "upi"
	ChannelWallet   = "wallet"
	ChannelPayLater = "paylater"
	ChannelNetbank  = "netbank"
)

// Order statuses. Status is fully determined by the payment method at
// creation time and is never recomputed afterwards.
const (
	StatusPending         = "pending"
	StatusAwaitingPayment = "awaiting_payment"
)

// Buyer holds the contact details attached to an order. Email and Phone are
// optional and normalized to empty strings when absent.
type Buyer struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address"`
}

type OrderItem struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price int64  `json:"price"`
}

// Order is created client-side at submission time and never mutated
// thereafter; it is destroyed only by an explicit collection clear.
type Order struct {
	ID             string      `json:"id"`
	Buyer          Buyer       `json:"user"`
	Items          []OrderItem `json:"items"`
	PaymentMethod  string      `json:"payment_method"`
	PaymentChannel string      `json:"payment_channel,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	Total          int64       `json:"total"`
	Status         string      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
}

// NewOrder builds an Order from normalized inputs. Total is the exact sum of
// price*qty over the items; status is pending for cash on delivery and
// awaiting_payment otherwise.
func NewOrder(id string, buyer Buyer, items []OrderItem, paymentMethod, paymentChannel, notes string, createdAt time.Time) Order {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Qty)
	}
	status := StatusAwaitingPayment
	if paymentMethod == PaymentCOD {
		status = StatusPending
	}
	return Order{
		ID:             id,
		Buyer:          buyer.Normalize(),
		Items:          items,
		PaymentMethod:  paymentMethod,
		PaymentChannel: paymentChannel,
		Notes:          strings.TrimSpace(notes),
		Total:          total,
		Status:         status,
		CreatedAt:      createdAt,
	}
}

// Normalize trims every field so optional ones collapse to the empty string.
func (b Buyer) Normalize() Buyer {
	return Buyer{
		Name:    strings.TrimSpace(b.Name),
		Email:   strings.TrimSpace(b.Email),
		Phone:   strings.TrimSpace(b.Phone),
		Address: strings.TrimSpace(b.Address),
	}
}
