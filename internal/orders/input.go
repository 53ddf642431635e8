package orders

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"pawfinder/internal/domain"
)

// SubmitInput is the order submission payload. It is rejected in full before
// any write when a required field is missing.
type SubmitInput struct {
	Buyer          BuyerInput  `json:"user"`
	Items          []ItemInput `json:"items" validate:"required,min=1,dive"`
	PaymentMethod  string      `json:"payment_method" validate:"required,oneof=cod online"`
	PaymentChannel string      `json:"payment_channel" validate:"omitempty,oneof=upi wallet paylater netbank"`
	Notes          string      `json:"notes"`
}

type BuyerInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address" validate:"required"`
}

type ItemInput struct {
	Name  string `json:"name" validate:"required"`
	Qty   int    `json:"qty" validate:"required,min=1"`
	Price int64  `json:"price" validate:"gte=0"`
}

type validator interface {
	Struct(s any) error
}

// newValidator registers the struct-level rule that a payment channel is
// required exactly when the payment method is online.
func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(submitStructValidation, SubmitInput{})
	return v
}

func submitStructValidation(sl validatorv10.StructLevel) {
	in := sl.Current().Interface().(SubmitInput)
	if in.PaymentMethod == domain.PaymentOnline && in.PaymentChannel == "" {
		sl.ReportError(in.PaymentChannel, "payment_channel", "PaymentChannel", "required_if_online", "")
	}
	if in.PaymentMethod == domain.PaymentCOD && in.PaymentChannel != "" {
		sl.ReportError(in.PaymentChannel, "payment_channel", "PaymentChannel", "excluded_if_cod", "")
	}
}

func (b BuyerInput) buyer() domain.Buyer {
	return domain.Buyer{Name: b.Name, Email: b.Email, Phone: b.Phone, Address: b.Address}
}

func (in SubmitInput) items() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, domain.OrderItem{Name: it.Name, Qty: it.Qty, Price: it.Price})
	}
	return items
}
