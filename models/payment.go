package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/thedevsaddam/govalidator"
)

// Card is persisted as received. Masking of the number happens in the
// cardvault package on the read path only.
type Card struct {
	HolderName  string `json:"holder_name"`
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
}

type Product struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// ProductList is persisted as a JSON array column. Entries are trusted
// as supplied; there is no product catalog to check against.
type ProductList []Product

func (l ProductList) Value() (driver.Value, error) {
	if l == nil {
		l = ProductList{}
	}
	return json.Marshal(l)
}

func (l *ProductList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.Errorf("cannot scan %T into ProductList", src)
}

type Payment struct {
	ID          int         `json:"id,omitempty"`
	Reference   string      `json:"reference,omitempty"`
	UserID      int         `json:"user_id"`
	Card        Card        `json:"card"`
	Products    ProductList `json:"products"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	Created     time.Time   `json:"created"`
	Updated     time.Time   `json:"updated"`
}

type InsertPaymentOpts struct {
	UserID      int       `json:"user_id"`
	Card        Card      `json:"card"`
	Products    []Product `json:"products"`
	TotalAmount float64   `json:"total_amount"`
}

// total_amount is not checked against the product lines. The card
// object is validated through its leaves: govalidator flattens nested
// JSON into dot keys, so a rule on the bare "card" key never sees a
// value.
var InsertPaymentRules = govalidator.MapData{
	"user_id":           []string{"numeric"},
	"card.holder_name":  []string{"required"},
	"card.card_number":  []string{"required"},
	"card.expiry_month": []string{"required", "numeric"},
	"card.expiry_year":  []string{"required", "numeric"},
	"card.cvv":          []string{"required"},
	"products":          []string{"required"},
	"total_amount":      []string{"required", "numeric"},
}

// UpdatePaymentOpts applies every field present in the body, zero
// values included. This is the overwrite contract of the payment
// resource, unlike the truthy-wins rosters.
type UpdatePaymentOpts struct {
	UserID      *int         `json:"user_id"`
	Card        *Card        `json:"card"`
	Products    *ProductList `json:"products"`
	TotalAmount *float64     `json:"total_amount"`
	Status      *string      `json:"status"`
}

var UpdatePaymentRules = govalidator.MapData{
	"user_id":      []string{"numeric"},
	"total_amount": []string{"numeric"},
	"status":       []string{"payment_status"},
}

type PaymentsStruct struct {
	Payments []Payment `json:"payments"`
	Total    int       `json:"total"`
}

type ReceiptPDFHTML struct {
	Reference  string
	HolderName string
	CardNumber string
	Date       string
	Products   []Product
	Total      float64
	Image      string
}
