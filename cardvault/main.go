// Package cardvault is the single boundary through which stored card
// numbers leave the system. Numbers are persisted as received; every
// read path must pass the record through Mask before it reaches a
// response body or document.
package cardvault

import (
	"strings"

	"bitbucket.org/rutaandina/backend/models"
)

const maskPrefix = "**** **** **** "

// Last4 strips all whitespace and returns the last four characters of
// the number, or the whole stripped value when shorter than four.
func Last4(number string) string {
	stripped := strings.Join(strings.Fields(number), "")
	if len(stripped) <= 4 {
		return stripped
	}
	return stripped[len(stripped)-4:]
}

func MaskNumber(number string) string {
	return maskPrefix + Last4(number)
}

// Mask replaces the card number in place. Never call before a write or
// the unmasked number is lost.
func Mask(payment *models.Payment) *models.Payment {
	if payment == nil {
		return nil
	}
	payment.Card.CardNumber = MaskNumber(payment.Card.CardNumber)
	return payment
}

func MaskAll(payments []models.Payment) {
	for i := range payments {
		Mask(&payments[i])
	}
}
