package cardvault

import (
	"testing"

	"bitbucket.org/rutaandina/backend/models"
	"github.com/stretchr/testify/assert"
)

func TestLast4(t *testing.T) {
	assert.Equal(t, "1234", Last4("4111111111111234"))
	assert.Equal(t, "1234", Last4("4111 1111 1111 1234"))
	assert.Equal(t, "1234", Last4("4111\t1111 1111  1234"))
	assert.Equal(t, "123", Last4("123"))
	assert.Equal(t, "123", Last4(" 1 2 3 "))
	assert.Equal(t, "", Last4(""))
	assert.Equal(t, "", Last4("   "))
}

func TestMaskNumber(t *testing.T) {
	assert.Equal(t, "**** **** **** 1234", MaskNumber("4111 1111 1111 1234"))
	assert.Equal(t, "**** **** **** 99", MaskNumber("99"))
	assert.Equal(t, "**** **** **** ", MaskNumber(""))
}

func TestMaskReplacesInPlace(t *testing.T) {
	payment := &models.Payment{
		Card: models.Card{
			HolderName: "Maria Soto",
			CardNumber: "4111 1111 1111 1234",
			CVV:        "123",
		},
	}

	masked := Mask(payment)

	assert.Same(t, payment, masked)
	assert.Equal(t, "**** **** **** 1234", payment.Card.CardNumber)
	// only the number is masked
	assert.Equal(t, "Maria Soto", payment.Card.HolderName)
	assert.Equal(t, "123", payment.Card.CVV)
}

func TestMaskNil(t *testing.T) {
	assert.Nil(t, Mask(nil))
}

func TestMaskAll(t *testing.T) {
	payments := []models.Payment{
		{Card: models.Card{CardNumber: "4111 1111 1111 1234"}},
		{Card: models.Card{CardNumber: "5500000000005678"}},
	}

	MaskAll(payments)

	assert.Equal(t, "**** **** **** 1234", payments[0].Card.CardNumber)
	assert.Equal(t, "**** **** **** 5678", payments[1].Card.CardNumber)
}
