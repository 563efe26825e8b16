package db

import (
	shortuuid "github.com/lithammer/shortuuid/v3"
)

func GeneratePaymentReference() string {
	return shortuuid.New()
}
