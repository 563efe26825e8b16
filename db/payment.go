package db

import (
	"database/sql"
	"strings"

	"bitbucket.org/rutaandina/backend/models"
	"github.com/pkg/errors"
)

type PaymentStorage interface {
	InsertPayment(*models.InsertPaymentOpts) (*models.Payment, error)
	GetPayments() (*models.PaymentsStruct, error)
	GetPaymentByID(paymentID int) (*models.Payment, error)
	UpdatePayment(paymentID int, opts *models.UpdatePaymentOpts) error
	DeletePayment(paymentID int) error
}

const (
	insertPayment = `
	INSERT
		payment
	SET
		reference = :reference,
		user_id = :user_id,
		card_holder_name = :card_holder_name,
		card_number = :card_number,
		card_expiry_month = :card_expiry_month,
		card_expiry_year = :card_expiry_year,
		card_cvv = :card_cvv,
		products = :products,
		total_amount = :total_amount,
		status = :status
	`

	getPaymentByID = `
	SELECT
		id,
		reference,
		user_id,
		card_holder_name,
		card_number,
		card_expiry_month,
		card_expiry_year,
		card_cvv,
		products,
		total_amount,
		status,
		created,
		updated
	FROM
		payment
	WHERE
		active = 1 AND
		id = :payment_id
	`

	getPayments = `
	SELECT
		id,
		reference,
		user_id,
		card_holder_name,
		card_number,
		card_expiry_month,
		card_expiry_year,
		card_cvv,
		products,
		total_amount,
		status,
		created,
		updated
	FROM
		payment
	WHERE
		payment.active = 1
	ORDER BY
		payment.created DESC
	`

	countPayments = `
	SELECT
		COUNT(id)
	FROM
		payment
	WHERE
		payment.active = 1
	`

	updatePayment = `
	UPDATE
		payment
	SET
		#SETS#
	WHERE
		active = 1 AND
		id = :payment_id
	`

	deletePayment = `
	UPDATE
		payment
	SET
		active = 0
	WHERE
		active = 1 AND
		id = :payment_id
	`
)

// InsertPayment persists the record with status forced to success. No
// payment processor is consulted; the card is stored as received and
// total_amount is trusted as supplied.
func (db *DB) InsertPayment(opts *models.InsertPaymentOpts) (*models.Payment, error) {
	tx, err := db.NewTx()
	if err != nil {
		return nil, errors.Wrap(err, "failed to start transaction")
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}

		tx.Commit()
	}()

	userID := opts.UserID
	if userID == 0 {
		userID = ConstDefaultPaymentUserID
	}

	reference := GeneratePaymentReference()

	stmt, err := tx.PrepareNamed(insertPayment)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"reference":         reference,
		"user_id":           userID,
		"card_holder_name":  opts.Card.HolderName,
		"card_number":       opts.Card.CardNumber,
		"card_expiry_month": opts.Card.ExpiryMonth,
		"card_expiry_year":  opts.Card.ExpiryYear,
		"card_cvv":          opts.Card.CVV,
		"products":          models.ProductList(opts.Products),
		"total_amount":      opts.TotalAmount,
		"status":            ConstPaymentStatuses.Success,
	}

	result, err := stmt.Exec(args)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		ID:          int(id),
		Reference:   reference,
		UserID:      userID,
		Card:        opts.Card,
		Products:    models.ProductList(opts.Products),
		TotalAmount: opts.TotalAmount,
		Status:      ConstPaymentStatuses.Success,
	}

	return &payment, nil
}

func (db *DB) GetPaymentByID(paymentID int) (*models.Payment, error) {
	stmt, err := db.PrepareNamed(getPaymentByID)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"payment_id": paymentID,
	}

	row := stmt.QueryRow(args)

	var payment models.Payment
	if err := row.Scan(
		&payment.ID,
		&payment.Reference,
		&payment.UserID,
		&payment.Card.HolderName,
		&payment.Card.CardNumber,
		&payment.Card.ExpiryMonth,
		&payment.Card.ExpiryYear,
		&payment.Card.CVV,
		&payment.Products,
		&payment.TotalAmount,
		&payment.Status,
		&payment.Created,
		&payment.Updated,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &payment, nil
}

func (db *DB) GetPayments() (*models.PaymentsStruct, error) {
	totalPayments, err := db.countPayments()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(getPayments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := models.PaymentsStruct{
		Total: totalPayments,
	}
	for rows.Next() {
		var payment models.Payment
		if err := rows.Scan(
			&payment.ID,
			&payment.Reference,
			&payment.UserID,
			&payment.Card.HolderName,
			&payment.Card.CardNumber,
			&payment.Card.ExpiryMonth,
			&payment.Card.ExpiryYear,
			&payment.Card.CVV,
			&payment.Products,
			&payment.TotalAmount,
			&payment.Status,
			&payment.Created,
			&payment.Updated,
		); err != nil {
			return nil, err
		}

		payments.Payments = append(payments.Payments, payment)
	}

	return &payments, nil
}

func (db *DB) countPayments() (int, error) {
	row := db.QueryRow(countPayments)
	var total int
	if err := row.Scan(
		&total,
	); err != nil {
		return 0, err
	}

	return total, nil
}

// UpdatePayment overwrites every column whose field is present in
// opts, zero values included. Present-wins, not truthy-wins.
func (db *DB) UpdatePayment(paymentID int, opts *models.UpdatePaymentOpts) error {
	var sets []string
	args := map[string]interface{}{
		"payment_id": paymentID,
	}
	if opts.UserID != nil {
		sets = append(sets, "user_id = :user_id")
		args["user_id"] = *opts.UserID
	}
	if opts.Card != nil {
		sets = append(sets,
			"card_holder_name = :card_holder_name",
			"card_number = :card_number",
			"card_expiry_month = :card_expiry_month",
			"card_expiry_year = :card_expiry_year",
			"card_cvv = :card_cvv",
		)
		args["card_holder_name"] = opts.Card.HolderName
		args["card_number"] = opts.Card.CardNumber
		args["card_expiry_month"] = opts.Card.ExpiryMonth
		args["card_expiry_year"] = opts.Card.ExpiryYear
		args["card_cvv"] = opts.Card.CVV
	}
	if opts.Products != nil {
		sets = append(sets, "products = :products")
		args["products"] = *opts.Products
	}
	if opts.TotalAmount != nil {
		sets = append(sets, "total_amount = :total_amount")
		args["total_amount"] = *opts.TotalAmount
	}
	if opts.Status != nil {
		sets = append(sets, "status = :status")
		args["status"] = *opts.Status
	}

	if len(sets) == 0 {
		return nil
	}

	query := strings.ReplaceAll(updatePayment, "#SETS#", strings.Join(sets, ", "))
	stmt, err := db.PrepareNamed(query)
	if err != nil {
		return err
	}

	_, err = stmt.Exec(args)
	if err != nil {
		return err
	}

	return nil
}

func (db *DB) DeletePayment(paymentID int) error {
	stmt, err := db.PrepareNamed(deletePayment)
	if err != nil {
		return err
	}

	args := map[string]interface{}{
		"payment_id": paymentID,
	}

	_, err = stmt.Exec(args)
	if err != nil {
		return err
	}

	return nil
}
