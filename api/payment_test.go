package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/rutaandina/backend/config"
	"bitbucket.org/rutaandina/backend/db"
	"bitbucket.org/rutaandina/backend/middlewares"
	"bitbucket.org/rutaandina/backend/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentStorage struct {
	db.Storage

	payments map[int]*models.Payment

	insertedOpts *models.InsertPaymentOpts
	updatedOpts  *models.UpdatePaymentOpts
	deletedID    int

	deleteOnUpdate bool
}

func (f *fakePaymentStorage) InsertPayment(opts *models.InsertPaymentOpts) (*models.Payment, error) {
	f.insertedOpts = opts
	userID := opts.UserID
	if userID == 0 {
		userID = db.ConstDefaultPaymentUserID
	}
	payment := &models.Payment{
		ID:          1,
		Reference:   "ref-test",
		UserID:      userID,
		Card:        opts.Card,
		Products:    models.ProductList(opts.Products),
		TotalAmount: opts.TotalAmount,
		Status:      db.ConstPaymentStatuses.Success,
	}
	if f.payments == nil {
		f.payments = make(map[int]*models.Payment)
	}
	f.payments[payment.ID] = payment
	return payment, nil
}

func (f *fakePaymentStorage) GetPayments() (*models.PaymentsStruct, error) {
	result := &models.PaymentsStruct{Payments: []models.Payment{}}
	for _, payment := range f.payments {
		result.Payments = append(result.Payments, *payment)
	}
	result.Total = len(result.Payments)
	return result, nil
}

func (f *fakePaymentStorage) GetPaymentByID(paymentID int) (*models.Payment, error) {
	payment, ok := f.payments[paymentID]
	if !ok {
		return nil, nil
	}
	copied := *payment
	return &copied, nil
}

func (f *fakePaymentStorage) UpdatePayment(paymentID int, opts *models.UpdatePaymentOpts) error {
	f.updatedOpts = opts
	if f.deleteOnUpdate {
		delete(f.payments, paymentID)
		return nil
	}
	payment := f.payments[paymentID]
	if opts.UserID != nil {
		payment.UserID = *opts.UserID
	}
	if opts.Card != nil {
		payment.Card = *opts.Card
	}
	if opts.Products != nil {
		payment.Products = *opts.Products
	}
	if opts.TotalAmount != nil {
		payment.TotalAmount = *opts.TotalAmount
	}
	if opts.Status != nil {
		payment.Status = *opts.Status
	}
	return nil
}

func (f *fakePaymentStorage) DeletePayment(paymentID int) error {
	f.deletedID = paymentID
	delete(f.payments, paymentID)
	return nil
}

func testPayment() *models.Payment {
	return &models.Payment{
		ID:        1,
		Reference: "ref-test",
		UserID:    db.ConstDefaultPaymentUserID,
		Card: models.Card{
			HolderName:  "Maria Soto",
			CardNumber:  "4111 1111 1111 1234",
			ExpiryMonth: 4,
			ExpiryYear:  2028,
			CVV:         "123",
		},
		Products: models.ProductList{
			{ProductID: "atacama-3d", Name: "Atacama 3 días", Price: 150, Quantity: 2},
		},
		TotalAmount: 300,
		Status:      db.ConstPaymentStatuses.Success,
	}
}

func TestInsertPaymentForcesSuccess(t *testing.T) {
	storage := &fakePaymentStorage{}
	ctx := &config.AppContext{DB: storage}

	body := `{
		"card": {"holder_name":"Maria Soto","card_number":"4111 1111 1111 1234","expiry_month":4,"expiry_year":2028,"cvv":"123"},
		"products": [{"product_id":"atacama-3d","name":"Atacama 3 días","price":150,"quantity":2}],
		"total_amount": 300
	}`
	recorder := httptest.NewRecorder()

	InsertPayment(ctx, middlewares.NewResponseWriter(recorder), jsonRequest("POST", "/payments", body))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	require.NotNil(t, storage.insertedOpts)
	assert.Equal(t, "4111 1111 1111 1234", storage.insertedOpts.Card.CardNumber)
	assert.Equal(t, db.ConstPaymentStatuses.Success, storage.payments[1].Status)
	assert.Equal(t, db.ConstDefaultPaymentUserID, storage.payments[1].UserID)
	assert.Contains(t, recorder.Body.String(), `"status":"success"`)
}

func TestInsertPaymentFailedValidations(t *testing.T) {
	storage := &fakePaymentStorage{}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()

	InsertPayment(ctx, middlewares.NewResponseWriter(recorder), jsonRequest("POST", "/payments", `{"total_amount":300}`))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "card.card_number")
	assert.Contains(t, recorder.Body.String(), "card.cvv")
	assert.Contains(t, recorder.Body.String(), "products")
	assert.Nil(t, storage.insertedOpts)
}

func TestGetPaymentsMasksCardNumbers(t *testing.T) {
	storage := &fakePaymentStorage{payments: map[int]*models.Payment{1: testPayment()}}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()

	GetPayments(ctx, middlewares.NewResponseWriter(recorder), httptest.NewRequest("GET", "/payments", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "**** **** **** 1234")
	assert.NotContains(t, recorder.Body.String(), "4111")
}

func TestGetPaymentMasksCardNumber(t *testing.T) {
	storage := &fakePaymentStorage{payments: map[int]*models.Payment{1: testPayment()}}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/payments/1", nil)
	r = mux.SetURLVars(r, map[string]string{"payment_id": "1"})

	GetPayment(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "**** **** **** 1234")
	assert.NotContains(t, recorder.Body.String(), "4111")
	// the stored record keeps the number intact
	assert.Equal(t, "4111 1111 1111 1234", storage.payments[1].Card.CardNumber)
}

func TestGetPaymentNotFound(t *testing.T) {
	storage := &fakePaymentStorage{}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/payments/5", nil)
	r = mux.SetURLVars(r, map[string]string{"payment_id": "5"})

	GetPayment(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Payment not found")
}

func TestUpdatePaymentOverwritesPresentFields(t *testing.T) {
	storage := &fakePaymentStorage{payments: map[int]*models.Payment{1: testPayment()}}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/payments/1", `{"status":"failed","total_amount":0}`)
	r = mux.SetURLVars(r, map[string]string{"payment_id": "1"})

	UpdatePayment(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "failed", storage.payments[1].Status)
	// zero values present in the body overwrite, unlike the rosters
	assert.Equal(t, float64(0), storage.payments[1].TotalAmount)
	assert.Equal(t, "Maria Soto", storage.payments[1].Card.HolderName)
	assert.Contains(t, recorder.Body.String(), "**** **** **** 1234")
}

func TestUpdatePaymentDeletedDuringUpdate(t *testing.T) {
	storage := &fakePaymentStorage{
		payments:       map[int]*models.Payment{1: testPayment()},
		deleteOnUpdate: true,
	}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/payments/1", `{"status":"failed"}`)
	r = mux.SetURLVars(r, map[string]string{"payment_id": "1"})

	UpdatePayment(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Payment not found")
	assert.NotContains(t, recorder.Body.String(), "null")
}

func TestUpdatePaymentNotFound(t *testing.T) {
	storage := &fakePaymentStorage{}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/payments/3", `{"status":"failed"}`)
	r = mux.SetURLVars(r, map[string]string{"payment_id": "3"})

	UpdatePayment(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Nil(t, storage.updatedOpts)
}

func TestDeletePayment(t *testing.T) {
	storage := &fakePaymentStorage{payments: map[int]*models.Payment{1: testPayment()}}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("DELETE", "/payments/1", nil)
	r = mux.SetURLVars(r, map[string]string{"payment_id": "1"})

	DeletePayment(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, 1, storage.deletedID)
}
