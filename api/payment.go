package api

import (
	"fmt"
	"net/http"
	"strconv"

	"bitbucket.org/rutaandina/backend/cardvault"
	"bitbucket.org/rutaandina/backend/config"
	"bitbucket.org/rutaandina/backend/helpers"
	"bitbucket.org/rutaandina/backend/middlewares"
	"bitbucket.org/rutaandina/backend/models"
	"github.com/gorilla/mux"
	"github.com/thedevsaddam/govalidator"
)

// InsertPayment persists the record with status forced to success; no
// payment processor is consulted. The created record is returned
// unmasked, every later read goes through the vault mask.
func InsertPayment(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)
	w.StartLogger("InsertPayment")

	var opts models.InsertPaymentOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.InsertPaymentRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	payment, err := ctx.DB.InsertPayment(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	go func(ctx *config.AppContext, payment *models.Payment) {
		if ctx.AwsS3 == nil {
			return
		}

		pdfBuffer, err := helpers.GenerateReceiptPDF(payment)
		if err != nil {
			w.LogError(err, "failed generating receipt")
			return
		}

		url, err := helpers.AddFileToS3(ctx, pdfBuffer, fmt.Sprintf("%s/%d.pdf", ctx.Config.AwsS3.S3PathReceipt, payment.ID))
		if err != nil {
			w.LogError(err, "failed uploading receipt")
			return
		}

		w.LogInfo(url, "success uploading receipt")
	}(ctx, payment)

	w.WriteJSON(http.StatusCreated, payment, nil, "")
}

func GetPayments(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	payments, err := ctx.DB.GetPayments()
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	cardvault.MaskAll(payments.Payments)

	w.WriteJSON(http.StatusOK, payments, nil, "")
}

func GetPayment(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	paymentID, err := strconv.Atoi(vars["payment_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing payment id")
		return
	}

	payment, err := ctx.DB.GetPaymentByID(paymentID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if payment == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.PaymentNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, cardvault.Mask(payment), nil, "")
}

// UpdatePayment overwrites every field present in the body, zero
// values included, then responds with the masked record.
func UpdatePayment(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	paymentID, err := strconv.Atoi(vars["payment_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing payment id")
		return
	}

	var opts models.UpdatePaymentOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.UpdatePaymentRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	payment, err := ctx.DB.GetPaymentByID(paymentID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if payment == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.PaymentNotFound)
		return
	}

	if err := ctx.DB.UpdatePayment(paymentID, &opts); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	payment, err = ctx.DB.GetPaymentByID(paymentID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	// gone between the update and the re-read
	if payment == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.PaymentNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, cardvault.Mask(payment), nil, "")
}

func DeletePayment(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	paymentID, err := strconv.Atoi(vars["payment_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing payment id")
		return
	}

	payment, err := ctx.DB.GetPaymentByID(paymentID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if payment == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.PaymentNotFound)
		return
	}

	if err := ctx.DB.DeletePayment(paymentID); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusNoContent, nil, nil, "")
}
