package api

import (
	"net/http"
	"strconv"

	"bitbucket.org/rutaandina/backend/config"
	"bitbucket.org/rutaandina/backend/db"
	"bitbucket.org/rutaandina/backend/middlewares"
	"bitbucket.org/rutaandina/backend/models"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/thedevsaddam/govalidator"
)

// InsertTourRequest rejects the payload before any persistence attempt
// when a rule fails; failures are collected per field.
func InsertTourRequest(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	var opts models.InsertTourRequestOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.InsertTourRequestRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	request, err := ctx.DB.InsertTourRequest(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusCreated, request, nil, "")
}

func GetTourRequests(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.GetTourRequestsRules,
	}
	v := govalidator.New(validatorOpts)
	errs := v.Validate()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	var opts models.GetTourRequestsOpts
	decoder := schema.NewDecoder()
	decoder.Decode(&opts, r.URL.Query())

	requests, err := ctx.DB.GetTourRequests(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusOK, requests, nil, "")
}

func GetTourRequest(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	requestID, err := strconv.Atoi(vars["request_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing request id")
		return
	}

	request, err := ctx.DB.GetTourRequestByID(requestID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if request == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourRequestNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, request, nil, "")
}

func UpdateTourRequest(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	requestID, err := strconv.Atoi(vars["request_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing request id")
		return
	}

	var opts models.UpdateTourRequestOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.UpdateTourRequestRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	request, err := ctx.DB.GetTourRequestByID(requestID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if request == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourRequestNotFound)
		return
	}

	if err := ctx.DB.UpdateTourRequest(requestID, &opts); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	request, err = ctx.DB.GetTourRequestByID(requestID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	// gone between the update and the re-read
	if request == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourRequestNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, request, nil, "")
}

// CancelTourRequest needs a non-empty reason supplied by the caller.
func CancelTourRequest(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	requestID, err := strconv.Atoi(vars["request_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing request id")
		return
	}

	var opts models.CancelTourRequestOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.CancelTourRequestRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	request, err := ctx.DB.GetTourRequestByID(requestID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if request == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourRequestNotFound)
		return
	}

	if request.Status == db.ConstTourRequestStatuses.Cancelled {
		w.Write(http.StatusBadRequest, nil, nil, middlewares.Responses.TourRequestCancelled)
		return
	}

	if err := ctx.DB.CancelTourRequest(requestID, opts.Reason); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	request, err = ctx.DB.GetTourRequestByID(requestID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	// gone between the update and the re-read
	if request == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourRequestNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, request, nil, "")
}
