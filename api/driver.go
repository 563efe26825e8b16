package api

import (
	"net/http"
	"strconv"

	"bitbucket.org/rutaandina/backend/config"
	"bitbucket.org/rutaandina/backend/middlewares"
	"bitbucket.org/rutaandina/backend/models"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/thedevsaddam/govalidator"
)

func InsertDriver(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	var opts models.InsertDriverOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.InsertDriverRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	driver, err := ctx.DB.InsertDriver(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusCreated, driver, nil, "")
}

func GetDrivers(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.GetDriversRules,
	}
	v := govalidator.New(validatorOpts)
	errs := v.Validate()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	var opts models.GetDriversOpts
	decoder := schema.NewDecoder()
	decoder.Decode(&opts, r.URL.Query())

	drivers, err := ctx.DB.GetDrivers(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusOK, drivers, nil, "")
}

func GetDriver(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	driverID, err := strconv.Atoi(vars["driver_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing driver id")
		return
	}

	driver, err := ctx.DB.GetDriverByID(driverID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if driver == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.DriverNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, driver, nil, "")
}

func UpdateDriver(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	driverID, err := strconv.Atoi(vars["driver_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing driver id")
		return
	}

	var opts models.UpdateDriverOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.UpdateDriverRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	driver, err := ctx.DB.GetDriverByID(driverID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if driver == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.DriverNotFound)
		return
	}

	if err := ctx.DB.UpdateDriver(driverID, &opts); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	driver, err = ctx.DB.GetDriverByID(driverID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	// gone between the update and the re-read
	if driver == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.DriverNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, driver, nil, "")
}

func DeleteDriver(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	driverID, err := strconv.Atoi(vars["driver_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing driver id")
		return
	}

	driver, err := ctx.DB.GetDriverByID(driverID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if driver == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.DriverNotFound)
		return
	}

	if err := ctx.DB.DeleteDriver(driverID); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusNoContent, nil, nil, "")
}
