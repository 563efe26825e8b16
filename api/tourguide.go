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

func InsertTourGuide(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	var opts models.InsertTourGuideOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.InsertTourGuideRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	tourGuide, err := ctx.DB.InsertTourGuide(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusCreated, tourGuide, nil, "")
}

func GetTourGuides(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.GetTourGuidesRules,
	}
	v := govalidator.New(validatorOpts)
	errs := v.Validate()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	var opts models.GetTourGuidesOpts
	decoder := schema.NewDecoder()
	decoder.Decode(&opts, r.URL.Query())

	tourGuides, err := ctx.DB.GetTourGuides(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusOK, tourGuides, nil, "")
}

func GetTourGuide(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	tourGuideID, err := strconv.Atoi(vars["tour_guide_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing tour guide id")
		return
	}

	tourGuide, err := ctx.DB.GetTourGuideByID(tourGuideID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if tourGuide == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourGuideNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, tourGuide, nil, "")
}

func UpdateTourGuide(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	tourGuideID, err := strconv.Atoi(vars["tour_guide_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing tour guide id")
		return
	}

	var opts models.UpdateTourGuideOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.UpdateTourGuideRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	tourGuide, err := ctx.DB.GetTourGuideByID(tourGuideID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if tourGuide == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourGuideNotFound)
		return
	}

	if err := ctx.DB.UpdateTourGuide(tourGuideID, &opts); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	tourGuide, err = ctx.DB.GetTourGuideByID(tourGuideID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	// gone between the update and the re-read
	if tourGuide == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourGuideNotFound)
		return
	}

	w.WriteJSON(http.StatusOK, tourGuide, nil, "")
}

func DeleteTourGuide(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	vars := mux.Vars(r)
	tourGuideID, err := strconv.Atoi(vars["tour_guide_id"])
	if err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing tour guide id")
		return
	}

	tourGuide, err := ctx.DB.GetTourGuideByID(tourGuideID)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	if tourGuide == nil {
		w.Write(http.StatusNotFound, nil, nil, middlewares.Responses.TourGuideNotFound)
		return
	}

	if err := ctx.DB.DeleteTourGuide(tourGuideID); err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusNoContent, nil, nil, "")
}
