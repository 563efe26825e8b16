package api

import (
	"net/http"

	"bitbucket.org/rutaandina/backend/config"
	"bitbucket.org/rutaandina/backend/db"
	"bitbucket.org/rutaandina/backend/helpers"
	"bitbucket.org/rutaandina/backend/middlewares"
	"bitbucket.org/rutaandina/backend/models"
	"github.com/gorilla/schema"
	"github.com/mitchellh/mapstructure"
	"github.com/thedevsaddam/govalidator"
)

func InsertAdminUser(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	var infoUser models.InfoUser
	mapstructure.Decode(r.Context().Value("user"), &infoUser)
	if !infoUser.IsAdmin {
		w.Write(http.StatusForbidden, nil, nil, middlewares.Responses.InvalidRoles)
		return
	}

	var opts models.InsertAdminUserOpts
	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.InsertAdminUserRules,
		Data:    &opts,
	}
	v := govalidator.New(validatorOpts)
	errs := v.ValidateJSON()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	for _, roleID := range opts.Roles {
		if !helpers.Contains([]int{
			db.ConstRoles.Admin,
			db.ConstRoles.Operator,
			db.ConstRoles.Guide,
		}, roleID) {
			w.Write(http.StatusBadRequest, nil, nil, middlewares.Responses.InvalidRoles)
			return
		}
	}

	taken, err := ctx.DB.ValidateUserEmail(opts.Email)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}
	if taken > 0 {
		w.Write(http.StatusConflict, nil, nil, middlewares.Responses.EmailAlreadyTaken)
		return
	}

	opts.Password, err = helpers.HashPassword(opts.Password)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	userID, err := ctx.DB.InsertUser(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusCreated, map[string]interface{}{"id": userID}, nil, "")
}

func GetUsers(ctx *config.AppContext, w *middlewares.ResponseWriter, r *http.Request) {
	w.GetRequestLanguage(r)

	var infoUser models.InfoUser
	mapstructure.Decode(r.Context().Value("user"), &infoUser)
	if !infoUser.IsAdmin && !infoUser.IsOperator {
		w.Write(http.StatusForbidden, nil, nil, middlewares.Responses.InvalidRoles)
		return
	}

	validatorOpts := govalidator.Options{
		Request: r,
		Rules:   models.GetUsersRules,
	}
	v := govalidator.New(validatorOpts)
	errs := v.Validate()
	if len(errs) > 0 {
		w.WriteJSON(http.StatusBadRequest, errs, nil, "failed validations")
		return
	}

	var opts models.GetUsersOpts
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	if err := decoder.Decode(&opts, r.URL.Query()); err != nil {
		w.WriteJSON(http.StatusBadRequest, nil, err, "failed parsing query params")
		return
	}

	users, err := ctx.DB.GetUsers(&opts)
	if err != nil {
		w.Write(http.StatusInternalServerError, nil, err, middlewares.Responses.InternalServerError)
		return
	}

	w.WriteJSON(http.StatusOK, users, nil, "")
}
