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
)

type fakeTourRequestStorage struct {
	db.Storage

	requests map[int]*models.TourRequest

	insertedOpts *models.InsertTourRequestOpts
	updatedOpts  *models.UpdateTourRequestOpts
	cancelReason string
}

func (f *fakeTourRequestStorage) InsertTourRequest(opts *models.InsertTourRequestOpts) (*models.TourRequest, error) {
	f.insertedOpts = opts
	request := &models.TourRequest{
		ID:                 1,
		UserID:             opts.UserID,
		Name:               opts.Name,
		Email:              opts.Email,
		ContactNumber:      opts.ContactNumber,
		StartLocation:      opts.StartLocation,
		StartDate:          opts.StartDate,
		SelectedLocations:  models.StringList(opts.SelectedLocations),
		NumberOfPeople:     opts.NumberOfPeople,
		DurationDays:       opts.DurationDays,
		TourType:           opts.TourType,
		BasePricePerPerson: opts.BasePricePerPerson,
		Status:             db.ConstTourRequestStatuses.Pending,
	}
	if f.requests == nil {
		f.requests = make(map[int]*models.TourRequest)
	}
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeTourRequestStorage) GetTourRequestByID(requestID int) (*models.TourRequest, error) {
	request, ok := f.requests[requestID]
	if !ok {
		return nil, nil
	}
	copied := *request
	return &copied, nil
}

func (f *fakeTourRequestStorage) UpdateTourRequest(requestID int, opts *models.UpdateTourRequestOpts) error {
	f.updatedOpts = opts
	request := f.requests[requestID]
	if opts.Name != "" {
		request.Name = opts.Name
	}
	if opts.NumberOfPeople > 0 {
		request.NumberOfPeople = opts.NumberOfPeople
	}
	return nil
}

func (f *fakeTourRequestStorage) CancelTourRequest(requestID int, reason string) error {
	f.cancelReason = reason
	request := f.requests[requestID]
	request.Status = db.ConstTourRequestStatuses.Cancelled
	request.CancelReason = reason
	return nil
}

func validTourRequestBody() string {
	return `{
		"user_id": 7,
		"name": "Maria Soto",
		"email": "maria@example.com",
		"contact_number": "+56911112222",
		"start_location": "Santiago",
		"start_date": "2026-10-01",
		"selected_locations": ["Valparaiso","Atacama"],
		"number_of_people": 4,
		"duration_days": 3,
		"tour_type": "Standard",
		"base_price_per_person": 0
	}`
}

func TestInsertTourRequest(t *testing.T) {
	storage := &fakeTourRequestStorage{}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()

	InsertTourRequest(ctx, middlewares.NewResponseWriter(recorder), jsonRequest("POST", "/tourrequests", validTourRequestBody()))

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotNil(t, storage.insertedOpts)
	// a zero base price is a legitimate value
	assert.Equal(t, float64(0), storage.insertedOpts.BasePricePerPerson)
	assert.Contains(t, recorder.Body.String(), `"status":"Pending"`)
}

func TestInsertTourRequestCollectsFieldErrors(t *testing.T) {
	storage := &fakeTourRequestStorage{}
	ctx := &config.AppContext{DB: storage}

	body := `{
		"user_id": 7,
		"name": "Maria Soto",
		"email": "not-an-email",
		"contact_number": "+56911112222",
		"start_location": "Santiago",
		"start_date": "01-10-2026",
		"selected_locations": ["Valparaiso"],
		"number_of_people": 0,
		"duration_days": 3,
		"tour_type": "Deluxe",
		"base_price_per_person": 120
	}`
	recorder := httptest.NewRecorder()

	InsertTourRequest(ctx, middlewares.NewResponseWriter(recorder), jsonRequest("POST", "/tourrequests", body))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "email")
	assert.Contains(t, recorder.Body.String(), "start_date")
	assert.Contains(t, recorder.Body.String(), "number_of_people")
	assert.Contains(t, recorder.Body.String(), "tour_type")
	assert.Nil(t, storage.insertedOpts)
}

func TestGetTourRequestNotFound(t *testing.T) {
	storage := &fakeTourRequestStorage{}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/tourrequests/9", nil)
	r = mux.SetURLVars(r, map[string]string{"request_id": "9"})

	GetTourRequest(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Tour request not found")
}

func TestUpdateTourRequestKeepsUntouchedFields(t *testing.T) {
	storage := &fakeTourRequestStorage{
		requests: map[int]*models.TourRequest{
			1: {ID: 1, Name: "Maria Soto", NumberOfPeople: 4, Status: db.ConstTourRequestStatuses.Pending},
		},
	}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/tourrequests/1", `{"number_of_people":6}`)
	r = mux.SetURLVars(r, map[string]string{"request_id": "1"})

	UpdateTourRequest(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 6, storage.requests[1].NumberOfPeople)
	assert.Equal(t, "Maria Soto", storage.requests[1].Name)
}

func TestCancelTourRequestRequiresReason(t *testing.T) {
	storage := &fakeTourRequestStorage{
		requests: map[int]*models.TourRequest{
			1: {ID: 1, Status: db.ConstTourRequestStatuses.Pending},
		},
	}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/tourrequests/1/cancel", `{}`)
	r = mux.SetURLVars(r, map[string]string{"request_id": "1"})

	CancelTourRequest(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "reason")
	assert.Equal(t, db.ConstTourRequestStatuses.Pending, storage.requests[1].Status)
}

func TestCancelTourRequest(t *testing.T) {
	storage := &fakeTourRequestStorage{
		requests: map[int]*models.TourRequest{
			1: {ID: 1, Status: db.ConstTourRequestStatuses.Pending},
		},
	}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/tourrequests/1/cancel", `{"reason":"weather"}`)
	r = mux.SetURLVars(r, map[string]string{"request_id": "1"})

	CancelTourRequest(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "weather", storage.cancelReason)
	assert.Contains(t, recorder.Body.String(), `"status":"Cancelled"`)
	assert.Contains(t, recorder.Body.String(), "weather")
}

func TestCancelTourRequestAlreadyCancelled(t *testing.T) {
	storage := &fakeTourRequestStorage{
		requests: map[int]*models.TourRequest{
			1: {ID: 1, Status: db.ConstTourRequestStatuses.Cancelled, CancelReason: "weather"},
		},
	}
	ctx := &config.AppContext{DB: storage}

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/tourrequests/1/cancel", `{"reason":"again"}`)
	r = mux.SetURLVars(r, map[string]string{"request_id": "1"})

	CancelTourRequest(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "already cancelled")
	assert.Equal(t, "weather", storage.requests[1].CancelReason)
}
