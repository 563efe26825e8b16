package api

import (
	"bytes"
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

type fakeDriverStorage struct {
	db.Storage

	drivers map[int]*models.Driver

	insertedOpts *models.InsertDriverOpts
	updatedOpts  *models.UpdateDriverOpts
	deletedID    int

	deleteOnUpdate bool
}

func (f *fakeDriverStorage) InsertDriver(opts *models.InsertDriverOpts) (*models.Driver, error) {
	f.insertedOpts = opts
	status := opts.Status
	if status == "" {
		status = db.ConstRosterStatuses.Active
	}
	driver := &models.Driver{
		ID:            1,
		Name:          opts.Name,
		ContactNumber: opts.ContactNumber,
		AssignedTours: models.StringList(opts.AssignedTours),
		Status:        status,
	}
	if f.drivers == nil {
		f.drivers = make(map[int]*models.Driver)
	}
	f.drivers[driver.ID] = driver
	return driver, nil
}

func (f *fakeDriverStorage) GetDriverByID(driverID int) (*models.Driver, error) {
	driver, ok := f.drivers[driverID]
	if !ok {
		return nil, nil
	}
	copied := *driver
	return &copied, nil
}

func (f *fakeDriverStorage) GetDrivers(opts *models.GetDriversOpts) (*models.DriversStruct, error) {
	result := &models.DriversStruct{Drivers: []models.Driver{}}
	for _, driver := range f.drivers {
		result.Drivers = append(result.Drivers, *driver)
	}
	result.Total = len(result.Drivers)
	return result, nil
}

func (f *fakeDriverStorage) UpdateDriver(driverID int, opts *models.UpdateDriverOpts) error {
	f.updatedOpts = opts
	if f.deleteOnUpdate {
		delete(f.drivers, driverID)
		return nil
	}
	driver := f.drivers[driverID]
	if opts.Name != "" {
		driver.Name = opts.Name
	}
	if opts.ContactNumber != "" {
		driver.ContactNumber = opts.ContactNumber
	}
	if len(opts.AssignedTours) > 0 {
		driver.AssignedTours = models.StringList(opts.AssignedTours)
	}
	if opts.Status != "" {
		driver.Status = opts.Status
	}
	return nil
}

func (f *fakeDriverStorage) DeleteDriver(driverID int) error {
	f.deletedID = driverID
	delete(f.drivers, driverID)
	return nil
}

func newDriverContext(storage db.Storage) *config.AppContext {
	return &config.AppContext{DB: storage}
}

func jsonRequest(method, target, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestInsertDriver(t *testing.T) {
	storage := &fakeDriverStorage{}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := jsonRequest("POST", "/drivers", `{"name":"Pedro Rojas","contact_number":"+56911112222","assigned_tours":["atacama-3d"]}`)

	InsertDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotNil(t, storage.insertedOpts)
	assert.Equal(t, "Pedro Rojas", storage.insertedOpts.Name)
	assert.Contains(t, recorder.Body.String(), `"status":"Active"`)
}

func TestInsertDriverFailedValidations(t *testing.T) {
	storage := &fakeDriverStorage{}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := jsonRequest("POST", "/drivers", `{"assigned_tours":["atacama-3d"]}`)

	InsertDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "name")
	assert.Contains(t, recorder.Body.String(), "contact_number")
	assert.Nil(t, storage.insertedOpts)
}

func TestGetDriverNotFound(t *testing.T) {
	storage := &fakeDriverStorage{}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/drivers/99", nil)
	r = mux.SetURLVars(r, map[string]string{"driver_id": "99"})

	GetDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Driver not found")
}

func TestUpdateDriverKeepsUntouchedFields(t *testing.T) {
	storage := &fakeDriverStorage{
		drivers: map[int]*models.Driver{
			1: {ID: 1, Name: "Pedro Rojas", ContactNumber: "+56911112222", Status: db.ConstRosterStatuses.Active},
		},
	}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/drivers/1", `{"status":"Inactive","name":""}`)
	r = mux.SetURLVars(r, map[string]string{"driver_id": "1"})

	UpdateDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Inactive", storage.drivers[1].Status)
	assert.Equal(t, "Pedro Rojas", storage.drivers[1].Name)
	assert.Contains(t, recorder.Body.String(), `"status":"Inactive"`)
	assert.Contains(t, recorder.Body.String(), "Pedro Rojas")
}

func TestUpdateDriverNotFound(t *testing.T) {
	storage := &fakeDriverStorage{}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/drivers/7", `{"status":"Inactive"}`)
	r = mux.SetURLVars(r, map[string]string{"driver_id": "7"})

	UpdateDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Nil(t, storage.updatedOpts)
}

func TestUpdateDriverDeletedDuringUpdate(t *testing.T) {
	storage := &fakeDriverStorage{
		drivers: map[int]*models.Driver{
			1: {ID: 1, Name: "Pedro Rojas", Status: db.ConstRosterStatuses.Active},
		},
		deleteOnUpdate: true,
	}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := jsonRequest("PUT", "/drivers/1", `{"status":"Inactive"}`)
	r = mux.SetURLVars(r, map[string]string{"driver_id": "1"})

	UpdateDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Driver not found")
	assert.NotContains(t, recorder.Body.String(), "null")
}

func TestDeleteDriver(t *testing.T) {
	storage := &fakeDriverStorage{
		drivers: map[int]*models.Driver{
			1: {ID: 1, Name: "Pedro Rojas"},
		},
	}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("DELETE", "/drivers/1", nil)
	r = mux.SetURLVars(r, map[string]string{"driver_id": "1"})

	DeleteDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, 1, storage.deletedID)
}

func TestDeleteDriverNotFound(t *testing.T) {
	storage := &fakeDriverStorage{}
	ctx := newDriverContext(storage)

	recorder := httptest.NewRecorder()
	r := httptest.NewRequest("DELETE", "/drivers/1", nil)
	r = mux.SetURLVars(r, map[string]string{"driver_id": "1"})

	DeleteDriver(ctx, middlewares.NewResponseWriter(recorder), r)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 0, storage.deletedID)
}
