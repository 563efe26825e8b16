package db

import (
	"database/sql"
	"strings"

	"bitbucket.org/rutaandina/backend/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type TourRequestStorage interface {
	InsertTourRequest(*models.InsertTourRequestOpts) (*models.TourRequest, error)
	GetTourRequests(*models.GetTourRequestsOpts) (*models.TourRequestsStruct, error)
	GetTourRequestByID(requestID int) (*models.TourRequest, error)
	UpdateTourRequest(requestID int, opts *models.UpdateTourRequestOpts) error
	CancelTourRequest(requestID int, reason string) error
}

const (
	insertTourRequest = `
	INSERT
		tour_request
	SET
		user_id = :user_id,
		name = :name,
		email = :email,
		contact_number = :contact_number,
		start_location = :start_location,
		start_date = :start_date,
		selected_locations = :selected_locations,
		number_of_people = :number_of_people,
		duration_days = :duration_days,
		tour_type = :tour_type,
		base_price_per_person = :base_price_per_person,
		status = :status
	`

	getTourRequestByID = `
	SELECT
		id,
		user_id,
		name,
		email,
		contact_number,
		start_location,
		start_date,
		selected_locations,
		number_of_people,
		duration_days,
		tour_type,
		base_price_per_person,
		status,
		COALESCE(cancel_reason, ''),
		created,
		updated
	FROM
		tour_request
	WHERE
		active = 1 AND
		id = :request_id
	`

	getTourRequests = `
	SELECT
		id,
		user_id,
		name,
		email,
		contact_number,
		start_location,
		start_date,
		selected_locations,
		number_of_people,
		duration_days,
		tour_type,
		base_price_per_person,
		status,
		COALESCE(cancel_reason, ''),
		created,
		updated
	FROM
		tour_request
	WHERE
		tour_request.active = 1
		#FILTERS#
	ORDER BY
		tour_request.created DESC
	LIMIT :limit_to OFFSET :limit_from
	`

	countTourRequests = `
	SELECT
		COUNT(id)
	FROM
		tour_request
	WHERE
		tour_request.active = 1
		#FILTERS#
	`

	updateTourRequest = `
	UPDATE
		tour_request
	SET
		#SETS#
	WHERE
		active = 1 AND
		id = :request_id
	`

	cancelTourRequest = `
	UPDATE
		tour_request
	SET
		status = :status,
		cancel_reason = :cancel_reason
	WHERE
		active = 1 AND
		id = :request_id
	`
)

func (db *DB) InsertTourRequest(opts *models.InsertTourRequestOpts) (*models.TourRequest, error) {
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

	stmt, err := tx.PrepareNamed(insertTourRequest)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"user_id":               opts.UserID,
		"name":                  opts.Name,
		"email":                 opts.Email,
		"contact_number":        opts.ContactNumber,
		"start_location":        opts.StartLocation,
		"start_date":            opts.StartDate,
		"selected_locations":    models.StringList(opts.SelectedLocations),
		"number_of_people":      opts.NumberOfPeople,
		"duration_days":         opts.DurationDays,
		"tour_type":             opts.TourType,
		"base_price_per_person": opts.BasePricePerPerson,
		"status":                ConstTourRequestStatuses.Pending,
	}

	result, err := stmt.Exec(args)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	request := models.TourRequest{
		ID:                 int(id),
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
		Status:             ConstTourRequestStatuses.Pending,
	}

	return &request, nil
}

func (db *DB) GetTourRequestByID(requestID int) (*models.TourRequest, error) {
	stmt, err := db.PrepareNamed(getTourRequestByID)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"request_id": requestID,
	}

	row := stmt.QueryRow(args)

	var request models.TourRequest
	if err := scanTourRequest(row.Scan, &request); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &request, nil
}

func scanTourRequest(scan func(...interface{}) error, request *models.TourRequest) error {
	return scan(
		&request.ID,
		&request.UserID,
		&request.Name,
		&request.Email,
		&request.ContactNumber,
		&request.StartLocation,
		&request.StartDate,
		&request.SelectedLocations,
		&request.NumberOfPeople,
		&request.DurationDays,
		&request.TourType,
		&request.BasePricePerPerson,
		&request.Status,
		&request.CancelReason,
		&request.Created,
		&request.Updated,
	)
}

func (db *DB) GetTourRequests(opts *models.GetTourRequestsOpts) (*models.TourRequestsStruct, error) {
	var filters string
	args := make(map[string]interface{})
	if len(opts.Statuses) == 1 {
		filters += " AND tour_request.status = :status "
		args["status"] = opts.Statuses[0]
	}
	if len(opts.UserIDs) > 0 {
		filters += " AND tour_request.user_id IN (:user_ids) "
		args["user_ids"] = opts.UserIDs
	}
	if opts.LimitTo == 0 {
		opts.LimitTo = 100
	}
	args["limit_to"] = opts.LimitTo
	args["limit_from"] = opts.LimitFrom

	totalRequests, err := db.countTourRequests(filters, args)
	if err != nil {
		return nil, err
	}

	query := strings.ReplaceAll(getTourRequests, "#FILTERS#", filters)
	query, nargs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, err
	}

	query, nargs, err = sqlx.In(query, nargs...)
	if err != nil {
		return nil, err
	}

	query = db.Rebind(query)

	rows, err := db.Query(query, nargs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := models.TourRequestsStruct{
		Total: totalRequests,
	}
	for rows.Next() {
		var request models.TourRequest
		if err := scanTourRequest(rows.Scan, &request); err != nil {
			return nil, err
		}

		requests.TourRequests = append(requests.TourRequests, request)
	}

	return &requests, nil
}

func (db *DB) countTourRequests(filters string, args map[string]interface{}) (int, error) {
	query := strings.ReplaceAll(countTourRequests, "#FILTERS#", filters)
	query, nargs, err := sqlx.Named(query, args)
	if err != nil {
		return 0, err
	}

	query, nargs, err = sqlx.In(query, nargs...)
	if err != nil {
		return 0, err
	}

	query = db.Rebind(query)

	row := db.QueryRow(query, nargs...)
	var total int
	if err := row.Scan(
		&total,
	); err != nil {
		return 0, err
	}

	return total, nil
}

// Truthy-wins, same contract as the rosters.
func (db *DB) UpdateTourRequest(requestID int, opts *models.UpdateTourRequestOpts) error {
	var sets []string
	args := map[string]interface{}{
		"request_id": requestID,
	}
	if opts.UserID != 0 {
		sets = append(sets, "user_id = :user_id")
		args["user_id"] = opts.UserID
	}
	if opts.Name != "" {
		sets = append(sets, "name = :name")
		args["name"] = opts.Name
	}
	if opts.Email != "" {
		sets = append(sets, "email = :email")
		args["email"] = opts.Email
	}
	if opts.ContactNumber != "" {
		sets = append(sets, "contact_number = :contact_number")
		args["contact_number"] = opts.ContactNumber
	}
	if opts.StartLocation != "" {
		sets = append(sets, "start_location = :start_location")
		args["start_location"] = opts.StartLocation
	}
	if opts.StartDate != "" {
		sets = append(sets, "start_date = :start_date")
		args["start_date"] = opts.StartDate
	}
	if len(opts.SelectedLocations) > 0 {
		sets = append(sets, "selected_locations = :selected_locations")
		args["selected_locations"] = models.StringList(opts.SelectedLocations)
	}
	if opts.NumberOfPeople != 0 {
		sets = append(sets, "number_of_people = :number_of_people")
		args["number_of_people"] = opts.NumberOfPeople
	}
	if opts.DurationDays != 0 {
		sets = append(sets, "duration_days = :duration_days")
		args["duration_days"] = opts.DurationDays
	}
	if opts.TourType != "" {
		sets = append(sets, "tour_type = :tour_type")
		args["tour_type"] = opts.TourType
	}
	if opts.BasePricePerPerson != 0 {
		sets = append(sets, "base_price_per_person = :base_price_per_person")
		args["base_price_per_person"] = opts.BasePricePerPerson
	}

	if len(sets) == 0 {
		return nil
	}

	query := strings.ReplaceAll(updateTourRequest, "#SETS#", strings.Join(sets, ", "))
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

func (db *DB) CancelTourRequest(requestID int, reason string) error {
	stmt, err := db.PrepareNamed(cancelTourRequest)
	if err != nil {
		return err
	}

	args := map[string]interface{}{
		"request_id":    requestID,
		"status":        ConstTourRequestStatuses.Cancelled,
		"cancel_reason": reason,
	}

	_, err = stmt.Exec(args)
	if err != nil {
		return err
	}

	return nil
}
