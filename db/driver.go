package db

import (
	"database/sql"
	"strings"

	"bitbucket.org/rutaandina/backend/models"
	"github.com/pkg/errors"
)

type DriverStorage interface {
	InsertDriver(*models.InsertDriverOpts) (*models.Driver, error)
	GetDrivers(*models.GetDriversOpts) (*models.DriversStruct, error)
	GetDriverByID(driverID int) (*models.Driver, error)
	UpdateDriver(driverID int, opts *models.UpdateDriverOpts) error
	DeleteDriver(driverID int) error
}

const (
	insertDriver = `
	INSERT
		driver
	SET
		name = :name,
		contact_number = :contact_number,
		assigned_tours = :assigned_tours,
		status = :status
	`

	getDriverByID = `
	SELECT
		id,
		name,
		contact_number,
		assigned_tours,
		status,
		created,
		updated
	FROM
		driver
	WHERE
		active = 1 AND
		id = :driver_id
	`

	getDrivers = `
	SELECT
		id,
		name,
		contact_number,
		assigned_tours,
		status,
		created,
		updated
	FROM
		driver
	WHERE
		driver.active = 1
		#FILTERS#
	ORDER BY
		driver.created DESC
	LIMIT :limit_to OFFSET :limit_from
	`

	countDrivers = `
	SELECT
		COUNT(id)
	FROM
		driver
	WHERE
		driver.active = 1
		#FILTERS#
	`

	updateDriver = `
	UPDATE
		driver
	SET
		#SETS#
	WHERE
		active = 1 AND
		id = :driver_id
	`

	deleteDriver = `
	UPDATE
		driver
	SET
		active = 0
	WHERE
		active = 1 AND
		id = :driver_id
	`
)

func (db *DB) InsertDriver(opts *models.InsertDriverOpts) (*models.Driver, error) {
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

	status := opts.Status
	if status == "" {
		status = ConstRosterStatuses.Active
	}

	stmt, err := tx.PrepareNamed(insertDriver)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"name":           opts.Name,
		"contact_number": opts.ContactNumber,
		"assigned_tours": models.StringList(opts.AssignedTours),
		"status":         status,
	}

	result, err := stmt.Exec(args)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	driver := models.Driver{
		ID:            int(id),
		Name:          opts.Name,
		ContactNumber: opts.ContactNumber,
		AssignedTours: models.StringList(opts.AssignedTours),
		Status:        status,
	}

	return &driver, nil
}

func (db *DB) GetDriverByID(driverID int) (*models.Driver, error) {
	stmt, err := db.PrepareNamed(getDriverByID)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"driver_id": driverID,
	}

	row := stmt.QueryRow(args)

	var driver models.Driver
	if err := row.Scan(
		&driver.ID,
		&driver.Name,
		&driver.ContactNumber,
		&driver.AssignedTours,
		&driver.Status,
		&driver.Created,
		&driver.Updated,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &driver, nil
}

func (db *DB) GetDrivers(opts *models.GetDriversOpts) (*models.DriversStruct, error) {
	var filters string
	args := make(map[string]interface{})
	if len(opts.Statuses) == 1 {
		filters += " AND driver.status = :status "
		args["status"] = opts.Statuses[0]
	}
	if opts.LimitTo == 0 {
		opts.LimitTo = 100
	}
	args["limit_to"] = opts.LimitTo
	args["limit_from"] = opts.LimitFrom

	totalDrivers, err := db.countDrivers(filters, args)
	if err != nil {
		return nil, err
	}

	query := strings.ReplaceAll(getDrivers, "#FILTERS#", filters)
	stmt, err := db.PrepareNamed(query)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := models.DriversStruct{
		Total: totalDrivers,
	}
	for rows.Next() {
		var driver models.Driver
		if err := rows.Scan(
			&driver.ID,
			&driver.Name,
			&driver.ContactNumber,
			&driver.AssignedTours,
			&driver.Status,
			&driver.Created,
			&driver.Updated,
		); err != nil {
			return nil, err
		}

		drivers.Drivers = append(drivers.Drivers, driver)
	}

	return &drivers, nil
}

func (db *DB) countDrivers(filters string, args map[string]interface{}) (int, error) {
	query := strings.ReplaceAll(countDrivers, "#FILTERS#", filters)
	stmt, err := db.PrepareNamed(query)
	if err != nil {
		return 0, err
	}

	row := stmt.QueryRow(args)
	var total int
	if err := row.Scan(
		&total,
	); err != nil {
		return 0, err
	}

	return total, nil
}

// UpdateDriver writes only the truthy fields of opts. An empty string
// or empty list cannot clear a stored value.
func (db *DB) UpdateDriver(driverID int, opts *models.UpdateDriverOpts) error {
	var sets []string
	args := map[string]interface{}{
		"driver_id": driverID,
	}
	if opts.Name != "" {
		sets = append(sets, "name = :name")
		args["name"] = opts.Name
	}
	if opts.ContactNumber != "" {
		sets = append(sets, "contact_number = :contact_number")
		args["contact_number"] = opts.ContactNumber
	}
	if len(opts.AssignedTours) > 0 {
		sets = append(sets, "assigned_tours = :assigned_tours")
		args["assigned_tours"] = models.StringList(opts.AssignedTours)
	}
	if opts.Status != "" {
		sets = append(sets, "status = :status")
		args["status"] = opts.Status
	}

	if len(sets) == 0 {
		return nil
	}

	query := strings.ReplaceAll(updateDriver, "#SETS#", strings.Join(sets, ", "))
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

func (db *DB) DeleteDriver(driverID int) error {
	stmt, err := db.PrepareNamed(deleteDriver)
	if err != nil {
		return err
	}

	args := map[string]interface{}{
		"driver_id": driverID,
	}

	_, err = stmt.Exec(args)
	if err != nil {
		return err
	}

	return nil
}
