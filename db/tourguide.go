package db

import (
	"database/sql"
	"strings"

	"bitbucket.org/rutaandina/backend/models"
	"github.com/pkg/errors"
)

type TourGuideStorage interface {
	InsertTourGuide(*models.InsertTourGuideOpts) (*models.TourGuide, error)
	GetTourGuides(*models.GetTourGuidesOpts) (*models.TourGuidesStruct, error)
	GetTourGuideByID(tourGuideID int) (*models.TourGuide, error)
	UpdateTourGuide(tourGuideID int, opts *models.UpdateTourGuideOpts) error
	DeleteTourGuide(tourGuideID int) error
}

const (
	insertTourGuide = `
	INSERT
		tour_guide
	SET
		name = :name,
		contact_number = :contact_number,
		assigned_tours = :assigned_tours,
		status = :status
	`

	getTourGuideByID = `
	SELECT
		id,
		name,
		contact_number,
		assigned_tours,
		status,
		created,
		updated
	FROM
		tour_guide
	WHERE
		active = 1 AND
		id = :tour_guide_id
	`

	getTourGuides = `
	SELECT
		id,
		name,
		contact_number,
		assigned_tours,
		status,
		created,
		updated
	FROM
		tour_guide
	WHERE
		tour_guide.active = 1
		#FILTERS#
	ORDER BY
		tour_guide.created DESC
	LIMIT :limit_to OFFSET :limit_from
	`

	countTourGuides = `
	SELECT
		COUNT(id)
	FROM
		tour_guide
	WHERE
		tour_guide.active = 1
		#FILTERS#
	`

	updateTourGuide = `
	UPDATE
		tour_guide
	SET
		#SETS#
	WHERE
		active = 1 AND
		id = :tour_guide_id
	`

	deleteTourGuide = `
	UPDATE
		tour_guide
	SET
		active = 0
	WHERE
		active = 1 AND
		id = :tour_guide_id
	`
)

func (db *DB) InsertTourGuide(opts *models.InsertTourGuideOpts) (*models.TourGuide, error) {
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

	stmt, err := tx.PrepareNamed(insertTourGuide)
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

	tourGuide := models.TourGuide{
		ID:            int(id),
		Name:          opts.Name,
		ContactNumber: opts.ContactNumber,
		AssignedTours: models.StringList(opts.AssignedTours),
		Status:        status,
	}

	return &tourGuide, nil
}

func (db *DB) GetTourGuideByID(tourGuideID int) (*models.TourGuide, error) {
	stmt, err := db.PrepareNamed(getTourGuideByID)
	if err != nil {
		return nil, err
	}

	args := map[string]interface{}{
		"tour_guide_id": tourGuideID,
	}

	row := stmt.QueryRow(args)

	var tourGuide models.TourGuide
	if err := row.Scan(
		&tourGuide.ID,
		&tourGuide.Name,
		&tourGuide.ContactNumber,
		&tourGuide.AssignedTours,
		&tourGuide.Status,
		&tourGuide.Created,
		&tourGuide.Updated,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &tourGuide, nil
}

func (db *DB) GetTourGuides(opts *models.GetTourGuidesOpts) (*models.TourGuidesStruct, error) {
	var filters string
	args := make(map[string]interface{})
	if len(opts.Statuses) == 1 {
		filters += " AND tour_guide.status = :status "
		args["status"] = opts.Statuses[0]
	}
	if opts.LimitTo == 0 {
		opts.LimitTo = 100
	}
	args["limit_to"] = opts.LimitTo
	args["limit_from"] = opts.LimitFrom

	totalTourGuides, err := db.countTourGuides(filters, args)
	if err != nil {
		return nil, err
	}

	query := strings.ReplaceAll(getTourGuides, "#FILTERS#", filters)
	stmt, err := db.PrepareNamed(query)
	if err != nil {
		return nil, err
	}

	rows, err := stmt.Query(args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tourGuides := models.TourGuidesStruct{
		Total: totalTourGuides,
	}
	for rows.Next() {
		var tourGuide models.TourGuide
		if err := rows.Scan(
			&tourGuide.ID,
			&tourGuide.Name,
			&tourGuide.ContactNumber,
			&tourGuide.AssignedTours,
			&tourGuide.Status,
			&tourGuide.Created,
			&tourGuide.Updated,
		); err != nil {
			return nil, err
		}

		tourGuides.TourGuides = append(tourGuides.TourGuides, tourGuide)
	}

	return &tourGuides, nil
}

func (db *DB) countTourGuides(filters string, args map[string]interface{}) (int, error) {
	query := strings.ReplaceAll(countTourGuides, "#FILTERS#", filters)
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

// Same truthy-wins contract as UpdateDriver.
func (db *DB) UpdateTourGuide(tourGuideID int, opts *models.UpdateTourGuideOpts) error {
	var sets []string
	args := map[string]interface{}{
		"tour_guide_id": tourGuideID,
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

	query := strings.ReplaceAll(updateTourGuide, "#SETS#", strings.Join(sets, ", "))
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

func (db *DB) DeleteTourGuide(tourGuideID int) error {
	stmt, err := db.PrepareNamed(deleteTourGuide)
	if err != nil {
		return err
	}

	args := map[string]interface{}{
		"tour_guide_id": tourGuideID,
	}

	_, err = stmt.Exec(args)
	if err != nil {
		return err
	}

	return nil
}
