package db

import (
	"encoding/json"
	"strings"

	"bitbucket.org/rutaandina/backend/models"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type UserStorage interface {
	InsertUser(opts *models.InsertAdminUserOpts) (int, error)
	UpdateUserPassword(*models.User) error
	ValidateUserEmail(email string) (int, error)
	GetUsers(*models.GetUsersOpts) (*models.UsersStruct, error)
}

const (
	insertUser = `
	INSERT
		user
	SET
		email = :email,
		password = :password,
		firstname = :firstname,
		lastname = :lastname,
		phone = :phone
	`

	insertUserRoles = `
	INSERT INTO
		pivot_role_user (user_id, role_id)
	SELECT
		:user_id,
		role.id
	FROM
		role
	WHERE
		role.id IN (:role_ids)
	AND role.active = 1
	`

	updateUserPassword = `
	UPDATE
		user
	SET
		password = :password,
		remember_token = NULL
	WHERE
		user.id = :user_id AND
		user.active = 1
	`

	countUserEmails = `
	SELECT
		COUNT(user.id)
	FROM
		user
	WHERE
		user.active = 1 AND
		user.email = :email
	`

	getUsers = `
	SELECT
		user.id,
		user.firstname,
		user.lastname,
		user.email,
		user.phone,
		user.created,
		user.updated,
		user.active,
		COALESCE(CONCAT('[',GROUP_CONCAT(JSON_OBJECT('id', role.id, 'name', role.name)),']'), '[]')
	FROM
		user
	INNER JOIN
		pivot_role_user ON (pivot_role_user.user_id = user.id)
	INNER JOIN
		role ON (role.id = pivot_role_user.role_id AND role.active = 1)
	WHERE
		user.active = 1
		#FILTERS#
	GROUP BY
		user.id
	ORDER BY
		user.created DESC
	LIMIT :limit_to OFFSET :limit_from
	`

	countUsers = `
	SELECT
		COUNT(DISTINCT user.id)
	FROM
		user
	INNER JOIN
		pivot_role_user ON (pivot_role_user.user_id = user.id)
	INNER JOIN
		role ON (role.id = pivot_role_user.role_id AND role.active = 1)
	WHERE
		user.active = 1
		#FILTERS#
	`
)

func (db *DB) InsertUser(opts *models.InsertAdminUserOpts) (int, error) {
	tx, err := db.NewTx()
	if err != nil {
		return 0, errors.Wrap(err, "failed to start transaction")
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}

		tx.Commit()
	}()

	stmt, err := tx.PrepareNamed(insertUser)
	if err != nil {
		return 0, err
	}

	args := map[string]interface{}{
		"email":     opts.Email,
		"password":  opts.Password,
		"firstname": opts.Firstname,
		"lastname":  opts.Lastname,
		"phone":     opts.Phone,
	}

	result, err := stmt.Exec(args)
	if err != nil {
		return 0, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	rolesArgs := map[string]interface{}{
		"user_id":  userID,
		"role_ids": opts.Roles,
	}

	query, nargs, newErr := sqlx.Named(insertUserRoles, rolesArgs)
	if newErr != nil {
		err = newErr
		return 0, err
	}

	query, nargs, newErr = sqlx.In(query, nargs...)
	if newErr != nil {
		err = newErr
		return 0, err
	}

	query = tx.Rebind(query)

	if _, newErr := tx.Exec(query, nargs...); newErr != nil {
		err = newErr
		return 0, err
	}

	return int(userID), nil
}

func (db *DB) UpdateUserPassword(user *models.User) error {
	stmt, err := db.PrepareNamed(updateUserPassword)
	if err != nil {
		return err
	}

	args := map[string]interface{}{
		"password": user.Password,
		"user_id":  user.ID,
	}

	_, err = stmt.Exec(args)
	if err != nil {
		return err
	}

	return nil
}

func (db *DB) ValidateUserEmail(email string) (int, error) {
	stmt, err := db.PrepareNamed(countUserEmails)
	if err != nil {
		return 0, err
	}

	args := map[string]interface{}{
		"email": email,
	}

	row := stmt.QueryRow(args)
	var counter int
	if err := row.Scan(
		&counter,
	); err != nil {
		return 0, err
	}

	return counter, nil
}

func (db *DB) GetUsers(opts *models.GetUsersOpts) (*models.UsersStruct, error) {
	var filters string
	args := make(map[string]interface{})
	if len(opts.UserIDs) > 0 {
		filters += " AND user.id IN (:user_ids) "
		args["user_ids"] = opts.UserIDs
	}
	if len(opts.RoleIDs) > 0 {
		filters += " AND role.id IN (:role_ids) "
		args["role_ids"] = opts.RoleIDs
	}
	if len(opts.Emails) > 0 {
		filters += " AND user.email IN (:emails) "
		args["emails"] = opts.Emails
	}
	if opts.LimitTo == 0 {
		opts.LimitTo = 100
	}
	args["limit_to"] = opts.LimitTo
	args["limit_from"] = opts.LimitFrom

	totalUsers, err := db.countUsers(filters, args)
	if err != nil {
		return nil, err
	}

	query := strings.ReplaceAll(getUsers, "#FILTERS#", filters)
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

	users := models.UsersStruct{
		Total: totalUsers,
	}
	for rows.Next() {
		var user models.User
		var rolesBytes []byte
		if err := rows.Scan(
			&user.ID,
			&user.Firstname,
			&user.Lastname,
			&user.Email,
			&user.Phone,
			&user.Created,
			&user.Updated,
			&user.Active,
			&rolesBytes,
		); err != nil {
			return nil, err
		}

		var roles []models.Role
		if err := json.Unmarshal(rolesBytes, &roles); err != nil {
			return nil, err
		}
		user.Roles = roles

		users.Users = append(users.Users, user)
	}

	return &users, nil
}

func (db *DB) countUsers(filters string, args map[string]interface{}) (int, error) {
	query := strings.ReplaceAll(countUsers, "#FILTERS#", filters)
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
