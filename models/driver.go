package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/thedevsaddam/govalidator"
)

// StringList is persisted as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.Errorf("cannot scan %T into StringList", src)
}

type Driver struct {
	ID            int        `json:"id,omitempty"`
	Name          string     `json:"name"`
	ContactNumber string     `json:"contact_number"`
	AssignedTours StringList `json:"assigned_tours"`
	Status        string     `json:"status"`
	Created       time.Time  `json:"created"`
	Updated       time.Time  `json:"updated"`
}

type InsertDriverOpts struct {
	Name          string   `json:"name"`
	ContactNumber string   `json:"contact_number"`
	AssignedTours []string `json:"assigned_tours"`
	Status        string   `json:"status"`
}

var InsertDriverRules = govalidator.MapData{
	"name":           []string{"required"},
	"contact_number": []string{"required"},
	"assigned_tours": []string{"array_string"},
	"status":         []string{"roster_status"},
}

// UpdateDriverOpts fields are applied only when truthy: an empty string
// or empty list leaves the stored value untouched.
type UpdateDriverOpts struct {
	Name          string   `json:"name"`
	ContactNumber string   `json:"contact_number"`
	AssignedTours []string `json:"assigned_tours"`
	Status        string   `json:"status"`
}

var UpdateDriverRules = govalidator.MapData{
	"name":           []string{},
	"contact_number": []string{"phone_length"},
	"assigned_tours": []string{"array_string"},
	"status":         []string{"roster_status"},
}

type GetDriversOpts struct {
	Statuses  []string `schema:"status"`
	LimitFrom int      `schema:"limit_from"`
	LimitTo   int      `schema:"limit_to"`
}

var GetDriversRules = govalidator.MapData{
	"status":     []string{"array_string"},
	"limit_from": []string{"numeric"},
	"limit_to":   []string{"numeric"},
}

type DriversStruct struct {
	Drivers []Driver `json:"drivers"`
	Total   int      `json:"total"`
}
