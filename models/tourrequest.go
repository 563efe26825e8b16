package models

import (
	"time"

	"github.com/thedevsaddam/govalidator"
)

type TourRequest struct {
	ID                 int        `json:"id,omitempty"`
	UserID             int        `json:"user_id"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	ContactNumber      string     `json:"contact_number"`
	StartLocation      string     `json:"start_location"`
	StartDate          string     `json:"start_date"`
	SelectedLocations  StringList `json:"selected_locations"`
	NumberOfPeople     int        `json:"number_of_people"`
	DurationDays       int        `json:"duration_days"`
	TourType           string     `json:"tour_type"`
	BasePricePerPerson float64    `json:"base_price_per_person"`
	Status             string     `json:"status"`
	CancelReason       string     `json:"cancel_reason,omitempty"`
	Created            time.Time  `json:"created"`
	Updated            time.Time  `json:"updated"`
}

type InsertTourRequestOpts struct {
	UserID             int      `json:"user_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	ContactNumber      string   `json:"contact_number"`
	StartLocation      string   `json:"start_location"`
	StartDate          string   `json:"start_date"`
	SelectedLocations  []string `json:"selected_locations"`
	NumberOfPeople     int      `json:"number_of_people"`
	DurationDays       int      `json:"duration_days"`
	TourType           string   `json:"tour_type"`
	BasePricePerPerson float64  `json:"base_price_per_person"`
}

// Failures are collected per field, not fail-fast; the request never
// reaches storage while this map is non-empty.
var InsertTourRequestRules = govalidator.MapData{
	"name":                  []string{"required"},
	"email":                 []string{"required", "email_format"},
	"contact_number":        []string{"required", "phone_length"},
	"start_location":        []string{"required"},
	"start_date":            []string{"required", "date_ISO8601"},
	"selected_locations":    []string{"required", "array_string"},
	"number_of_people":      []string{"required", "min_int:1"},
	"duration_days":         []string{"required", "min_int:1"},
	"tour_type":             []string{"required", "tour_type"},
	"base_price_per_person": []string{"numeric", "non_negative"},
	"user_id":               []string{"required", "min_int:1"},
}

type UpdateTourRequestOpts struct {
	UserID             int      `json:"user_id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	ContactNumber      string   `json:"contact_number"`
	StartLocation      string   `json:"start_location"`
	StartDate          string   `json:"start_date"`
	SelectedLocations  []string `json:"selected_locations"`
	NumberOfPeople     int      `json:"number_of_people"`
	DurationDays       int      `json:"duration_days"`
	TourType           string   `json:"tour_type"`
	BasePricePerPerson float64  `json:"base_price_per_person"`
}

// The create rules with required dropped: fields validate only when a
// non-zero value arrives, the rest keep their stored values.
var UpdateTourRequestRules = govalidator.MapData{
	"name":                  []string{},
	"email":                 []string{"email_format"},
	"contact_number":        []string{"phone_length"},
	"start_location":        []string{},
	"start_date":            []string{"date_ISO8601"},
	"selected_locations":    []string{"array_string"},
	"number_of_people":      []string{"min_int:1"},
	"duration_days":         []string{"min_int:1"},
	"tour_type":             []string{"tour_type"},
	"base_price_per_person": []string{"numeric", "non_negative"},
	"user_id":               []string{"numeric"},
}

type CancelTourRequestOpts struct {
	Reason string `json:"reason"`
}

var CancelTourRequestRules = govalidator.MapData{
	"reason": []string{"required"},
}

type GetTourRequestsOpts struct {
	Statuses  []string `schema:"status"`
	UserIDs   []int    `schema:"user_ids"`
	LimitFrom int      `schema:"limit_from"`
	LimitTo   int      `schema:"limit_to"`
}

var GetTourRequestsRules = govalidator.MapData{
	"status":     []string{"array_string"},
	"user_ids":   []string{"array_int"},
	"limit_from": []string{"numeric"},
	"limit_to":   []string{"numeric"},
}

type TourRequestsStruct struct {
	TourRequests []TourRequest `json:"tour_requests"`
	Total        int           `json:"total"`
}
