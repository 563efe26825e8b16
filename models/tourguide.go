package models

import (
	"time"

	"github.com/thedevsaddam/govalidator"
)

type TourGuide struct {
	ID            int        `json:"id,omitempty"`
	Name          string     `json:"name"`
	ContactNumber string     `json:"contact_number"`
	AssignedTours StringList `json:"assigned_tours"`
	Status        string     `json:"status"`
	Created       time.Time  `json:"created"`
	Updated       time.Time  `json:"updated"`
}

type InsertTourGuideOpts struct {
	Name          string   `json:"name"`
	ContactNumber string   `json:"contact_number"`
	AssignedTours []string `json:"assigned_tours"`
	Status        string   `json:"status"`
}

var InsertTourGuideRules = govalidator.MapData{
	"name":           []string{"required"},
	"contact_number": []string{"required"},
	"assigned_tours": []string{"array_string"},
	"status":         []string{"roster_status"},
}

// Same truthy-wins contract as UpdateDriverOpts.
type UpdateTourGuideOpts struct {
	Name          string   `json:"name"`
	ContactNumber string   `json:"contact_number"`
	AssignedTours []string `json:"assigned_tours"`
	Status        string   `json:"status"`
}

var UpdateTourGuideRules = govalidator.MapData{
	"name":           []string{},
	"contact_number": []string{"phone_length"},
	"assigned_tours": []string{"array_string"},
	"status":         []string{"roster_status"},
}

type GetTourGuidesOpts struct {
	Statuses  []string `schema:"status"`
	LimitFrom int      `schema:"limit_from"`
	LimitTo   int      `schema:"limit_to"`
}

var GetTourGuidesRules = govalidator.MapData{
	"status":     []string{"array_string"},
	"limit_from": []string{"numeric"},
	"limit_to":   []string{"numeric"},
}

type TourGuidesStruct struct {
	TourGuides []TourGuide `json:"tour_guides"`
	Total      int         `json:"total"`
}
