package models

import (
	"time"

	"github.com/thedevsaddam/govalidator"
)

type InsertAdminUserOpts struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Phone     string `json:"phone"`
	Roles     []int  `json:"roles"`
}

var InsertAdminUserRules = govalidator.MapData{
	"email":     []string{"required", "email_format"},
	"password":  []string{"required"},
	"firstname": []string{"required"},
	"lastname":  []string{"required"},
	"phone":     []string{"required", "phone_length"},
	"roles":     []string{"required", "array_int"},
}

type GetUsersOpts struct {
	UserIDs   []int    `schema:"user_ids"`
	RoleIDs   []int    `schema:"role_ids"`
	Emails    []string `schema:"emails"`
	LimitFrom int      `schema:"limit_from"`
	LimitTo   int      `schema:"limit_to"`
}

var GetUsersRules = govalidator.MapData{
	"user_ids":   []string{"array_int"},
	"role_ids":   []string{"array_int"},
	"emails":     []string{"array_string"},
	"limit_from": []string{"numeric"},
	"limit_to":   []string{"numeric"},
}

type InfoUser struct {
	ID         int
	IsAdmin    bool
	IsOperator bool
	IsGuide    bool
	IsClient   bool
	IsAPI      bool
	Read       bool
	Roles      []int
	Email      string
}

type User struct {
	ID        int    `json:"id,omitempty"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"-"`

	Created time.Time `json:"created,omitempty"`
	Updated time.Time `json:"updated,omitempty"`
	Active  bool      `json:"active"`

	Token         string `json:"token,omitempty"`
	RememberToken string `json:"remember_token,omitempty"`
	Roles         []Role `json:"roles,omitempty"`
}

func (user *User) HasRole(roleID int) bool {
	for _, role := range user.Roles {
		if role.ID == roleID {
			return true
		}
	}
	return false
}

type Role struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type UsersStruct struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

type PasswordRecoverHTML struct {
	Firstname string
	Lastname  string
	URL       string
}
