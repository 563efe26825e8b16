package helpers

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/thedevsaddam/govalidator"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Custom rules tolerate zero values so the same rule sets serve both
// creation (paired with required) and truthy-wins updates, where a
// zero value means "keep the stored one".
func init() {
	govalidator.AddCustomRule("email_format", func(field string, rule string, message string, value interface{}) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.String {
			email := value.(string)
			if email == "" {
				return nil
			}
			if !emailRegexp.MatchString(email) {
				if message != "" {
					return fmt.Errorf(message)
				}
				return fmt.Errorf("The %s field must be a valid email address", field)
			}
		}
		return nil
	})
	govalidator.AddCustomRule("phone_length", func(field string, rule string, message string, value interface{}) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.String {
			phone := value.(string)
			if phone == "" {
				return nil
			}
			if len(phone) < 10 || len(phone) > 15 {
				if message != "" {
					return fmt.Errorf(message)
				}
				return fmt.Errorf("The %s field must be between 10 and 15 characters", field)
			}
		}
		return nil
	})
	govalidator.AddCustomRule("date_ISO8601", func(field string, rule string, message string, value interface{}) error {
		dateLayoutISO8601 := "2006-01-02"
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.String {
			date := value.(string)
			if date == "" {
				return nil
			}
			if _, err := time.Parse(dateLayoutISO8601, date); err != nil {
				if message != "" {
					return fmt.Errorf(message)
				}
				return fmt.Errorf("The %s field must be ISO8601 yyyy-mm-dd date ", field)
			}
		}
		return nil
	})
	govalidator.AddCustomRule("array_string", func(field string, rule string, message string, value interface{}) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Array || rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice {
			arr := value.([]string)
			for _, v := range arr {
				if v == "" {
					if message != "" {
						return fmt.Errorf(message)
					}
					return fmt.Errorf("The %s field must be array of string not empty", field)
				}
			}
		}
		return nil
	})
	govalidator.AddCustomRule("array_int", func(field string, rule string, message string, value interface{}) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Array || rv.Kind() == reflect.Map || rv.Kind() == reflect.Slice {
			arr := value.([]int)
			for _, v := range arr {
				if v <= 0 {
					if message != "" {
						return fmt.Errorf(message)
					}
					return fmt.Errorf("The %s field must be array of int higher 0", field)
				}
			}
		}
		return nil
	})
	govalidator.AddCustomRule("min_int", func(field string, rule string, message string, value interface{}) error {
		min, err := strconv.Atoi(strings.TrimPrefix(rule, "min_int:"))
		if err != nil {
			return fmt.Errorf("The %s field has an invalid min_int rule", field)
		}
		n, ok := toInt(value)
		if !ok {
			if message != "" {
				return fmt.Errorf(message)
			}
			return fmt.Errorf("The %s field must be an integer", field)
		}
		if n == 0 {
			return nil
		}
		if n < min {
			if message != "" {
				return fmt.Errorf(message)
			}
			return fmt.Errorf("The %s field must be at least %d", field, min)
		}
		return nil
	})
	govalidator.AddCustomRule("non_negative", func(field string, rule string, message string, value interface{}) error {
		f, ok := toFloat(value)
		if !ok {
			return nil
		}
		if f < 0 {
			if message != "" {
				return fmt.Errorf(message)
			}
			return fmt.Errorf("The %s field must be zero or higher", field)
		}
		return nil
	})
	govalidator.AddCustomRule("tour_type", func(field string, rule string, message string, value interface{}) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.String {
			tourType := value.(string)
			if tourType == "" {
				return nil
			}
			switch tourType {
			case "Standard", "Luxury", "Custom":
				return nil
			}
			if message != "" {
				return fmt.Errorf(message)
			}
			return fmt.Errorf("The %s field must be one of Standard, Luxury, Custom", field)
		}
		return nil
	})
	govalidator.AddCustomRule("roster_status", func(field string, rule string, message string, value interface{}) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.String {
			status := value.(string)
			if status == "" {
				return nil
			}
			switch status {
			case "Active", "Inactive":
				return nil
			}
			if message != "" {
				return fmt.Errorf(message)
			}
			return fmt.Errorf("The %s field must be one of Active, Inactive", field)
		}
		return nil
	})
	govalidator.AddCustomRule("payment_status", func(field string, rule string, message string, value interface{}) error {
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.String {
			status := value.(string)
			if status == "" {
				return nil
			}
			switch status {
			case "pending", "success", "failed":
				return nil
			}
			if message != "" {
				return fmt.Errorf(message)
			}
			return fmt.Errorf("The %s field must be one of pending, success, failed", field)
		}
		return nil
	})
}

func toInt(value interface{}) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
