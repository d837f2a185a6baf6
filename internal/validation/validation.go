// Package validation provides field-keyed form validation. A form is checked
// as a whole and the result is a map of field name to violation message:
// empty map means the payload is valid.
package validation

import (
	"strconv"
	"strings"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// String renders violations as "field: message" lines, sorted order not
// guaranteed. Intended for terminal display.
func (v Violations) String() string {
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "\n")
}

// Basic validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func Email(field, value string, v Violations) {
	if value == "" {
		return
	}
	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 || !strings.Contains(value[at:], ".") {
		v[field] = "invalid email address"
	}
}

func Phone(field, value string, v Violations) {
	if value == "" {
		return
	}
	digits := 0
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' || r == '-' || r == ' ' || r == '(' || r == ')':
		default:
			v[field] = "invalid phone number"
			return
		}
	}
	if digits < 6 {
		v[field] = "invalid phone number"
	}
}

func PositiveInt(field string, value int64, v Violations) {
	if value <= 0 {
		v[field] = "must be positive"
	}
}

// Date checks a YYYY-MM-DD value. Empty values are left to Required.
func Date(field, value string, v Violations) {
	if value == "" {
		return
	}
	parts := strings.Split(value, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		v[field] = "expected YYYY-MM-DD"
		return
	}
	for _, p := range parts {
		if _, err := strconv.Atoi(p); err != nil {
			v[field] = "expected YYYY-MM-DD"
			return
		}
	}
}

var bloodGroups = map[string]struct{}{
	"A+": {}, "A-": {}, "B+": {}, "B-": {},
	"AB+": {}, "AB-": {}, "O+": {}, "O-": {},
}

func BloodGroup(field, value string, v Violations) {
	if value == "" {
		return
	}
	if _, ok := bloodGroups[strings.ToUpper(value)]; !ok {
		v[field] = "unknown blood group"
	}
}
