// Package validate provides struct-tag validation for request bodies.
//
// Supported rules (comma-separated in the `validate` tag):
//
//	required            field must not be zero/empty
//	nullable            if empty, skip all remaining rules for this field
//	integer             whole number
//	numeric             any number
//	date                parseable date (2006-01-02 or RFC 3339)
//	min=N               string: min char length | number: min value
//	max=N               string: max char length | number: max value
//	gte=N               number >= N
//	lte=N               number <= N
//	in=a,b,c            value must be one of the listed items
//
// Example:
//
//	type Input struct {
//	    FoodName string `json:"food_name" validate:"required,min=2,max=255"`
//	    Quantity int    `json:"quantity"  validate:"required,integer,gte=0"`
//	    MealType string `json:"meal_type" validate:"required,in=Breakfast,Lunch,Dinner,Snacks"`
//	}
package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order by the `date` rule.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"}

// ParseDate parses value with the same layouts the `date` rule accepts,
// so a value that passed validation always parses.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

// Struct validates all exported fields of v that carry a `validate` tag.
// Returns a map of fieldName → error message; empty map means no errors.
func Struct(v interface{}) map[string]string {
	errs := make(map[string]string)
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		value := rv.Field(i)

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(field)
		rules := splitRules(tag)

		// `nullable` on an empty field skips all remaining rules.
		if hasRule(rules, "nullable") && isEmpty(value) {
			continue
		}

		for _, rule := range rules {
			if rule == "nullable" {
				continue
			}
			if msg := applyRule(rule, name, value); msg != "" {
				errs[name] = msg
				break // first failing rule per field
			}
		}
	}

	return errs
}

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

func applyRule(rule, field string, v reflect.Value) string {
	raw := fmt.Sprintf("%v", v.Interface())
	key, param, _ := strings.Cut(rule, "=")

	switch key {
	case "required":
		if isEmpty(v) {
			return fmt.Sprintf("The %s field is required.", field)
		}

	case "integer":
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fmt.Sprintf("The %s field must be an integer.", field)
		}

	case "numeric":
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Sprintf("The %s field must be a number.", field)
		}

	case "date":
		if _, err := ParseDate(raw); err != nil {
			return fmt.Sprintf("The %s field must be a valid date.", field)
		}

	case "min":
		if !compare(v, param, func(a, b float64) bool { return a >= b }) {
			return fmt.Sprintf("The %s field must be at least %s.", field, param)
		}

	case "max":
		if !compare(v, param, func(a, b float64) bool { return a <= b }) {
			return fmt.Sprintf("The %s field may not be greater than %s.", field, param)
		}

	case "gte":
		if !compareNumber(raw, param, func(a, b float64) bool { return a >= b }) {
			return fmt.Sprintf("The %s field must be greater than or equal to %s.", field, param)
		}

	case "lte":
		if !compareNumber(raw, param, func(a, b float64) bool { return a <= b }) {
			return fmt.Sprintf("The %s field must be less than or equal to %s.", field, param)
		}

	case "in":
		for _, option := range strings.Split(param, ",") {
			if raw == option {
				return ""
			}
		}
		return fmt.Sprintf("The %s field must be one of: %s.", field, param)
	}

	return ""
}

// compare measures strings by length and numbers by value, mirroring the
// min/max semantics of the tag language.
func compare(v reflect.Value, param string, ok func(a, b float64) bool) bool {
	bound, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return true
	}

	switch v.Kind() {
	case reflect.String:
		return ok(float64(len([]rune(v.String()))), bound)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ok(float64(v.Int()), bound)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ok(float64(v.Uint()), bound)
	case reflect.Float32, reflect.Float64:
		return ok(v.Float(), bound)
	default:
		return true
	}
}

func compareNumber(raw, param string, ok func(a, b float64) bool) bool {
	val, err1 := strconv.ParseFloat(raw, 64)
	bound, err2 := strconv.ParseFloat(param, 64)
	if err1 != nil || err2 != nil {
		return false
	}
	return ok(val, bound)
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

func splitRules(tag string) []string {
	parts := strings.Split(tag, ",")

	// Re-join `in=a,b,c` style params that the comma split broke apart.
	var rules []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len(rules) > 0 && strings.Contains(rules[len(rules)-1], "=") && !strings.Contains(part, "=") && !isKnownRule(part) {
			rules[len(rules)-1] += "," + part
			continue
		}
		rules = append(rules, part)
	}
	return rules
}

func isKnownRule(s string) bool {
	switch s {
	case "required", "nullable", "integer", "numeric", "date":
		return true
	}
	return false
}

func hasRule(rules []string, name string) bool {
	for _, r := range rules {
		if r == name {
			return true
		}
	}
	return false
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}
