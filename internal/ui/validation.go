package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFloatField parses a numeric entry value, naming the field in the
// error so dialogs read like the form.
func parseFloatField(s, fieldName string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", fieldName)
	}
	return val, nil
}

// parseIntField parses an integer entry value.
func parseIntField(s, fieldName string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", fieldName)
	}
	return val, nil
}
