package layout

import (
	"strconv"
	"strings"

	"github.com/piwi3910/JointCut/internal/model"
)

// ParseRatio parses a dovetail slope ratio. Accepted forms:
//
//	"6"   -> 6.0 (shorthand for 1:6)
//	"1:6" -> 6.0
//	"2:7" -> 3.5 (right divided by left)
//
// A zero left-hand term or a non-numeric term is a validation error.
func ParseRatio(text string) (float64, error) {
	text = strings.TrimSpace(text)

	if strings.Contains(text, ":") {
		parts := strings.SplitN(text, ":", 2)
		left, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return 0, &model.ValidationError{Field: "ratio", Reason: "left term is not a number"}
		}
		right, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return 0, &model.ValidationError{Field: "ratio", Reason: "right term is not a number"}
		}
		if left == 0 {
			return 0, &model.ValidationError{Field: "ratio", Reason: "left side cannot be zero"}
		}
		return right / left, nil
	}

	val, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &model.ValidationError{Field: "ratio", Reason: "not a number"}
	}
	return val, nil
}
