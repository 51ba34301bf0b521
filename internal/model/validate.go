package model

import "fmt"

// ValidationError reports a rejected input field. Validation runs before any
// layout computation; a request that fails validation produces no output at
// all.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Validate checks the request against the input preconditions. It returns
// the first violation found as a *ValidationError.
func (r Request) Validate() error {
	if r.Board.Width <= 0 {
		return invalid("board width", "must be > 0 mm")
	}
	if r.Board.Height <= 0 {
		return invalid("template height", "must be > 0 mm")
	}
	if r.Board.DPI <= 0 {
		return invalid("DPI", "must be > 0")
	}

	switch r.Joint {
	case JointBox:
		if r.Box == nil {
			return invalid("finger width", "box joint parameters missing")
		}
		if r.Box.FingerWidth <= 0 {
			return invalid("finger width", "must be > 0 mm")
		}
		if r.Box.FingerWidth > r.Board.Width {
			return invalid("finger width", "must not exceed board width")
		}
	case JointDovetail:
		if r.Dovetail == nil {
			return invalid("tails", "dovetail parameters missing")
		}
		if r.Dovetail.Tails < 1 {
			return invalid("tails", "must be at least 1")
		}
		if r.Dovetail.Ratio <= 0 {
			return invalid("ratio", "must be > 0")
		}
	default:
		return invalid("joint type", fmt.Sprintf("unknown joint type %q", string(r.Joint)))
	}

	return nil
}
