package models

import "errors"

// Business error taxonomy. Services wrap these with context; the
// controllers map them onto the response envelope and status code.
var (
	// ErrValidation covers missing or malformed required fields,
	// caught before any persistence or computation.
	ErrValidation = errors.New("validation error")

	// ErrForbidden is an access-policy denial.
	ErrForbidden = errors.New("forbidden")

	// ErrDuplicateAccount is an email uniqueness violation at account
	// creation. No partial account is left behind.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingProfileData means a nutrient computation was attempted
	// without the required anthropometric fields. Distinct from an
	// empty day of logs so the caller can prompt profile completion
	// instead of food logging.
	ErrMissingProfileData = errors.New("missing profile data")

	// ErrInvalidParameter rejects unknown metric/period values before
	// any query executes.
	ErrInvalidParameter = errors.New("invalid parameter")
)
