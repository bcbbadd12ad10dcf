package services

import "errors"

// Survey service errors
var (
	// ErrDatasetEmpty marks a dataset file that parsed to zero usable
	// records. Callers treat it like any other load failure, including
	// the sample fallback when that is enabled.
	ErrDatasetEmpty = errors.New("dataset contains no records")

	// ErrStateNotFound marks a district query for a state the dataset
	// does not contain.
	ErrStateNotFound = errors.New("state not found")
)
