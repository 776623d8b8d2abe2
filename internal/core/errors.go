package core

import "errors"

// Failure taxonomy for ingestion and reporting. Callers classify with
// errors.Is; the wrapped message carries the offending input where the
// failure is row-level.
var (
	// ErrSchema: a required input column is absent. Nothing persisted.
	ErrSchema = errors.New("schema error")

	// ErrValidation: a single row is malformed. The whole batch is
	// rejected and nothing is persisted.
	ErrValidation = errors.New("validation error")

	// ErrClassification: the external classifier call failed outright.
	ErrClassification = errors.New("classification error")

	// ErrStorage: the persistence layer failed during commit.
	ErrStorage = errors.New("storage error")

	// ErrNoData: an analytics report was requested over an empty
	// transaction set.
	ErrNoData = errors.New("no transaction data available")
)
