package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a user with the given ID does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist
	// or belongs to a different user.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrGoalNotFound indicates that a goal with the given ID does not exist.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrAlertNotFound indicates that an alert with the given ID does not exist.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrSimulationNotFound indicates that a simulation with the given ID does not exist.
	ErrSimulationNotFound = errors.New("simulation not found")

	// ErrSnapshotNotFound indicates no snapshot row for a user and date combination.
	ErrSnapshotNotFound = errors.New("portfolio snapshot not found")

	// ErrCredentialNotFound indicates that an exchange credential does not exist.
	ErrCredentialNotFound = errors.New("exchange credential not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrMissingCredentials indicates that an exchange connect request lacks a key or secret.
	ErrMissingCredentials = errors.New("api key and secret are required")

	// ErrInvalidCSVHeaders indicates that an imported CSV lacks the required columns.
	ErrInvalidCSVHeaders = errors.New("invalid CSV headers")

	// ErrNoValidRecords indicates that a CSV import contained no usable rows.
	ErrNoValidRecords = errors.New("no valid records found")
)

// Data integrity errors represent inconsistencies or corruption in the data.
var (
	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)
