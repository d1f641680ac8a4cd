package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when inserting a user fails because
	// another row already holds the same auth subject.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSkillblockNotSaved is returned when a skillblock INSERT completes
	// without returning the new row.
	ErrSkillblockNotSaved = errors.New("skillblock was not saved")

	// ErrSkillblockLimitReached is returned when the owner already holds the
	// maximum number of skillblocks.
	ErrSkillblockLimitReached = errors.New("skillblock limit reached")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// row-returning query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

var storageErrors = []error{
	ErrBuildingSQLQuery,
	ErrExecutingQuery,
	ErrBeginningTransaction,
	ErrCommitingTransaction,
	ErrExecutingStatement,
	ErrScanningRow,
	ErrScanningRows,
	ErrSkillblockNotSaved,
}

// IsStorageError reports whether err is a datastore failure, as opposed to
// a domain outcome such as a missing user or a reached limit.
func IsStorageError(err error) bool {
	for _, target := range storageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
