package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateEmail is returned when a user with the same email already
	// exists.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateWorkspace is returned when a workspace with the same stored
	// name already exists.
	ErrDuplicateWorkspace = errors.New("workspace name already taken")

	// ErrAlreadyMember is returned when a (workspace, user) membership pair
	// already exists.
	ErrAlreadyMember = errors.New("user is already a workspace member")

	// ErrNotFound is returned when a queried row does not exist.
	ErrNotFound = errors.New("not found")
)

// Connection pool and transaction errors returned by [Pool].
var (
	// ErrPoolExhausted is returned when no pooled connection became free
	// within the acquire timeout while the caller was still waiting.
	ErrPoolExhausted = errors.New("connection pool exhausted")

	// ErrConnection is returned when a connection cannot be obtained for any
	// other reason (database unreachable, caller cancelled, pool closed).
	ErrConnection = errors.New("database connection failed")

	// ErrTransaction is returned when BEGIN or COMMIT fails.
	ErrTransaction = errors.New("transaction failed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewPool] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
