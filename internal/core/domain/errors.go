package domain

import "errors"

// Authentication failures. ErrInvalidCredentials deliberately covers both an
// unknown username and a wrong password so callers cannot enumerate accounts.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid authentication credentials")
	ErrAccountInactive    = errors.New("user account is inactive")
)

// Authorization failure: the caller is known but not permitted.
var ErrForbidden = errors.New("not enough permissions")

// Registration / update uniqueness violations, surfaced from the storage
// layer's unique indexes.
var (
	ErrUsernameTaken   = errors.New("username already registered")
	ErrEmailTaken      = errors.New("email already registered")
	ErrRollNumberTaken = errors.New("roll number already exists in this class")
)

// ErrInvalidRole rejects a registration whose role is outside the closed set.
var ErrInvalidRole = errors.New("invalid role")

// Missing-record failures.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrParentNotFound  = errors.New("parent not found")
	ErrClassNotFound   = errors.New("class not found")
	ErrNoCurrentYear   = errors.New("no current school year set")
)
