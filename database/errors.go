package database

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Category is one of the fixed user-facing failure classes for backend calls.
type Category string

const (
	CategoryPermissionDenied   Category = "permission_denied"
	CategoryDuplicate          Category = "duplicate"
	CategoryForeignKeyInUse    Category = "foreign_key_in_use"
	CategoryMissingField       Category = "missing_required_field"
	CategoryInvalidData        Category = "invalid_data"
	CategoryNotFound           Category = "not_found"
	CategoryInvalidCredentials Category = "invalid_credentials"
	CategoryEmailUnconfirmed   Category = "email_unconfirmed"
	CategoryEmailRegistered    Category = "email_already_registered"
	CategoryUnknown            Category = "unknown"
)

// BackendError carries a raw code/message pair returned by the hosted backend
// when the failure did not come through the SQL driver.
type BackendError struct {
	Code    string
	Message string
}

func (e *BackendError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// SQLSTATE code rules. These run before any message-substring rule.
var codeCategories = map[string]Category{
	"23505": CategoryDuplicate,       // unique_violation
	"23503": CategoryForeignKeyInUse, // foreign_key_violation
	"23502": CategoryMissingField,    // not_null_violation
	"23514": CategoryInvalidData,     // check_violation
	"42P01": CategoryNotFound,        // undefined_table
	"P0002": CategoryNotFound,        // no_data_found
}

var categoryMessages = map[Category]string{
	CategoryPermissionDenied:   "You don't have permission to perform this action.",
	CategoryDuplicate:          "A record with these details already exists.",
	CategoryForeignKeyInUse:    "This record is referenced by other data and cannot be changed.",
	CategoryMissingField:       "A required field is missing.",
	CategoryInvalidData:        "Some of the provided data is invalid.",
	CategoryNotFound:           "The requested record was not found.",
	CategoryInvalidCredentials: "Invalid email or password.",
	CategoryEmailUnconfirmed:   "Please confirm your email address before signing in.",
	CategoryEmailRegistered:    "This email is already registered.",
	CategoryUnknown:            "Something went wrong. Please try again.",
}

var categoryStatus = map[Category]int{
	CategoryPermissionDenied:   http.StatusForbidden,
	CategoryDuplicate:          http.StatusConflict,
	CategoryForeignKeyInUse:    http.StatusConflict,
	CategoryMissingField:       http.StatusBadRequest,
	CategoryInvalidData:        http.StatusBadRequest,
	CategoryNotFound:           http.StatusNotFound,
	CategoryInvalidCredentials: http.StatusUnauthorized,
	CategoryEmailUnconfirmed:   http.StatusForbidden,
	CategoryEmailRegistered:    http.StatusConflict,
	CategoryUnknown:            http.StatusInternalServerError,
}

// Classify maps any backend failure to exactly one category. Code rules win
// over message rules; unrecognized shapes degrade to CategoryUnknown. It
// never panics.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CategoryNotFound
	}

	code, message := errorSignal(err)
	if cat, ok := codeCategories[code]; ok {
		return cat
	}

	msg := strings.ToLower(message)
	switch {
	case strings.Contains(msg, "row-level security") || strings.Contains(msg, "permission denied"):
		return CategoryPermissionDenied
	case strings.Contains(msg, "invalid login") || strings.Contains(msg, "invalid credentials"):
		return CategoryInvalidCredentials
	case strings.Contains(msg, "email not confirmed"):
		return CategoryEmailUnconfirmed
	case strings.Contains(msg, "already registered"):
		return CategoryEmailRegistered
	}
	return CategoryUnknown
}

// errorSignal extracts the raw code/message pair from whatever shape the
// backend produced.
func errorSignal(err error) (code, message string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.Message
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr.Code, backendErr.Message
	}
	return "", err.Error()
}

// UserMessage returns the fixed message for a category; never empty.
func UserMessage(cat Category) string {
	if msg, ok := categoryMessages[cat]; ok {
		return msg
	}
	return categoryMessages[CategoryUnknown]
}

// HTTPStatus returns the response status for a category.
func HTTPStatus(cat Category) int {
	if status, ok := categoryStatus[cat]; ok {
		return status
	}
	return http.StatusInternalServerError
}
