package database

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func TestClassify_NilError(t *testing.T) {
	if got := Classify(nil); got != CategoryUnknown {
		t.Errorf("nil error: expected unknown, got %s", got)
	}
}

func TestClassify_CodeRules(t *testing.T) {
	cases := []struct {
		code string
		want Category
	}{
		{"23505", CategoryDuplicate},
		{"23503", CategoryForeignKeyInUse},
		{"23502", CategoryMissingField},
		{"23514", CategoryInvalidData},
		{"42P01", CategoryNotFound},
		{"P0002", CategoryNotFound},
	}

	for _, tc := range cases {
		err := &BackendError{Code: tc.code, Message: "whatever the backend said"}
		if got := Classify(err); got != tc.want {
			t.Errorf("code %s: expected %s, got %s", tc.code, tc.want, got)
		}
	}
}

func TestClassify_PgError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
	if got := Classify(err); got != CategoryDuplicate {
		t.Errorf("expected duplicate, got %s", got)
	}
}

func TestClassify_WrappedPgError(t *testing.T) {
	inner := &pgconn.PgError{Code: "23503", Message: "update or delete violates foreign key constraint"}
	err := fmt.Errorf("saving sale: %w", inner)
	if got := Classify(err); got != CategoryForeignKeyInUse {
		t.Errorf("expected foreign_key_in_use, got %s", got)
	}
}

func TestClassify_RecordNotFound(t *testing.T) {
	if got := Classify(gorm.ErrRecordNotFound); got != CategoryNotFound {
		t.Errorf("expected not_found, got %s", got)
	}
	wrapped := fmt.Errorf("loading preference: %w", gorm.ErrRecordNotFound)
	if got := Classify(wrapped); got != CategoryNotFound {
		t.Errorf("wrapped: expected not_found, got %s", got)
	}
}

func TestClassify_MessageRules(t *testing.T) {
	cases := []struct {
		message string
		want    Category
	}{
		{"new row violates row-level security policy for table \"sales\"", CategoryPermissionDenied},
		{"permission denied for table sales", CategoryPermissionDenied},
		{"Invalid login credentials", CategoryInvalidCredentials},
		{"Email not confirmed", CategoryEmailUnconfirmed},
		{"User already registered", CategoryEmailRegistered},
		{"connection reset by peer", CategoryUnknown},
		{"", CategoryUnknown},
	}

	for _, tc := range cases {
		if got := Classify(errors.New(tc.message)); got != tc.want {
			t.Errorf("message %q: expected %s, got %s", tc.message, tc.want, got)
		}
	}
}

func TestClassify_MessageMatchingIsCaseInsensitive(t *testing.T) {
	if got := Classify(errors.New("INVALID LOGIN CREDENTIALS")); got != CategoryInvalidCredentials {
		t.Errorf("expected invalid_credentials, got %s", got)
	}
}

func TestClassify_CodeWinsOverMessage(t *testing.T) {
	// A duplicate code with a message that would otherwise match the
	// permission rule must still classify by code.
	err := &BackendError{Code: "23505", Message: "permission denied while inserting"}
	if got := Classify(err); got != CategoryDuplicate {
		t.Errorf("expected duplicate, got %s", got)
	}
}

func TestClassify_UnknownCodeFallsThroughToMessage(t *testing.T) {
	err := &BackendError{Code: "99999", Message: "Email not confirmed"}
	if got := Classify(err); got != CategoryEmailUnconfirmed {
		t.Errorf("expected email_unconfirmed, got %s", got)
	}
}

func TestUserMessage_CoversEveryCategory(t *testing.T) {
	categories := []Category{
		CategoryPermissionDenied,
		CategoryDuplicate,
		CategoryForeignKeyInUse,
		CategoryMissingField,
		CategoryInvalidData,
		CategoryNotFound,
		CategoryInvalidCredentials,
		CategoryEmailUnconfirmed,
		CategoryEmailRegistered,
		CategoryUnknown,
	}

	seen := make(map[string]Category, len(categories))
	for _, cat := range categories {
		msg := UserMessage(cat)
		if msg == "" {
			t.Errorf("category %s has no message", cat)
		}
		if prev, dup := seen[msg]; dup {
			t.Errorf("categories %s and %s share message %q", prev, cat, msg)
		}
		seen[msg] = cat
	}
}

func TestUserMessage_UnrecognizedCategory(t *testing.T) {
	if got := UserMessage(Category("nonsense")); got != UserMessage(CategoryUnknown) {
		t.Errorf("unrecognized category should get the unknown message, got %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		cat  Category
		want int
	}{
		{CategoryPermissionDenied, http.StatusForbidden},
		{CategoryDuplicate, http.StatusConflict},
		{CategoryNotFound, http.StatusNotFound},
		{CategoryInvalidCredentials, http.StatusUnauthorized},
		{CategoryUnknown, http.StatusInternalServerError},
		{Category("nonsense"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.cat); got != tc.want {
			t.Errorf("category %s: expected %d, got %d", tc.cat, tc.want, got)
		}
	}
}

func TestBackendError_Error(t *testing.T) {
	err := &BackendError{Code: "23505", Message: "duplicate key"}
	if err.Error() != "duplicate key (23505)" {
		t.Errorf("unexpected error string %q", err.Error())
	}
	bare := &BackendError{Message: "just a message"}
	if bare.Error() != "just a message" {
		t.Errorf("unexpected error string %q", bare.Error())
	}
}
