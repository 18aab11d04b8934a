package validator

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"omitempty,oneof=user admin"`
}

func TestValidate_Success(t *testing.T) {
	s := accountInput{Email: "alice@example.com", Password: "correct-horse", Role: "user"}
	err := Validate(s)
	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	s := accountInput{Password: "correct-horse"}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Email")
	assert.Equal(t, "is required", fields["Email"])
}

func TestValidate_InvalidEmail(t *testing.T) {
	s := accountInput{Email: "not-an-email", Password: "correct-horse"}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Email")
	assert.Equal(t, "must be a valid email address", fields["Email"])
}

func TestValidate_MultipleErrors(t *testing.T) {
	s := accountInput{} // missing Email and Password
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Password")
}

func TestValidationError_ErrorString(t *testing.T) {
	s := accountInput{}
	err := Validate(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Email'")
	assert.Contains(t, err.Error(), "is required")
}

type ratingInput struct {
	Rating int `validate:"min=1,max=5"`
}

func TestValidate_NumericMinMax(t *testing.T) {
	s := ratingInput{Rating: 9}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Equal(t, "must be at most 5", fields["Rating"])
	assert.NotContains(t, fields["Rating"], "characters")
}

type nameInput struct {
	Name string `validate:"min=3,max=100"`
}

func TestValidate_StringMinMax(t *testing.T) {
	s := nameInput{Name: "ab"}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Equal(t, "must be at least 3 characters", fields["Name"])
}

type idInput struct {
	ID string `validate:"uuid"`
}

func TestValidate_UUID(t *testing.T) {
	s := idInput{ID: "not-a-uuid"}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Equal(t, "must be a valid UUID", fields["ID"])
}

func TestValidate_UUID_Valid(t *testing.T) {
	s := idInput{ID: "550e8400-e29b-41d4-a716-446655440000"}
	err := Validate(s)
	assert.NoError(t, err)
}

type statusInput struct {
	Status string `validate:"oneof=approved rejected"`
}

func TestValidate_OneOf(t *testing.T) {
	s := statusInput{Status: "pending"}
	err := Validate(s)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	fields := valErr.Fields()
	assert.Contains(t, fields["Status"], "one of")
	assert.Contains(t, fields["Status"], "approved rejected")
}

func TestDecodeAndValidate_Success(t *testing.T) {
	body := `{"Email":"alice@example.com","Password":"correct-horse","Role":"admin"}`
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))

	var s accountInput
	err := DecodeAndValidate(req, &s)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", s.Email)
	assert.Equal(t, "admin", s.Role)
}

func TestDecodeAndValidate_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{invalid"))

	var s accountInput
	err := DecodeAndValidate(req, &s)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request body")
}

func TestDecodeAndValidate_ValidationFails(t *testing.T) {
	body := `{"Email":"bad","Password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))

	var s accountInput
	err := DecodeAndValidate(req, &s)

	require.Error(t, err)
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}
