// Package errors provides structured error handling with machine-readable codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Account errors
	CodeAccountEmailRequired      Code = "ACCOUNT_EMAIL_REQUIRED"
	CodeAccountPasswordRequired   Code = "ACCOUNT_PASSWORD_REQUIRED"
	CodeAccountNameRequired       Code = "ACCOUNT_NAME_REQUIRED"
	CodeAccountEmailTaken         Code = "ACCOUNT_EMAIL_TAKEN"
	CodeAccountInvalidCredentials Code = "ACCOUNT_INVALID_CREDENTIALS"
	CodeAccountInvalidUserType    Code = "ACCOUNT_INVALID_USER_TYPE"

	// Emission errors
	CodeEmissionInvalidAmount Code = "EMISSION_INVALID_AMOUNT"
	CodeEmissionTypeRequired  Code = "EMISSION_TYPE_REQUIRED"

	// Session errors
	CodeSessionRequired Code = "SESSION_REQUIRED"
	CodeSessionInvalid  Code = "SESSION_INVALID"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
	CodeInternal Code = "INTERNAL"
)

// HTTPStatus maps the code to the HTTP status the web surface should serve.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeAccountEmailRequired,
		CodeAccountPasswordRequired,
		CodeAccountNameRequired,
		CodeAccountInvalidUserType,
		CodeEmissionInvalidAmount,
		CodeEmissionTypeRequired:
		return http.StatusBadRequest
	case CodeAccountInvalidCredentials, CodeSessionRequired, CodeSessionInvalid:
		return http.StatusUnauthorized
	case CodeAccountEmailTaken:
		return http.StatusConflict
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
