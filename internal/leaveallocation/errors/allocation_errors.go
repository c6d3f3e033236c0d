package allocationerrors

import (
	"net/http"

	"go-hris-cli/internal/shared/apperror"
)

var (
	ErrNoActiveEmployees = apperror.New(
		apperror.CodeInvalidState,
		"No active employees found",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be a positive number",
		http.StatusBadRequest,
	)
)
