package leaveerrors

import (
	"fmt"
	"net/http"

	"go-hris-cli/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"RejectionReason is required when status is Rejected",
		http.StatusBadRequest,
	)
	ErrCancellationReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"cancellation reason is required",
		http.StatusBadRequest,
	)
)

// ErrInsufficientBalance is built per request so the message can carry the
// actual remaining days.
func ErrInsufficientBalance(remainingDays int) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("Insufficient leave balance. You have %d days available.", remainingDays),
		http.StatusUnprocessableEntity,
	)
}
