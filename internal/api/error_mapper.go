package api

import (
	"errors"
	"net/http"

	"buddha-num-conv/internal/conv"
	"buddha-num-conv/internal/magnitude"
	"buddha-num-conv/internal/render"
)

// ErrorCode represents unified API error codes
type ErrorCode string

const (
	ErrorCodeInvalidNumber      ErrorCode = "INVALID_NUMBER"
	ErrorCodeFractionalExponent ErrorCode = "FRACTIONAL_EXPONENT"
	ErrorCodeMagnitudeTooLarge  ErrorCode = "MAGNITUDE_TOO_LARGE"
	ErrorCodeInvalidArgument    ErrorCode = "INVALID_ARGUMENT"
	ErrorCodeScaleNotFound      ErrorCode = "SCALE_NOT_FOUND"
	ErrorCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

// errScaleNotFound is returned for ordinals outside the scale table
var errScaleNotFound = errors.New("scale not found")

// MapErrorToHTTP maps errors to HTTP status codes and error responses
func MapErrorToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return http.StatusOK, ErrorResponse{}
	}

	if errors.Is(err, magnitude.ErrFractionalExponent) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    string(ErrorCodeFractionalExponent),
			Message: err.Error(),
		}
	}

	if errors.Is(err, magnitude.ErrInvalidNumber) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    string(ErrorCodeInvalidNumber),
			Message: err.Error(),
		}
	}

	var overflowErr *conv.OverflowError
	if errors.As(err, &overflowErr) || errors.Is(err, conv.ErrMagnitudeTooLarge) {
		return http.StatusUnprocessableEntity, ErrorResponse{
			Code:    string(ErrorCodeMagnitudeTooLarge),
			Message: err.Error(),
		}
	}

	if errors.Is(err, render.ErrUnknownFormat) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    string(ErrorCodeInvalidArgument),
			Message: err.Error(),
		}
	}

	if errors.Is(err, errScaleNotFound) {
		return http.StatusNotFound, ErrorResponse{
			Code:    string(ErrorCodeScaleNotFound),
			Message: err.Error(),
		}
	}

	// Default to internal error
	return http.StatusInternalServerError, ErrorResponse{
		Code:    string(ErrorCodeInternalError),
		Message: err.Error(),
	}
}
