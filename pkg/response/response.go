// Package response defines the JSON envelope returned by every API
// endpoint, together with the canned error responses handlers reuse.
package response

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var EmptyRequestBodyResponse = Response{
	Status:  StatusError,
	Error:   "Empty Request Body",
	Message: "Request body is empty. Please provide necessary data.",
}

var BadRequestResponse = Response{
	Status:  StatusError,
	Error:   "Bad Request",
	Message: "The request couldn't be processed. Please check your input.",
}

var ResourceNotFoundResponse = Response{
	Status:  StatusError,
	Error:   "Resource Not Found",
	Message: "The requested resource was not found.",
}

var ServerErrorResponse = Response{
	Status:  StatusError,
	Error:   "Server Error",
	Message: "An internal server error occurred. Please try again later.",
}

// Response is the envelope of every JSON reply.
type Response struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse builds a success envelope. At most one data payload is
// used; extras are ignored.
func SuccessResponse(msg string, data ...any) Response {
	resp := Response{
		Status:  StatusSuccess,
		Message: msg,
	}

	if len(data) > 0 && data[0] != nil {
		resp.Data = data[0]
	}

	return resp
}

// ValidationErrorResponse builds the envelope for a failed payload
// validation, expanding per-field details from the validator error.
func ValidationErrorResponse(err error) Response {
	return Response{
		Status:  StatusError,
		Error:   "Validation Error",
		Message: "Some fields didn't pass validation. Please check your input.",
		Details: getValidationErrors(err),
	}
}

// QueryParamErrorResponse builds the envelope for an out-of-range or
// malformed query parameter.
func QueryParamErrorResponse(param, issue string) Response {
	return Response{
		Status:  StatusError,
		Error:   "Validation Error",
		Message: "Some query parameters didn't pass validation. Please check your input.",
		Details: []validationError{{Field: param, Issue: issue}},
	}
}

type validationError struct {
	Field string `json:"field"`
	Value any    `json:"value,omitempty"`
	Issue string `json:"issue"`
}

func getValidationErrors(err error) []validationError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	out := make([]validationError, 0, len(ve))
	for _, fe := range ve {
		issue := "Invalid value."

		switch fe.Tag() {
		case "required":
			issue = "This field is required."
		case "url":
			issue = "Invalid url."
		case "min":
			issue = "Value is too small."
		case "max":
			issue = "Value is too large."
		}

		out = append(out, validationError{
			Field: fe.Field(),
			Value: fe.Value(),
			Issue: issue,
		})
	}

	return out
}
