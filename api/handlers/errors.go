// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"linkpost-api/core/errors"
)

func init() {
	// Schema validation failures are reported as 400, not 422
	newError := huma.NewError
	huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
		if status == http.StatusUnprocessableEntity {
			status = http.StatusBadRequest
		}
		return newError(status, msg, errs...)
	}
}

// toHumaError converts domain errors to appropriate Huma HTTP errors. Only
// the short message reaches the caller; causes stay in the server log.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	var validationErr *errors.ValidationError
	if stderrors.As(err, &validationErr) {
		return huma.Error400BadRequest(validationErr.Message)
	}

	var authErr *errors.AuthError
	if stderrors.As(err, &authErr) {
		return huma.Error401Unauthorized(authErr.Message)
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	var fetchErr *errors.FetchError
	if stderrors.As(err, &fetchErr) {
		return huma.Error500InternalServerError(fetchErr.Error())
	}

	var genErr *errors.GenerationError
	if stderrors.As(err, &genErr) {
		return huma.Error500InternalServerError(genErr.Message)
	}

	var publishErr *errors.PublishError
	if stderrors.As(err, &publishErr) {
		return huma.Error500InternalServerError(publishErr.Message)
	}

	return huma.Error500InternalServerError("Internal server error")
}
