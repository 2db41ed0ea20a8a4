package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpost-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "ValidationError returns 400 with its message",
			input:          &errors.ValidationError{Field: "url", Message: "Missing required fields"},
			expectedStatus: 400,
			expectedDetail: "Missing required fields",
		},
		{
			name:           "AuthError returns 401",
			input:          &errors.AuthError{Message: "Bluesky authentication failed. Please check credentials."},
			expectedStatus: 401,
			expectedDetail: "Bluesky authentication failed. Please check credentials.",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "generation", ID: "x"},
			expectedStatus: 404,
			expectedDetail: "generation not found: x",
		},
		{
			name:           "FetchError returns 500 with the fetch message",
			input:          &errors.FetchError{URL: "https://example.com", StatusCode: 404},
			expectedStatus: 500,
			expectedDetail: "Failed to fetch webpage: https://example.com returned status 404",
		},
		{
			name:           "GenerationError returns 500 without the cause",
			input:          &errors.GenerationError{Message: "Failed to generate tweets", Err: stderrors.New("bad json")},
			expectedStatus: 500,
			expectedDetail: "Failed to generate tweets",
		},
		{
			name:           "PublishError hides the cause",
			input:          &errors.PublishError{Message: "Failed to post tweet to Bluesky", Err: stderrors.New("token abc rejected")},
			expectedStatus: 500,
			expectedDetail: "Failed to post tweet to Bluesky",
		},
		{
			name:           "wrapped AuthError returns 401",
			input:          fmt.Errorf("publish: %w", &errors.AuthError{Message: "denied"}),
			expectedStatus: 401,
			expectedDetail: "denied",
		},
		{
			name:           "unknown error returns generic 500",
			input:          stderrors.New("secret internals"),
			expectedStatus: 500,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			var model *huma.ErrorModel
			require.True(t, stderrors.As(result, &model), "expected *huma.ErrorModel, got %T", result)
			assert.Equal(t, tt.expectedStatus, model.Status)
			assert.Equal(t, tt.expectedDetail, model.Detail)
			assert.Empty(t, model.Errors)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil))
}

func TestSchemaValidationStatus(t *testing.T) {
	err := huma.NewError(http.StatusUnprocessableEntity, "validation failed")
	assert.Equal(t, http.StatusBadRequest, err.GetStatus())

	err = huma.NewError(http.StatusNotFound, "missing")
	assert.Equal(t, http.StatusNotFound, err.GetStatus())
}
