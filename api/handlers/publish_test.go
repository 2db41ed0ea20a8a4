package handlers

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpost-api/api/dto/responses"
	"linkpost-api/core/domain"
	"linkpost-api/core/errors"
)

func newPublishAPI(t *testing.T, publisher *mockPublisher) humatest.TestAPI {
	_, api := humatest.New(t)
	NewPublishHandler(publisher, nopLogger{}).RegisterRoutes(api)
	return api
}

func countingPublisher() *mockPublisher {
	n := 0
	return &mockPublisher{
		publishFunc: func(ctx context.Context, text string) (*domain.PublishResult, error) {
			n++
			rkey := fmt.Sprintf("3kpost%d", n)
			return &domain.PublishResult{
				PostURL: "https://bsky.app/profile/acme.bsky.social/post/" + rkey,
				URI:     "at://did:plc:abc123/app.bsky.feed.post/" + rkey,
				CID:     "bafy" + rkey,
			}, nil
		},
	}
}

func TestPublishHandler_Success(t *testing.T) {
	publisher := countingPublisher()
	api := newPublishAPI(t, publisher)

	resp := api.Post("/api/post-tweet", map[string]any{"text": "Acme ships rocket skates"})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body responses.PublishResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "https://bsky.app/profile/acme.bsky.social/post/3kpost1", body.PostURL)
	assert.Equal(t, "at://did:plc:abc123/app.bsky.feed.post/3kpost1", body.URI)
	assert.Equal(t, []string{"Acme ships rocket skates"}, publisher.texts)
}

func TestPublishHandler_TwoCallsTwoPosts(t *testing.T) {
	api := newPublishAPI(t, countingPublisher())

	var first, second responses.PublishResponse
	require.NoError(t, json.Unmarshal(api.Post("/api/post-tweet", map[string]any{"text": "same"}).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(api.Post("/api/post-tweet", map[string]any{"text": "same"}).Body.Bytes(), &second))

	assert.NotEqual(t, first.PostURL, second.PostURL)
}

func TestPublishHandler_MissingText(t *testing.T) {
	publisher := countingPublisher()
	api := newPublishAPI(t, publisher)

	for _, body := range []map[string]any{{}, {"text": ""}} {
		resp := api.Post("/api/post-tweet", body)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Tweet text is required", decodeProblem(t, resp.Body.Bytes())["detail"])
	}
	assert.Empty(t, publisher.texts)
}

func TestPublishHandler_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:           "auth failure is 401",
			err:            &errors.AuthError{Message: "Bluesky authentication failed. Please check credentials."},
			expectedStatus: http.StatusUnauthorized,
			expectedDetail: "Bluesky authentication failed. Please check credentials.",
		},
		{
			name:           "publish failure is generic 500",
			err:            &errors.PublishError{Message: "Failed to post tweet to Bluesky", Err: stderrors.New("jwt eyJ... rejected")},
			expectedStatus: http.StatusInternalServerError,
			expectedDetail: "Failed to post tweet to Bluesky",
		},
		{
			name:           "whitespace text rejected by publisher is 400",
			err:            &errors.ValidationError{Field: "text", Message: "Tweet text is required"},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Tweet text is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newPublishAPI(t, &mockPublisher{
				publishFunc: func(ctx context.Context, text string) (*domain.PublishResult, error) {
					return nil, tt.err
				},
			})

			resp := api.Post("/api/post-tweet", map[string]any{"text": "  "})

			assert.Equal(t, tt.expectedStatus, resp.Code)
			assert.Equal(t, tt.expectedDetail, decodeProblem(t, resp.Body.Bytes())["detail"])
		})
	}
}

func TestPublishHandler_WrongTextTypeIsBadRequest(t *testing.T) {
	publisher := countingPublisher()
	api := newPublishAPI(t, publisher)

	resp := api.Post("/api/post-tweet", map[string]any{"text": 42})

	assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
	assert.Empty(t, publisher.texts)
}
