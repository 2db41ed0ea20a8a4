// ABOUTME: Maps domain results to API response DTOs
// ABOUTME: Keeps wire field names out of the core packages

package mappers

import (
	"math"
	"strconv"
	"strings"

	"linkpost-api/api/dto/requests"
	"linkpost-api/api/dto/responses"
	"linkpost-api/core/domain"
)

// ToGenerateResponse builds the generate response for a stored generation
func ToGenerateResponse(generation *domain.Generation, digest *domain.PageDigest) responses.GenerateResponse {
	tweets := make([]domain.PostVariant, len(generation.Variants))
	copy(tweets, generation.Variants[:])

	return responses.GenerateResponse{
		GenerationID: generation.ID,
		Tweets:       tweets,
		WebpageInfo: responses.WebpageInfo{
			Title:       digest.Title,
			Description: digest.MetaDescription,
		},
	}
}

// ToPublishResponse builds the publish response
func ToPublishResponse(result *domain.PublishResult) responses.PublishResponse {
	return responses.PublishResponse{
		Success: true,
		PostURL: result.PostURL,
		URI:     result.URI,
		CID:     result.CID,
	}
}

// ToFeedbackRecord converts a feedback request, which may be nil. A missing
// or non-integer index becomes -1, non-string text fields become empty and
// an unrecognised rating is dropped; ok reports whether the rating was
// understood.
func ToFeedbackRecord(req *requests.FeedbackRequest) (record domain.FeedbackRecord, ok bool) {
	record = domain.FeedbackRecord{Index: -1}
	if req == nil {
		return record, true
	}

	record.GenerationID = asString(req.GenerationID)
	record.Comment = asString(req.Feedback)
	if index, valid := asIndex(req.TweetID); valid {
		record.Index = index
	}

	switch rating := req.Rating.(type) {
	case nil:
		return record, true
	case string:
		if rating == "" {
			return record, true
		}
		parsed, ok := domain.ParseRating(rating)
		if ok {
			record.Rating = parsed
		}
		return record, ok
	default:
		return record, false
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asIndex accepts whole JSON numbers and numeric strings
func asIndex(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
