// Package dto defines the HTTP bodies of the recommendation feature.
package dto

import (
	clothingdto "wardrobe_backend/internal/feature/clothing/transport/http/dto"
	"wardrobe_backend/internal/feature/recommendation/usecase"
)

// SuggestRequest is the body of POST /recommendation/suggest.
type SuggestRequest struct {
	Event      string `json:"event" binding:"required"`
	Weather    string `json:"weather" binding:"required"`
	TimeOfDay  string `json:"time_of_day" binding:"required"`
	WithAdvice bool   `json:"with_advice"`
}

// ToUsecase converts the body to a usecase request.
func (r SuggestRequest) ToUsecase() usecase.Request {
	return usecase.Request{
		Event:      r.Event,
		Weather:    r.Weather,
		TimeOfDay:  r.TimeOfDay,
		WithAdvice: r.WithAdvice,
	}
}

// Suggestion is one ranked wardrobe item.
type Suggestion struct {
	Clothing clothingdto.ClothingResponse `json:"clothing"`
	Score    int                          `json:"score"`
	Reasons  []string                     `json:"reasons"`
}

// SuggestResponse is the ranked outfit list.
type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	Event       string       `json:"event"`
	Weather     string       `json:"weather"`
	TimeOfDay   string       `json:"time_of_day"`
	Advice      string       `json:"advice,omitempty"`
}

// FromResult converts a usecase result to its response body.
func FromResult(r *usecase.Result) SuggestResponse {
	out := SuggestResponse{
		Suggestions: make([]Suggestion, 0, len(r.Suggestions)),
		Event:       string(r.Event),
		Weather:     string(r.Weather),
		TimeOfDay:   string(r.TimeOfDay),
		Advice:      r.Advice,
	}
	for _, s := range r.Suggestions {
		reasons := s.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		out.Suggestions = append(out.Suggestions, Suggestion{
			Clothing: clothingdto.FromEntity(s.Item),
			Score:    s.Score,
			Reasons:  reasons,
		})
	}
	return out
}
