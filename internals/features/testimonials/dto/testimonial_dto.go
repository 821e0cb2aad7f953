package dto

import (
	"time"

	"github.com/google/uuid"

	"voluntariado_backend/internals/features/testimonials/model"
)

type TestimonialRequest struct {
	OpportunityID uuid.UUID `json:"opportunityId" validate:"required"`
	Text          string    `json:"text" validate:"required,min=3"`
}

type TestimonialResponse struct {
	ID          uuid.UUID `json:"id"`
	Author      string    `json:"author"`
	AuthorID    string    `json:"authorId"`
	Opportunity string    `json:"opportunity"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ToTestimonialResponse(m *model.TestimonialModel) TestimonialResponse {
	return TestimonialResponse{
		ID:          m.TestimonialID,
		Author:      m.Author.UserName,
		AuthorID:    m.TestimonialAuthorCPF,
		Opportunity: m.Opportunity.OpportunityTitle,
		Text:        m.TestimonialText,
		CreatedAt:   m.TestimonialCreatedAt,
	}
}

func ToTestimonialResponseList(models []model.TestimonialModel) []TestimonialResponse {
	result := make([]TestimonialResponse, 0, len(models))
	for i := range models {
		result = append(result, ToTestimonialResponse(&models[i]))
	}
	return result
}
