package dto

import (
	"time"

	"github.com/google/uuid"

	"voluntariado_backend/internals/features/enrollments/model"
)

// 🔹 Corpo de inscrição/cancelamento (o voluntário vem do token)
type EnrollmentRequest struct {
	OpportunityID uuid.UUID `json:"opportunityId" validate:"required"`
}

// 🔹 Linha de "minhas atividades" (inscrições futuras, juntadas)
type ActivityResponse struct {
	OpportunityID uuid.UUID `json:"opportunityId"`
	Title         string    `json:"title"`
	EventAt       time.Time `json:"eventAt"`
	DurationHours float64   `json:"durationHours"`
	Location      string    `json:"location"`
	Institution   string    `json:"institution"`
	Status        string    `json:"status"`
	EnrolledAt    time.Time `json:"enrolledAt"`
}

func ToActivityResponse(m *model.EnrollmentModel) ActivityResponse {
	return ActivityResponse{
		OpportunityID: m.EnrollmentOpportunityID,
		Title:         m.Opportunity.OpportunityTitle,
		EventAt:       m.Opportunity.OpportunityEventAt,
		DurationHours: m.Opportunity.OpportunityDurationHours,
		Location:      m.Opportunity.OpportunityLocation,
		Institution:   m.Opportunity.Institution.InstitutionName,
		Status:        m.EnrollmentStatus,
		EnrolledAt:    m.EnrollmentCreatedAt,
	}
}

func ToActivityResponseList(models []model.EnrollmentModel) []ActivityResponse {
	result := make([]ActivityResponse, 0, len(models))
	for i := range models {
		result = append(result, ToActivityResponse(&models[i]))
	}
	return result
}
