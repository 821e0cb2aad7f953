package dto

import (
	"time"

	"github.com/google/uuid"

	"voluntariado_backend/internals/features/opportunities/model"
)

// 🔹 Campos do multipart de criação/edição (a imagem vai à parte)
type OpportunityRequest struct {
	Title            string  `form:"title" validate:"required,min=3,max=255"`
	Description      string  `form:"description"`
	EventAt          string  `form:"eventAt" validate:"required"`
	DurationHours    float64 `form:"durationHours" validate:"gte=0"`
	Location         string  `form:"location"`
	Slots            int     `form:"slots" validate:"gte=0"`
	Skills           string  `form:"skills"`
	InstitutionName  string  `form:"institutionName" validate:"required"`
	InstitutionEmail string  `form:"institutionEmail"`
	InstitutionPhone string  `form:"institutionPhone"`
	VolunteerType    string  `form:"volunteerType" validate:"required"`
}

type InstitutionResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type CreatorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// 🔹 Linha juntada devolvida nas listagens e no detalhe
type OpportunityResponse struct {
	ID            uuid.UUID           `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	EventAt       time.Time           `json:"eventAt"`
	DurationHours float64             `json:"durationHours"`
	Location      string              `json:"location"`
	Slots         int                 `json:"slots"`
	Skills        string              `json:"skills"`
	ImageURL      string              `json:"imageUrl,omitempty"`
	Institution   InstitutionResponse `json:"institution"`
	VolunteerType string              `json:"volunteerType"`
	Creator       CreatorResponse     `json:"creator"`
	CreatedAt     time.Time           `json:"createdAt"`
}

func ToOpportunityResponse(m *model.OpportunityModel) OpportunityResponse {
	return OpportunityResponse{
		ID:            m.OpportunityID,
		Title:         m.OpportunityTitle,
		Description:   m.OpportunityDescription,
		EventAt:       m.OpportunityEventAt,
		DurationHours: m.OpportunityDurationHours,
		Location:      m.OpportunityLocation,
		Slots:         m.OpportunitySlots,
		Skills:        m.OpportunitySkills,
		ImageURL:      m.OpportunityImageURL,
		Institution: InstitutionResponse{
			Name:  m.Institution.InstitutionName,
			Email: m.Institution.InstitutionEmail,
			Phone: m.Institution.InstitutionPhone,
		},
		VolunteerType: m.VolunteerType.VolunteerTypeLabel,
		Creator: CreatorResponse{
			ID:   m.Creator.UserCPF,
			Name: m.Creator.UserName,
		},
		CreatedAt: m.OpportunityCreatedAt,
	}
}

func ToOpportunityResponseList(models []model.OpportunityModel) []OpportunityResponse {
	result := make([]OpportunityResponse, 0, len(models))
	for i := range models {
		result = append(result, ToOpportunityResponse(&models[i]))
	}
	return result
}
