package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "voluntariado_backend/internals/features/users/model"
)

type OpportunityModel struct {
	OpportunityID            uuid.UUID `gorm:"column:opportunity_id;type:uuid;primaryKey" json:"opportunity_id"`
	OpportunityTitle         string    `gorm:"column:opportunity_title;type:varchar(255);not null" json:"opportunity_title"`
	OpportunityDescription   string    `gorm:"column:opportunity_description;type:text" json:"opportunity_description"`
	OpportunityEventAt       time.Time `gorm:"column:opportunity_event_at;type:timestamptz;not null;index:idx_opportunities_event_at" json:"opportunity_event_at"`
	OpportunityDurationHours float64   `gorm:"column:opportunity_duration_hours;not null;default:0" json:"opportunity_duration_hours"`
	OpportunityLocation      string    `gorm:"column:opportunity_location;type:varchar(255)" json:"opportunity_location"`
	OpportunitySlots         int       `gorm:"column:opportunity_slots;not null;default:0" json:"opportunity_slots"`
	OpportunitySkills        string    `gorm:"column:opportunity_skills;type:text" json:"opportunity_skills"`
	OpportunityImageURL      string    `gorm:"column:opportunity_image_url;type:varchar(500)" json:"opportunity_image_url"`

	// Criador imutável: nunca aparece em updates.
	OpportunityCreatorCPF string `gorm:"column:opportunity_creator_cpf;type:varchar(64);not null;index:idx_opportunities_creator" json:"opportunity_creator_cpf"`

	OpportunityInstitutionID   uuid.UUID `gorm:"column:opportunity_institution_id;type:uuid;not null" json:"opportunity_institution_id"`
	OpportunityVolunteerTypeID uuid.UUID `gorm:"column:opportunity_volunteer_type_id;type:uuid;not null" json:"opportunity_volunteer_type_id"`

	OpportunityCreatedAt time.Time `gorm:"column:opportunity_created_at;type:timestamptz;autoCreateTime" json:"opportunity_created_at"`

	Creator       userModel.UserModel `gorm:"foreignKey:OpportunityCreatorCPF;references:UserCPF" json:"-"`
	Institution   InstitutionModel    `gorm:"foreignKey:OpportunityInstitutionID;references:InstitutionID" json:"-"`
	VolunteerType VolunteerTypeModel  `gorm:"foreignKey:OpportunityVolunteerTypeID;references:VolunteerTypeID" json:"-"`
}

func (OpportunityModel) TableName() string {
	return "opportunities"
}

func (m *OpportunityModel) BeforeCreate(tx *gorm.DB) error {
	if m.OpportunityID == uuid.Nil {
		m.OpportunityID = uuid.New()
	}
	return nil
}

// IsPast deriva a classificação passado/futuro; nada é armazenado.
func (m *OpportunityModel) IsPast(now time.Time) bool {
	return m.OpportunityEventAt.Before(now)
}
