package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
	userModel "voluntariado_backend/internals/features/users/model"
)

type TestimonialModel struct {
	TestimonialID            uuid.UUID `gorm:"column:testimonial_id;type:uuid;primaryKey" json:"testimonial_id"`
	TestimonialAuthorCPF     string    `gorm:"column:testimonial_author_cpf;type:varchar(64);not null;index:idx_testimonials_author" json:"testimonial_author_cpf"`
	TestimonialOpportunityID uuid.UUID `gorm:"column:testimonial_opportunity_id;type:uuid;not null;index:idx_testimonials_opportunity" json:"testimonial_opportunity_id"`
	TestimonialText          string    `gorm:"column:testimonial_text;type:text;not null" json:"testimonial_text"`
	TestimonialCreatedAt     time.Time `gorm:"column:testimonial_created_at;type:timestamptz;autoCreateTime" json:"testimonial_created_at"`

	Author      userModel.UserModel               `gorm:"foreignKey:TestimonialAuthorCPF;references:UserCPF" json:"-"`
	Opportunity opportunityModel.OpportunityModel `gorm:"foreignKey:TestimonialOpportunityID;references:OpportunityID" json:"-"`
}

func (TestimonialModel) TableName() string {
	return "testimonials"
}

func (m *TestimonialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TestimonialID == uuid.Nil {
		m.TestimonialID = uuid.New()
	}
	return nil
}
