package model

import (
	"time"

	"github.com/google/uuid"

	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
)

// EnrollmentModel liga voluntário a oportunidade. Chave composta garante no
// máximo uma inscrição por par (user, opportunity).
type EnrollmentModel struct {
	EnrollmentUserCPF       string    `gorm:"column:enrollment_user_cpf;type:varchar(64);primaryKey" json:"enrollment_user_cpf"`
	EnrollmentOpportunityID uuid.UUID `gorm:"column:enrollment_opportunity_id;type:uuid;primaryKey" json:"enrollment_opportunity_id"`
	EnrollmentStatus        string    `gorm:"column:enrollment_status;type:varchar(20);not null" json:"enrollment_status"`
	EnrollmentCreatedAt     time.Time `gorm:"column:enrollment_created_at;type:timestamptz;autoCreateTime" json:"enrollment_created_at"`

	Opportunity opportunityModel.OpportunityModel `gorm:"foreignKey:EnrollmentOpportunityID;references:OpportunityID" json:"-"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}
