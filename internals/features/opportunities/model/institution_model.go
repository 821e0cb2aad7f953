package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstitutionModel struct {
	InstitutionID        uuid.UUID `gorm:"column:institution_id;type:uuid;primaryKey" json:"institution_id"`
	InstitutionName      string    `gorm:"column:institution_name;type:varchar(255);not null" json:"institution_name"`
	InstitutionEmail     string    `gorm:"column:institution_email;type:varchar(255)" json:"institution_email"`
	InstitutionPhone     string    `gorm:"column:institution_phone;type:varchar(30)" json:"institution_phone"`
	InstitutionCreatedAt time.Time `gorm:"column:institution_created_at;type:timestamptz;autoCreateTime" json:"institution_created_at"`

	// NOTE: unicidade case-insensitive do nome vem de índice de expressão
	// criado na migração (ux_institutions_name_lower).
}

func (InstitutionModel) TableName() string {
	return "institutions"
}

func (m *InstitutionModel) BeforeCreate(tx *gorm.DB) error {
	if m.InstitutionID == uuid.Nil {
		m.InstitutionID = uuid.New()
	}
	return nil
}
