package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VolunteerTypeModel struct {
	VolunteerTypeID        uuid.UUID `gorm:"column:volunteer_type_id;type:uuid;primaryKey" json:"volunteer_type_id"`
	VolunteerTypeLabel     string    `gorm:"column:volunteer_type_label;type:varchar(100);not null" json:"volunteer_type_label"`
	VolunteerTypeCreatedAt time.Time `gorm:"column:volunteer_type_created_at;type:timestamptz;autoCreateTime" json:"volunteer_type_created_at"`
}

func (VolunteerTypeModel) TableName() string {
	return "volunteer_types"
}

func (m *VolunteerTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.VolunteerTypeID == uuid.Nil {
		m.VolunteerTypeID = uuid.New()
	}
	return nil
}
