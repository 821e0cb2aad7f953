package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"voluntariado_backend/internals/features/opportunities/model"
)

// Find-or-create por chave natural. O caminho é upsert + re-select em cima do
// índice único em LOWER(nome): duas requisições idênticas concorrentes acabam
// na mesma linha em vez de duplicar.

func FindOrCreateInstitution(db *gorm.DB, name, email, phone string) (*model.InstitutionModel, error) {
	name = strings.TrimSpace(name)

	var inst model.InstitutionModel
	err := db.Where("LOWER(institution_name) = LOWER(?)", name).First(&inst).Error
	if err == nil {
		return &inst, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inst = model.InstitutionModel{
		InstitutionName:  name,
		InstitutionEmail: strings.TrimSpace(email),
		InstitutionPhone: strings.TrimSpace(phone),
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&inst)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// alguém criou no meio do caminho; pega a linha vencedora
		if err := db.Where("LOWER(institution_name) = LOWER(?)", name).First(&inst).Error; err != nil {
			return nil, err
		}
	}
	return &inst, nil
}

func FindOrCreateVolunteerType(db *gorm.DB, label string) (*model.VolunteerTypeModel, error) {
	label = strings.TrimSpace(label)

	var vt model.VolunteerTypeModel
	err := db.Where("LOWER(volunteer_type_label) = LOWER(?)", label).First(&vt).Error
	if err == nil {
		return &vt, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vt = model.VolunteerTypeModel{VolunteerTypeLabel: label}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&vt)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if err := db.Where("LOWER(volunteer_type_label) = LOWER(?)", label).First(&vt).Error; err != nil {
			return nil, err
		}
	}
	return &vt, nil
}
