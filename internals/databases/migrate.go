package database

import (
	"log"

	"gorm.io/gorm"

	enrollmentModel "voluntariado_backend/internals/features/enrollments/model"
	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
	testimonialModel "voluntariado_backend/internals/features/testimonials/model"
	userModel "voluntariado_backend/internals/features/users/model"
)

// Migrate cria/atualiza o esquema das seis entidades.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&opportunityModel.InstitutionModel{},
		&opportunityModel.VolunteerTypeModel{},
		&opportunityModel.OpportunityModel{},
		&enrollmentModel.EnrollmentModel{},
		&testimonialModel.TestimonialModel{},
	); err != nil {
		return err
	}

	// Índices únicos case-insensitive para o find-or-create de instituição e
	// categoria. Não dá para expressar via tag do GORM (índice de expressão),
	// então vão por SQL direto — é isso que fecha a corrida check-then-create.
	for _, stmt := range []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_institutions_name_lower ON institutions (LOWER(institution_name))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_volunteer_types_label_lower ON volunteer_types (LOWER(volunteer_type_label))`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			log.Printf("[WARN] índice único: %v", err)
		}
	}
	return nil
}
