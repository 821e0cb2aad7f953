package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentRoute "voluntariado_backend/internals/features/enrollments/route"
	opportunityRoute "voluntariado_backend/internals/features/opportunities/route"
	reportsRoute "voluntariado_backend/internals/features/reports/route"
	testimonialRoute "voluntariado_backend/internals/features/testimonials/route"
	userRoute "voluntariado_backend/internals/features/users/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Montando rotas de autenticação...")
	userRoute.AuthRoutes(api, db)

	log.Println("[INFO] Montando rotas de oportunidades...")
	opportunityRoute.OpportunityRoutes(api, db)

	log.Println("[INFO] Montando rotas de inscrições...")
	enrollmentRoute.EnrollmentRoutes(api, db)

	log.Println("[INFO] Montando rotas de depoimentos...")
	testimonialRoute.TestimonialRoutes(api, db)

	log.Println("[INFO] Montando rotas de relatórios...")
	reportsRoute.ReportsRoutes(api, db)
}
