package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntariado_backend/internals/features/opportunities/controller"
	authMiddleware "voluntariado_backend/internals/middlewares/auth"
)

func OpportunityRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewOpportunityController(db)

	// leitura é pública
	api.Get("/opportunities", ctrl.List)
	api.Get("/opportunities/:id", ctrl.GetByID)

	// mutação exige identidade
	protected := api.Group("/opportunities", authMiddleware.AuthMiddleware())
	protected.Post("/", ctrl.Create)
	protected.Put("/:id", ctrl.Update)
	protected.Delete("/:id", ctrl.Delete)
}
