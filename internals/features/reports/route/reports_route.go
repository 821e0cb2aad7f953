package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntariado_backend/internals/features/reports/controller"
)

func ReportsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewReportsController(db)

	api.Get("/stats/:userId", ctrl.UserStats)
	api.Get("/impact-global", ctrl.GlobalImpact)
	api.Get("/profile/:userId", ctrl.Profile)
}
