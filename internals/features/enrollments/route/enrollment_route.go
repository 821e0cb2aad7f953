package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntariado_backend/internals/features/enrollments/controller"
	authMiddleware "voluntariado_backend/internals/middlewares/auth"
)

func EnrollmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEnrollmentController(db)

	api.Get("/my-activities/:userId", ctrl.MyActivities)

	protected := api.Group("/enrollment", authMiddleware.AuthMiddleware())
	protected.Post("/", ctrl.Create)
	protected.Delete("/", ctrl.Cancel)
}
