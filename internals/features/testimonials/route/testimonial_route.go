package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntariado_backend/internals/features/testimonials/controller"
	authMiddleware "voluntariado_backend/internals/middlewares/auth"
)

func TestimonialRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTestimonialController(db)

	api.Get("/testimonials", ctrl.List)

	protected := api.Group("/testimonials", authMiddleware.AuthMiddleware())
	protected.Post("/", ctrl.Create)
	protected.Delete("/:id", ctrl.Delete)
}
