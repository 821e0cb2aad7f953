package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
	"voluntariado_backend/internals/features/testimonials/dto"
	"voluntariado_backend/internals/features/testimonials/model"
	helper "voluntariado_backend/internals/helpers"
)

type TestimonialController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewTestimonialController(db *gorm.DB) *TestimonialController {
	return &TestimonialController{DB: db, validate: validator.New()}
}

// 🟢 GET /api/testimonials — mais recentes primeiro
func (ctrl *TestimonialController) List(c *fiber.Ctx) error {
	var rows []model.TestimonialModel
	if err := ctrl.DB.
		Preload("Author").
		Preload("Opportunity").
		Order("testimonial_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonRaw(c, dto.ToTestimonialResponseList(rows))
}

// 🟢 POST /api/testimonials
func (ctrl *TestimonialController) Create(c *fiber.Ctx) error {
	authorCPF := helper.CurrentUserCPF(c)
	if authorCPF == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identidade ausente")
	}

	var req dto.TestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var opp opportunityModel.OpportunityModel
	if err := ctrl.DB.Where("opportunity_id = ?", req.OpportunityID).First(&opp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Oportunidade não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	t := model.TestimonialModel{
		TestimonialAuthorCPF:     authorCPF,
		TestimonialOpportunityID: req.OpportunityID,
		TestimonialText:          req.Text,
	}
	if err := ctrl.DB.Create(&t).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar depoimento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"id": t.TestimonialID})
}

// 🔴 DELETE /api/testimonials/:id — só o autor remove
func (ctrl *TestimonialController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Depoimento não encontrado")
	}

	var t model.TestimonialModel
	if err := ctrl.DB.Where("testimonial_id = ?", id).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Depoimento não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if t.TestimonialAuthorCPF != helper.CurrentUserCPF(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Apenas o autor pode remover este depoimento")
	}

	if err := ctrl.DB.Delete(&t).Error; err != nil {
		log.Printf("[ERROR] Falha ao remover depoimento: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonSuccess(c, fiber.Map{})
}
