package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"voluntariado_backend/internals/constants"
	"voluntariado_backend/internals/features/enrollments/dto"
	"voluntariado_backend/internals/features/enrollments/model"
	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
	helper "voluntariado_backend/internals/helpers"
)

type EnrollmentController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db, validate: validator.New()}
}

// 🟢 POST /api/enrollment — inscrição duplicada é conflito (400)
func (ctrl *EnrollmentController) Create(c *fiber.Ctx) error {
	userCPF := helper.CurrentUserCPF(c)
	if userCPF == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identidade ausente")
	}

	var req dto.EnrollmentRequest
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

	// precheck amigável; a chave composta segura a corrida
	var existing model.EnrollmentModel
	err := ctrl.DB.Where("enrollment_user_cpf = ? AND enrollment_opportunity_id = ?", userCPF, req.OpportunityID).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Você já está inscrito nesta oportunidade")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	enrollment := model.EnrollmentModel{
		EnrollmentUserCPF:       userCPF,
		EnrollmentOpportunityID: req.OpportunityID,
		EnrollmentStatus:        constants.EnrollmentStatusEnrolled,
	}
	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Você já está inscrito nesta oportunidade")
		}
		log.Printf("[ERROR] Falha ao criar inscrição: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonSuccess(c, fiber.Map{})
}

// 🟢 GET /api/my-activities/:userId — só eventos futuros, ascendente
func (ctrl *EnrollmentController) MyActivities(c *fiber.Ctx) error {
	userCPF := c.Params("userId")
	if userCPF == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Usuário não informado")
	}

	var rows []model.EnrollmentModel
	if err := ctrl.DB.
		Joins("JOIN opportunities ON opportunities.opportunity_id = enrollments.enrollment_opportunity_id").
		Where("enrollment_user_cpf = ? AND opportunities.opportunity_event_at >= ?", userCPF, time.Now()).
		Order("opportunities.opportunity_event_at ASC").
		Preload("Opportunity.Institution").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonRaw(c, dto.ToActivityResponseList(rows))
}

// 🔴 DELETE /api/enrollment — idempotente: remover o que não existe é sucesso
func (ctrl *EnrollmentController) Cancel(c *fiber.Ctx) error {
	userCPF := helper.CurrentUserCPF(c)
	if userCPF == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identidade ausente")
	}

	var req dto.EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.DB.
		Where("enrollment_user_cpf = ? AND enrollment_opportunity_id = ?", userCPF, req.OpportunityID).
		Delete(&model.EnrollmentModel{}).Error; err != nil {
		log.Printf("[ERROR] Falha ao cancelar inscrição: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonSuccess(c, fiber.Map{})
}
