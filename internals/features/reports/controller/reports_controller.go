package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentModel "voluntariado_backend/internals/features/enrollments/model"
	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
	"voluntariado_backend/internals/features/reports/service"
	userModel "voluntariado_backend/internals/features/users/model"
	helper "voluntariado_backend/internals/helpers"
)

type ReportsController struct {
	DB *gorm.DB
}

func NewReportsController(db *gorm.DB) *ReportsController {
	return &ReportsController{DB: db}
}

// 🟢 GET /api/stats/:userId — resumo pessoal do dashboard
func (ctrl *ReportsController) UserStats(c *fiber.Ctx) error {
	userCPF := c.Params("userId")
	if userCPF == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Usuário não informado")
	}

	var enrollments []enrollmentModel.EnrollmentModel
	if err := ctrl.DB.
		Preload("Opportunity").
		Where("enrollment_user_cpf = ?", userCPF).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var totalOpportunities int64
	if err := ctrl.DB.Model(&opportunityModel.OpportunityModel{}).Count(&totalOpportunities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// voluntários distintos, não linhas de inscrição
	var totalVolunteers int64
	if err := ctrl.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Distinct("enrollment_user_cpf").
		Count(&totalVolunteers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonRaw(c, service.BuildUserStats(time.Now(), enrollments, totalOpportunities, totalVolunteers))
}

// 🟢 GET /api/impact-global — relatório de impacto
func (ctrl *ReportsController) GlobalImpact(c *fiber.Ctx) error {
	var enrollments []enrollmentModel.EnrollmentModel
	if err := ctrl.DB.Preload("Opportunity").Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var opportunities []opportunityModel.OpportunityModel
	if err := ctrl.DB.Preload("VolunteerType").Find(&opportunities).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []userModel.UserModel
	if err := ctrl.DB.Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	names := make(map[string]string, len(users))
	for i := range users {
		names[users[i].UserCPF] = users[i].UserName
	}

	return helper.JsonRaw(c, service.BuildGlobalImpact(time.Now(), enrollments, opportunities, names))
}

// 🟢 GET /api/profile/:userId — perfil + retrospectiva anual
func (ctrl *ReportsController) Profile(c *fiber.Ctx) error {
	userCPF := c.Params("userId")
	if userCPF == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Usuário não informado")
	}

	// usuário ausente é erro terminal desta rota
	var user userModel.UserModel
	if err := ctrl.DB.Where("user_cpf = ?", userCPF).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := ctrl.DB.
		Preload("Opportunity").
		Preload("Opportunity.Institution").
		Preload("Opportunity.VolunteerType").
		Where("enrollment_user_cpf = ?", userCPF).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonRaw(c, service.BuildProfile(time.Now(), &user, rows))
}
