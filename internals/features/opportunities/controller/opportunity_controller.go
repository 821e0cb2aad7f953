package controller

import (
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"voluntariado_backend/internals/configs"
	enrollmentModel "voluntariado_backend/internals/features/enrollments/model"
	"voluntariado_backend/internals/features/opportunities/dto"
	"voluntariado_backend/internals/features/opportunities/model"
	"voluntariado_backend/internals/features/opportunities/service"
	testimonialModel "voluntariado_backend/internals/features/testimonials/model"
	helper "voluntariado_backend/internals/helpers"
)

type OpportunityController struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewOpportunityController(db *gorm.DB) *OpportunityController {
	return &OpportunityController{DB: db, validate: validator.New()}
}

// aceita RFC3339 e o formato do <input type="datetime-local">
func parseEventAt(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", raw)
}

// 🟢 POST /api/opportunities (multipart, imagem opcional)
func (ctrl *OpportunityController) Create(c *fiber.Ctx) error {
	creatorCPF := helper.CurrentUserCPF(c)
	if creatorCPF == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Identidade ausente")
	}

	var req dto.OpportunityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	eventAt, err := parseEventAt(req.EventAt)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Data do evento inválida")
	}

	imageURL := ""
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		imageURL, err = helper.SaveUploadedImage(fh, configs.UploadDir)
		if err != nil {
			log.Printf("[ERROR] Upload de imagem: %v", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Imagem inválida")
		}
	}

	inst, err := service.FindOrCreateInstitution(ctrl.DB, req.InstitutionName, req.InstitutionEmail, req.InstitutionPhone)
	if err != nil {
		log.Printf("[ERROR] Instituição: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	vt, err := service.FindOrCreateVolunteerType(ctrl.DB, req.VolunteerType)
	if err != nil {
		log.Printf("[ERROR] Categoria: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	opp := model.OpportunityModel{
		OpportunityTitle:           req.Title,
		OpportunityDescription:     req.Description,
		OpportunityEventAt:         eventAt,
		OpportunityDurationHours:   req.DurationHours,
		OpportunityLocation:        req.Location,
		OpportunitySlots:           req.Slots,
		OpportunitySkills:          req.Skills,
		OpportunityImageURL:        imageURL,
		OpportunityCreatorCPF:      creatorCPF,
		OpportunityInstitutionID:   inst.InstitutionID,
		OpportunityVolunteerTypeID: vt.VolunteerTypeID,
	}
	if err := ctrl.DB.Create(&opp).Error; err != nil {
		log.Printf("[ERROR] Falha ao criar oportunidade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"id": opp.OpportunityID})
}

// 🟢 GET /api/opportunities — mais novas primeiro, com joins
func (ctrl *OpportunityController) List(c *fiber.Ctx) error {
	var rows []model.OpportunityModel
	if err := ctrl.DB.
		Preload("Institution").
		Preload("VolunteerType").
		Preload("Creator").
		Order("opportunity_created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonRaw(c, dto.ToOpportunityResponseList(rows))
}

// 🟢 GET /api/opportunities/:id
func (ctrl *OpportunityController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Oportunidade não encontrada")
	}

	var opp model.OpportunityModel
	if err := ctrl.DB.
		Preload("Institution").
		Preload("VolunteerType").
		Preload("Creator").
		Where("opportunity_id = ?", id).
		First(&opp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Oportunidade não encontrada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	resp := dto.ToOpportunityResponse(&opp)
	return helper.JsonRaw(c, &resp)
}

// 🟡 PUT /api/opportunities/:id — só o criador edita
func (ctrl *OpportunityController) Update(c *fiber.Ctx) error {
	opp, ferr := ctrl.ownedOpportunity(c)
	if opp == nil {
		return ferr
	}

	updates := map[string]interface{}{}

	if v := c.FormValue("title"); v != "" {
		updates["opportunity_title"] = v
	}
	if v := c.FormValue("description"); v != "" {
		updates["opportunity_description"] = v
	}
	if v := c.FormValue("eventAt"); v != "" {
		eventAt, err := parseEventAt(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Data do evento inválida")
		}
		updates["opportunity_event_at"] = eventAt
	}
	if v := c.FormValue("durationHours"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Duração inválida")
		}
		updates["opportunity_duration_hours"] = d
	}
	if v := c.FormValue("location"); v != "" {
		updates["opportunity_location"] = v
	}
	if v := c.FormValue("slots"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Número de vagas inválido")
		}
		updates["opportunity_slots"] = n
	}
	if v := c.FormValue("skills"); v != "" {
		updates["opportunity_skills"] = v
	}
	if v := c.FormValue("institutionName"); v != "" {
		inst, err := service.FindOrCreateInstitution(ctrl.DB, v, c.FormValue("institutionEmail"), c.FormValue("institutionPhone"))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		updates["opportunity_institution_id"] = inst.InstitutionID
	}
	if v := c.FormValue("volunteerType"); v != "" {
		vt, err := service.FindOrCreateVolunteerType(ctrl.DB, v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		updates["opportunity_volunteer_type_id"] = vt.VolunteerTypeID
	}
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		url, err := helper.SaveUploadedImage(fh, configs.UploadDir)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Imagem inválida")
		}
		updates["opportunity_image_url"] = url
	}

	if len(updates) == 0 {
		return helper.JsonSuccess(c, fiber.Map{})
	}

	if err := ctrl.DB.Model(opp).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] Falha ao atualizar oportunidade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonSuccess(c, fiber.Map{})
}

// 🔴 DELETE /api/opportunities/:id — cascata tudo-ou-nada
func (ctrl *OpportunityController) Delete(c *fiber.Ctx) error {
	opp, ferr := ctrl.ownedOpportunity(c)
	if opp == nil {
		return ferr
	}

	// As três remoções dependentes + a final são uma unidade indivisível:
	// parar no meio (inscrições removidas, oportunidade de pé) é corrupção.
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("enrollment_opportunity_id = ?", opp.OpportunityID).
			Delete(&enrollmentModel.EnrollmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("testimonial_opportunity_id = ?", opp.OpportunityID).
			Delete(&testimonialModel.TestimonialModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(opp).Error
	})
	if err != nil {
		log.Printf("[ERROR] Falha ao remover oportunidade: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonSuccess(c, fiber.Map{})
}

// busca a oportunidade do path e aplica o gate de autoria
func (ctrl *OpportunityController) ownedOpportunity(c *fiber.Ctx) (*model.OpportunityModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Oportunidade não encontrada")
	}

	var opp model.OpportunityModel
	if err := ctrl.DB.Where("opportunity_id = ?", id).First(&opp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Oportunidade não encontrada")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if opp.OpportunityCreatorCPF != helper.CurrentUserCPF(c) {
		return nil, helper.JsonError(c, fiber.StatusForbidden, "Apenas o criador pode alterar esta oportunidade")
	}
	return &opp, nil
}
