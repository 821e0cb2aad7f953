package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"voluntariado_backend/internals/configs"
	database "voluntariado_backend/internals/databases"
	enrollmentModel "voluntariado_backend/internals/features/enrollments/model"
	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
	opportunityRoute "voluntariado_backend/internals/features/opportunities/route"
	testimonialModel "voluntariado_backend/internals/features/testimonials/model"
	userModel "voluntariado_backend/internals/features/users/model"
	userService "voluntariado_backend/internals/features/users/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "segredo-de-teste"
	configs.UploadDir = t.TempDir()
	db := newTestDB(t)
	app := fiber.New()
	opportunityRoute.OpportunityRoutes(app.Group("/api"), db)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, cpf, name string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{UserCPF: cpf, UserName: name, UserEmail: cpf + "@exemplo.com", UserPassword: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func bearerFor(t *testing.T, u userModel.UserModel) string {
	t.Helper()
	token, err := userService.IssueAccessToken(&u)
	require.NoError(t, err)
	return "Bearer " + token
}

func multipartOpportunity(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func createOpportunity(t *testing.T, app *fiber.App, token string, fields map[string]string) string {
	t.Helper()
	body, contentType := multipartOpportunity(t, fields)
	req := httptest.NewRequest("POST", "/api/opportunities/", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Success)
	require.NotEmpty(t, out.ID)
	return out.ID
}

func defaultFields(title string) map[string]string {
	return map[string]string{
		"title":           title,
		"description":     "Ação de voluntariado",
		"eventAt":         time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
		"durationHours":   "3.5",
		"location":        "São Paulo, Brazil",
		"slots":           "10",
		"institutionName": "Instituto Verde",
		"volunteerType":   "Environment",
	}
}

func TestOpportunityCreate_FindOrCreateReusesInstitution(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "11111111111", "Rafael")
	token := bearerFor(t, user)

	createOpportunity(t, app, token, defaultFields("Plantio de Árvores"))

	// mesmo nome com caixa diferente não pode duplicar a instituição
	fields := defaultFields("Limpeza de Praça")
	fields["institutionName"] = "instituto verde"
	createOpportunity(t, app, token, fields)

	var institutions int64
	require.NoError(t, db.Model(&opportunityModel.InstitutionModel{}).Count(&institutions).Error)
	assert.Equal(t, int64(1), institutions)

	var types int64
	require.NoError(t, db.Model(&opportunityModel.VolunteerTypeModel{}).Count(&types).Error)
	assert.Equal(t, int64(1), types)
}

func TestOpportunityUpdate_NonCreatorIsForbidden(t *testing.T) {
	app, db := newTestApp(t)
	creator := seedUser(t, db, "11111111111", "Rafael")
	other := seedUser(t, db, "22222222222", "Ana")

	id := createOpportunity(t, app, bearerFor(t, creator), defaultFields("Plantio de Árvores"))

	body, contentType := multipartOpportunity(t, map[string]string{"title": "Título Alterado"})
	req := httptest.NewRequest("PUT", "/api/opportunities/"+id, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", bearerFor(t, other))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// a linha fica intacta
	var opp opportunityModel.OpportunityModel
	require.NoError(t, db.Where("opportunity_id = ?", id).First(&opp).Error)
	assert.Equal(t, "Plantio de Árvores", opp.OpportunityTitle)
	assert.Equal(t, creator.UserCPF, opp.OpportunityCreatorCPF)
}

func TestOpportunityDelete_CascadesAtomically(t *testing.T) {
	app, db := newTestApp(t)
	creator := seedUser(t, db, "11111111111", "Rafael")
	volunteer := seedUser(t, db, "22222222222", "Ana")

	id := createOpportunity(t, app, bearerFor(t, creator), defaultFields("Plantio de Árvores"))

	var opp opportunityModel.OpportunityModel
	require.NoError(t, db.Where("opportunity_id = ?", id).First(&opp).Error)

	for _, cpf := range []string{creator.UserCPF, volunteer.UserCPF} {
		require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
			EnrollmentUserCPF:       cpf,
			EnrollmentOpportunityID: opp.OpportunityID,
			EnrollmentStatus:        "Enrolled",
		}).Error)
	}
	require.NoError(t, db.Create(&testimonialModel.TestimonialModel{
		TestimonialAuthorCPF:     volunteer.UserCPF,
		TestimonialOpportunityID: opp.OpportunityID,
		TestimonialText:          "Experiência incrível!",
	}).Error)

	// quem não criou não remove
	req := httptest.NewRequest("DELETE", "/api/opportunities/"+id, nil)
	req.Header.Set("Authorization", bearerFor(t, volunteer))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("DELETE", "/api/opportunities/"+id, nil)
	req.Header.Set("Authorization", bearerFor(t, creator))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var enrollments, testimonials, opportunities int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_opportunity_id = ?", opp.OpportunityID).Count(&enrollments).Error)
	require.NoError(t, db.Model(&testimonialModel.TestimonialModel{}).
		Where("testimonial_opportunity_id = ?", opp.OpportunityID).Count(&testimonials).Error)
	require.NoError(t, db.Model(&opportunityModel.OpportunityModel{}).
		Where("opportunity_id = ?", opp.OpportunityID).Count(&opportunities).Error)

	assert.Zero(t, enrollments)
	assert.Zero(t, testimonials)
	assert.Zero(t, opportunities)
}

func TestOpportunityList_NewestFirst(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "11111111111", "Rafael")
	token := bearerFor(t, user)

	first := createOpportunity(t, app, token, defaultFields("Primeira"))
	time.Sleep(10 * time.Millisecond) // separa os created_at
	second := createOpportunity(t, app, token, defaultFields("Segunda"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, second, rows[0]["id"])
	assert.Equal(t, first, rows[1]["id"])

	// joins resolvidos na resposta
	inst, ok := rows[0]["institution"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Instituto Verde", inst["name"])
	assert.Equal(t, "Environment", rows[0]["volunteerType"])
}

func TestOpportunityGetByID_NotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/opportunities/inexistente", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var out fiber.Map
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, false, out["success"])
}
