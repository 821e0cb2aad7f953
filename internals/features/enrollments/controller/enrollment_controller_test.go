package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"voluntariado_backend/internals/configs"
	database "voluntariado_backend/internals/databases"
	enrollmentModel "voluntariado_backend/internals/features/enrollments/model"
	enrollmentRoute "voluntariado_backend/internals/features/enrollments/route"
	opportunityModel "voluntariado_backend/internals/features/opportunities/model"
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
	db := newTestDB(t)
	app := fiber.New()
	enrollmentRoute.EnrollmentRoutes(app.Group("/api"), db)
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, cpf, name string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{UserCPF: cpf, UserName: name, UserEmail: cpf + "@exemplo.com", UserPassword: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedOpportunity(t *testing.T, db *gorm.DB, creatorCPF string, eventAt time.Time) opportunityModel.OpportunityModel {
	t.Helper()
	inst := opportunityModel.InstitutionModel{InstitutionName: "ONG " + uuid.NewString()}
	require.NoError(t, db.Create(&inst).Error)
	vt := opportunityModel.VolunteerTypeModel{VolunteerTypeLabel: "Tipo " + uuid.NewString()}
	require.NoError(t, db.Create(&vt).Error)
	opp := opportunityModel.OpportunityModel{
		OpportunityTitle:           "Mutirão",
		OpportunityEventAt:         eventAt,
		OpportunityDurationHours:   4,
		OpportunityCreatorCPF:      creatorCPF,
		OpportunityInstitutionID:   inst.InstitutionID,
		OpportunityVolunteerTypeID: vt.VolunteerTypeID,
	}
	require.NoError(t, db.Create(&opp).Error)
	return opp
}

func bearerFor(t *testing.T, u userModel.UserModel) string {
	t.Helper()
	token, err := userService.IssueAccessToken(&u)
	require.NoError(t, err)
	return "Bearer " + token
}

func enrollmentRequest(method, target, token string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func TestEnrollmentCreate_DuplicateIsConflict(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "11111111111", "Rafael")
	opp := seedOpportunity(t, db, user.UserCPF, time.Now().AddDate(0, 1, 0))
	token := bearerFor(t, user)
	payload := fiber.Map{"opportunityId": opp.OpportunityID}

	resp, err := app.Test(enrollmentRequest("POST", "/api/enrollment/", token, payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// segunda tentativa: conflito, e nenhuma linha extra
	resp, err = app.Test(enrollmentRequest("POST", "/api/enrollment/", token, payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).
		Where("enrollment_user_cpf = ?", user.UserCPF).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestEnrollmentCreate_UnknownOpportunity(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "22222222222", "Ana")
	token := bearerFor(t, user)

	resp, err := app.Test(enrollmentRequest("POST", "/api/enrollment/", token, fiber.Map{"opportunityId": uuid.New()}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEnrollmentCreate_RequiresToken(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "33333333333", "Caio")
	opp := seedOpportunity(t, db, user.UserCPF, time.Now().AddDate(0, 1, 0))

	resp, err := app.Test(enrollmentRequest("POST", "/api/enrollment/", "", fiber.Map{"opportunityId": opp.OpportunityID}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEnrollmentCancel_IsIdempotent(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "44444444444", "Beatriz")
	opp := seedOpportunity(t, db, user.UserCPF, time.Now().AddDate(0, 1, 0))
	token := bearerFor(t, user)
	payload := fiber.Map{"opportunityId": opp.OpportunityID}

	require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
		EnrollmentUserCPF:       user.UserCPF,
		EnrollmentOpportunityID: opp.OpportunityID,
		EnrollmentStatus:        "Enrolled",
	}).Error)

	resp, err := app.Test(enrollmentRequest("DELETE", "/api/enrollment/", token, payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// cancelar de novo continua sendo sucesso
	resp, err = app.Test(enrollmentRequest("DELETE", "/api/enrollment/", token, payload))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&enrollmentModel.EnrollmentModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMyActivities_OnlyFutureAscending(t *testing.T) {
	app, db := newTestApp(t)
	user := seedUser(t, db, "55555555555", "Diego")

	past := seedOpportunity(t, db, user.UserCPF, time.Now().AddDate(0, -1, 0))
	far := seedOpportunity(t, db, user.UserCPF, time.Now().AddDate(0, 3, 0))
	near := seedOpportunity(t, db, user.UserCPF, time.Now().AddDate(0, 1, 0))

	for _, opp := range []opportunityModel.OpportunityModel{past, far, near} {
		require.NoError(t, db.Create(&enrollmentModel.EnrollmentModel{
			EnrollmentUserCPF:       user.UserCPF,
			EnrollmentOpportunityID: opp.OpportunityID,
			EnrollmentStatus:        "Enrolled",
		}).Error)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/api/my-activities/"+user.UserCPF, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, near.OpportunityID.String(), rows[0]["opportunityId"])
	assert.Equal(t, far.OpportunityID.String(), rows[1]["opportunityId"])
}
