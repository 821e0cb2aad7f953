package service

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"voluntariado_backend/internals/configs"
	userDTO "voluntariado_backend/internals/features/users/dto"
	userModel "voluntariado_backend/internals/features/users/model"
	helper "voluntariado_backend/internals/helpers"
)

var validate = validator.New()

const accessTokenTTL = 24 * time.Hour

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Senha nunca vai em claro para o banco.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao processar a senha")
	}

	user := userModel.UserModel{
		UserCPF:      req.CPF,
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "CPF ou email já cadastrado")
		}
		log.Printf("[ERROR] Falha ao criar usuário: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fiber.Map{"user": userDTO.ToUserResponse(&user)})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha inválidos")
		}
		log.Printf("[ERROR] Falha ao buscar usuário: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email ou senha inválidos")
	}

	return issueToken(c, &user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Requisição inválida")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID Token do Google inválido")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao decodificar o ID Token")
	}

	var user userModel.UserModel
	if err := db.Where("user_email = ?", claimSet.Email).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		// Primeira entrada via Google: cria a conta com senha aleatória
		// inutilizável (login por senha exige reset).
		dummy, herr := bcrypt.GenerateFromPassword([]byte(jwt.NewNumericDate(time.Now()).String()+claimSet.Sub), bcrypt.DefaultCost)
		if herr != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar conta Google")
		}
		user = userModel.UserModel{
			UserCPF:      "g-" + claimSet.Sub,
			UserName:     claimSet.Name,
			UserEmail:    claimSet.Email,
			UserPassword: string(dummy),
		}
		if err := db.Create(&user).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Email já cadastrado")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return issueToken(c, &user)
}

/* ==========================
   TOKEN
========================== */

// IssueAccessToken assina o token de identidade (capability explícita que o
// front manda de volta em Authorization: Bearer).
func IssueAccessToken(user *userModel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserCPF,
		"user_name": user.UserName,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

func issueToken(c *fiber.Ctx, user *userModel.UserModel) error {
	token, err := IssueAccessToken(user)
	if err != nil {
		log.Printf("[ERROR] Falha ao assinar token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Falha ao gerar token")
	}
	return helper.JsonSuccess(c, fiber.Map{
		"token": token,
		"user":  userDTO.ToUserResponse(user),
	})
}
