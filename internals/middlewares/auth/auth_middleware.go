package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"voluntariado_backend/internals/configs"
	helper "voluntariado_backend/internals/helpers"
)

// AuthMiddleware valida o token de identidade (JWT Bearer) e grava o CPF do
// chamador em Locals("user_id"). A identidade viaja explícita em cada request;
// não existe sessão no servidor.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token de acesso ausente")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Configuração de autenticação ausente")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Falha ao validar token:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		if err := validateTokenExpiry(claims); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token expirado")
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token sem identidade")
		}
		c.Locals("user_id", userID)
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("claim exp ausente")
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return fmt.Errorf("token expirado")
	}
	return nil
}
