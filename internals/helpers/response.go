package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Envelopes no formato que o front consome: sucesso sempre carrega
// success:true, falha carrega success:false + message.

// ✅ 200 com campos extras mesclados
func JsonSuccess(c *fiber.Ctx, extra fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// ✅ 201 para criação
func JsonCreated(c *fiber.Ctx, extra fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusCreated).JSON(body)
}

// ✅ payload cru (listas e objetos de relatório)
func JsonRaw(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// ❌ erro simples
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// ❌ erro de validação (validator.v10) com mapa campo → tag
func JsonValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Dados inválidos")
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validação falhou",
		"errors":  fields,
	})
}
