package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
)

// requestValidator valida DTOs de entrada con las etiquetas validate:"...".
// Los nombres de campo del error salen de la etiqueta json.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{v: v}
}

// fieldErrors devuelve campo -> regla incumplida, o nil si el DTO es válido.
func (rv *requestValidator) fieldErrors(in any) map[string]string {
	err := rv.v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[fe.Field()] = rule
	}
	return out
}

// parseAndValidate lee el cuerpo JSON en dst y lo valida. Devuelve false si ya respondió.
func parseAndValidate(c *fiber.Ctx, rv *requestValidator, dst any) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: tr(c, msgInvalidBody)})
	}
	if fields := rv.fieldErrors(dst); fields != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: tr(c, msgInvalidInput),
			Fields:  fields,
		})
	}
	return true, nil
}
