package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/DhavalSuthar-24/acecourt/internal/models"
)

// RegisterTags adds the academy enum tags to gin's validator.
func RegisterTags() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerTags(v)
}

func registerTags(v *validator.Validate) error {
	tags := map[string]func(string) bool{
		"student_status": func(s string) bool { return models.StudentStatus(s).Valid() },
		"batch_level":    func(s string) bool { return models.Level(s).Valid() },
		"session_status": func(s string) bool { return models.SessionStatus(s).Valid() },
		"plan_status":    func(s string) bool { return models.PlanStatus(s).Valid() },
		"user_role":      func(s string) bool { return models.Role(s).Valid() },
	}
	for tag, valid := range tags {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	} else if err != nil { // Non-validator errors
		errors["error"] = err.Error()
	}
	return errors
}
