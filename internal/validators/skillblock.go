package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MarkAnthonyM/BlockPlot/models"
	"github.com/go-playground/validator/v10"
)

// SkillblockValidator validates skillblock creation forms.
type SkillblockValidator struct {
	validate *validator.Validate
}

func NewSkillblockValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("notblank", notBlank)

	return &SkillblockValidator{validate: v}
}

// Validate checks a [models.NewSkillblockForm]. With fields given, only
// those struct fields are checked.
func (v *SkillblockValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var form models.NewSkillblockForm
	switch value := obj.(type) {
	case models.NewSkillblockForm:
		form = value
	case *models.NewSkillblockForm:
		if value == nil {
			return ErrUnsupportedType
		}
		form = *value
	default:
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, form, fields...)
	} else {
		err = v.validate.StructCtx(ctx, form)
	}

	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(messages, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
