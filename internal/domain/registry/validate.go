package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator usa el tag `label` como nombre de campo en los mensajes,
// así los errores hablan en términos del payload (crmv, data_nascimento...).
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if l := strings.TrimSpace(fld.Tag.Get("label")); l != "" {
			return l
		}
		return fld.Name
	})
	return v
}

// Validate chequea presencia/longitud según los tags `validate` del input.
// Devuelve un ValidationError con el primer campo inválido.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return Validation(err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return Validation(fmt.Sprintf("%s is required", fe.Field()))
	case "max":
		return Validation(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return Validation(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
