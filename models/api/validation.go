package apimodels

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в ошибках используем имена полей из json
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct проверяет теги validate, возвращает описание первого нарушения
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.Wrap(err, "ошибка проверки запроса")
	}
	e := fieldErrs[0]
	switch e.Tag() {
	case "required":
		return errors.Errorf("не заполнено поле %s", e.Field())
	case "email":
		return errors.Errorf("некорректный адрес почты в поле %s", e.Field())
	default:
		return errors.Errorf("некорректное значение поля %s", e.Field())
	}
}
