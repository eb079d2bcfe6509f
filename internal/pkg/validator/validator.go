package validator

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cycleroute-microservice/internal/domain"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("cyclability", validateCyclability)
	return v
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Fields раскладывает ошибку валидации в {поле: нарушенное правило}.
// Поля называются по json-тегу. ok == false, если err не ошибка валидации.
func Fields(err error) (fields map[string]interface{}, ok bool) {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return nil, false
	}

	fields = make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields, true
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// validateCyclability принимает оценку из [0, 1] или domain.Unrated
func validateCyclability(fl validator.FieldLevel) bool {
	return domain.ValidScore(fl.Field().Float())
}
