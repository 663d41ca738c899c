// Package validation expõe o validador compartilhado de requisições e respostas externas
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Mensagens usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct valida a struct a partir das tags `validate`
func Struct(s any) error {
	return validate.Struct(s)
}

// Messages converte os erros do validador em mensagens legíveis
func Messages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, message(fieldErr))
	}

	return messages
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " é obrigatório"
	case "email":
		return "Formato de email inválido"
	case "url":
		return err.Field() + " deve ser uma URL válida"
	case "min":
		return err.Field() + " deve ter no mínimo " + err.Param() + " caracteres"
	case "max":
		return err.Field() + " deve ter no máximo " + err.Param() + " caracteres"
	case "gte":
		return err.Field() + " deve ser maior ou igual a " + err.Param()
	case "lte":
		return err.Field() + " deve ser menor ou igual a " + err.Param()
	default:
		return err.Field() + " é inválido"
	}
}
