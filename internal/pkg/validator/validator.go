package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate проверяет структуру и собирает ошибки в одно русское сообщение.
func Validate(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var messages []string
	for _, e := range err.(validator.ValidationErrors) {
		switch e.Tag() {
		case "required":
			messages = append(messages, "поле "+e.Field()+" обязательно")
		case "gt":
			messages = append(messages, "поле "+e.Field()+" должно быть больше "+e.Param())
		case "gte":
			messages = append(messages, "поле "+e.Field()+" должно быть не меньше "+e.Param())
		case "oneof":
			messages = append(messages, "поле "+e.Field()+" должно быть одним из: "+e.Param())
		case "datetime":
			messages = append(messages, "поле "+e.Field()+" должно быть датой в формате "+e.Param())
		default:
			messages = append(messages, "поле "+e.Field()+" не прошло проверку "+e.Tag())
		}
	}

	return errors.New(strings.Join(messages, "; "))
}
