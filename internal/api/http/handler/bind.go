package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/dtroode/recipe-server/internal/model"
)

// RegisterValidator makes binding errors report JSON field names.
func RegisterValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindJSON decodes the request body into obj and translates decoding and
// validation failures into request errors. An empty body decodes as {}.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err != nil {
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var fieldErr *model.ValidationError
	if errors.As(err, &fieldErr) {
		return fieldErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		v := &model.ValidationError{}
		for _, fe := range verrs {
			v.Add(fe.Field(), fieldMessage(fe))
		}
		return v
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return model.NewValidationError(typeErr.Field, fmt.Sprintf("A valid %s is required.", typeName(typeErr.Type)))
	}

	return &requestError{detail: "JSON parse error - " + err.Error()}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return model.MsgRequired
	case "email":
		return model.MsgInvalidEmail
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}

func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "string"
	}
}
