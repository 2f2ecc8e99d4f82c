package apperror

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Request structs are checked with gin's validator. Field errors name the
// json field and map to stable codes:
//
//	required, notblank  -> <field>_required
//	max                 -> <field>_too_long
//	gte, min            -> invalid_<field>
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateRequest runs the binding rules of req outside of a gin request.
func ValidateRequest(req interface{}) error {
	if err := binding.Validator.ValidateStruct(req); err != nil {
		return BindError(err)
	}
	return nil
}

// BindError converts a ShouldBindJSON failure into a validation error.
func BindError(err error) *Error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldError(fieldErrs[0], err)
	}
	return BadRequestBody(err)
}

func fieldError(fe validator.FieldError, err error) *Error {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return &Error{Kind: KindValidation, Code: field + "_required", Message: field + " is required", Err: err}
	case "max":
		return &Error{Kind: KindValidation, Code: field + "_too_long",
			Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param()), Err: err}
	case "gte", "min":
		return &Error{Kind: KindValidation, Code: "invalid_" + field,
			Message: fmt.Sprintf("%s must be at least %s", field, fe.Param()), Err: err}
	default:
		return &Error{Kind: KindValidation, Code: "invalid_" + field, Message: field + " is invalid", Err: err}
	}
}

// BadRequestBody wraps a JSON decoding or binding failure.
func BadRequestBody(err error) *Error {
	return &Error{Kind: KindValidation, Code: "invalid_request_body", Message: "invalid input: " + err.Error(), Err: err}
}
