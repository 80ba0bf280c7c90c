// internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validator instance global (thread-safe menurut dok validator/v10).
var Validate = validator.New()

// ValidationErrorMap mengubah error validator/v10 jadi map field → pesan,
// siap dikirim lewat JsonValidationError.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}

	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " minimal " + fe.Param() + " karakter."
		case "max":
			msg = field + " maksimal " + fe.Param() + " karakter."
		case "oneof":
			msg = field + " harus salah satu dari " + fe.Param() + "."
		case "uuid":
			msg = field + " harus UUID valid."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
