// file: internals/helpers/validate.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct menjalankan validasi tag `validate` pada DTO.
// Hasil error dikonversi ke map field → pesan (untuk JsonValidationError).
func ValidateStruct(s any) map[string][]string {
	if err := validate.Struct(s); err != nil {
		fieldErrors := map[string][]string{}
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
			}
			return fieldErrors
		}
		fieldErrors["_"] = []string{err.Error()}
		return fieldErrors
	}
	return nil
}
