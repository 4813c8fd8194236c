// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entity_name", validateEntityName)
	}
}

// validateEntityName accepts printable names without surrounding
// whitespace. Machine and product names are used as lookup keys, so a
// name that trims to something different would never match again.
func validateEntityName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" || name != strings.TrimSpace(name) {
		return false
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
