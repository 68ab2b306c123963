package dto

import (
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom enum validations used by the request
// DTO binding tags on gin's validator engine. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("tier", func(fl validator.FieldLevel) bool {
		return domain.OrganizationTier(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("cwrole", func(fl validator.FieldLevel) bool {
		return domain.CaseworkerRole(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("txntype", func(fl validator.FieldLevel) bool {
		return domain.TransactionType(fl.Field().String()).Valid()
	})
}
