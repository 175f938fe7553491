package handlers

import (
	"fmt"

	"github.com/SscSPs/erp_backend/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// positiveDecimal accepts strings holding a decimal number greater than zero.
func positiveDecimal(fl validator.FieldLevel) bool {
	_, err := utils.ParsePositiveDecimal(fl.Field().String())
	return err == nil
}

// RegisterValidators adds the custom binding tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("positive_decimal", positiveDecimal); err != nil {
		return fmt.Errorf("failed to register positive_decimal: %w", err)
	}
	return nil
}
