package handlers

import (
	"fmt"

	"github.com/SscSPs/fx_risk_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerValidators adds the currencycode and currencypair tags to gin's validator.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		return domain.IsCurrencyCode(domain.NormalizeCurrencyCode(fl.Field().String()))
	}); err != nil {
		return err
	}
	return v.RegisterValidation("currencypair", func(fl validator.FieldLevel) bool {
		return domain.IsCurrencyPair(domain.NormalizeCurrencyCode(fl.Field().String()))
	})
}
