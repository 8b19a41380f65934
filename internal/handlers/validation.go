package handlers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/SscSPs/bank_account_kata/internal/core/domain"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the amount tags used by the request DTOs to gin's validator.
// It panics if the tags cannot be registered, since every amount route depends on them.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("unexpected validator engine %T", binding.Validator.Engine()))
		}
		if err := registerAmountValidators(v); err != nil {
			panic(err)
		}
	})
}

func registerAmountValidators(v *validator.Validate) error {
	return errors.Join(
		v.RegisterValidation("positive_amount", amountValidator(domain.Money.IsPositive)),
		v.RegisterValidation("nonnegative_amount", amountValidator(func(m domain.Money) bool {
			return !m.IsNegative()
		})),
	)
}

// amountValidator accepts string fields that domain.ParseMoney accepts and that satisfy ok.
func amountValidator(ok func(domain.Money) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		m, err := domain.ParseMoney(fl.Field().String())
		if err != nil {
			return false
		}
		return ok(m)
	}
}
