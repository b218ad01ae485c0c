package dto

import (
	"fmt"
	"sync"

	"github.com/SscSPs/loyalty_token_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the ledger tags to gin's validator engine:
//
//	ledgername  a valid account name
//	symbolcode  a valid symbol code
//	asset       a parseable "10.0000 SYS" quantity
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		for tag, fn := range map[string]validator.Func{
			"ledgername": validateLedgerName,
			"symbolcode": validateSymbolCode,
			"asset":      validateAsset,
		} {
			if err = v.RegisterValidation(tag, fn); err != nil {
				return
			}
		}
	})
	return err
}

func validateLedgerName(fl validator.FieldLevel) bool {
	return domain.Name(fl.Field().String()).IsValid()
}

func validateSymbolCode(fl validator.FieldLevel) bool {
	return domain.IsValidSymbolCode(fl.Field().String())
}

func validateAsset(fl validator.FieldLevel) bool {
	_, err := domain.ParseAsset(fl.Field().String())
	return err == nil
}
