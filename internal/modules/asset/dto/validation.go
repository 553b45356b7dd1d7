package dto

import (
	"sync"

	"github.com/hdn-james/50years-ulaw-sub000/internal/imaging"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidations 向 gin 的校验器注册自定义规则（fitmode），可重复调用。
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("fitmode", func(fl validator.FieldLevel) bool {
			_, err := imaging.ParseFitMode(fl.Field().String())
			return err == nil
		})
	})
}
