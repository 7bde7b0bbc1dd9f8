package util

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 校验失败时原样返回 validator 错误，由 response.Error 统一翻译为 400
func ValidateDTO(dto any) error {
	return validate.Struct(dto)
}
