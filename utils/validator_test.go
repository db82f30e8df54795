package utils

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validateSample struct {
	TmName string `validate:"required,min=1,max=64"`
	Level  int    `validate:"gte=1,lte=3"`
}

func TestValidateOk(t *testing.T) {
	err := Validate(validateSample{TmName: "小米", Level: 3})
	assert.NoError(t, err)
}

func TestFormatValidationError(t *testing.T) {
	err := Validate(validateSample{TmName: "", Level: 2})
	require.Error(t, err)
	msg := FormatValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "品牌名称不能为空", msg)

	err = Validate(validateSample{TmName: "小米", Level: 9})
	require.Error(t, err)
	msg = FormatValidationError(err.(validator.ValidationErrors))
	assert.Equal(t, "分类等级必须小于等于3", msg)
}
