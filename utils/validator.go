package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func Validate(i interface{}) error {
	return validate.Struct(i)
}

func FormatValidationError(errs validator.ValidationErrors) string {
	// 定义错误信息映射
	msgMap := map[string]string{
		"required": "不能为空",
		"min":      "长度不能小于%v",
		"max":      "长度不能大于%v",
		"oneof":    "必须是[%v]中的一个",
		"gt":       "必须大于%v",
		"gte":      "必须大于等于%v",
		"lt":       "必须小于%v",
		"lte":      "必须小于等于%v",
		"url":      "必须是有效的网址",
	}

	// 字段名称映射（将英文字段名转换为中文）
	fieldMap := map[string]string{
		"Name":      "名称",
		"Username":  "用户名",
		"Password":  "密码",
		"AttrName":  "属性名称",
		"ValueName": "属性值名称",
		"TmName":    "品牌名称",
		"LogoURL":   "品牌logo",
		"SpuName":   "SPU名称",
		"SkuName":   "SKU名称",
		"RoleName":  "角色名称",
		"Level":     "分类等级",
		"PageNum":   "页码",
		"PageSize":  "每页大小",
	}

	// 获取第一个错误（通常只返回第一个错误）
	firstErr := errs[0]

	fieldName := fieldMap[firstErr.Field()]
	if fieldName == "" {
		fieldName = firstErr.Field()
	}

	msgTemplate := msgMap[firstErr.Tag()]
	if msgTemplate == "" {
		msgTemplate = "验证失败"
	}

	if firstErr.Param() != "" {
		return fieldName + fmt.Sprintf(msgTemplate, firstErr.Param())
	}

	return fieldName + msgTemplate
}
