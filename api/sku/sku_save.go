package sku

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SkuSave 新建或更新SKU
func (s *Sku) SkuSave(c *gin.Context) {
	var req models.SkuSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := models.SaveSkuInfo(&req); err != nil {
		global.Log.Error("models.SaveSkuInfo() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "SKU保存失败")
		return
	}
	global.Log.Info("SKU保存成功", zap.String("skuName", req.SkuName))
	res.Success(c, nil)
}
