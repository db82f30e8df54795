package spu

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// SpuSave 新建SPU
func (s *Spu) SpuSave(c *gin.Context) {
	var req models.SpuSaveRequest
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

	req.ID = 0
	if err := models.SaveSpuInfo(&req); err != nil {
		global.Log.Error("models.SaveSpuInfo() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "SPU保存失败")
		return
	}
	global.Log.Info("SPU保存成功", zap.String("spuName", req.SpuName))
	res.Success(c, nil)
}

// SpuUpdate 更新SPU
func (s *Spu) SpuUpdate(c *gin.Context) {
	var req models.SpuSaveRequest
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
	if req.ID == 0 {
		res.Error(c, res.MissingParameter, "没有携带id！")
		return
	}

	if err := models.SaveSpuInfo(&req); err != nil {
		global.Log.Error("models.SaveSpuInfo() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "SPU更新失败")
		return
	}
	global.Log.Info("SPU更新成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
