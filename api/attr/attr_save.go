package attr

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AttrSave 新建或更新平台属性及属性值
func (a *Attr) AttrSave(c *gin.Context) {
	var req models.AttrSaveRequest
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

	if err := models.SaveAttrInfo(&req); err != nil {
		global.Log.Error("models.SaveAttrInfo() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "属性保存失败")
		return
	}
	global.Log.Info("属性保存成功", zap.String("attrName", req.AttrName))
	res.Success(c, nil)
}

// SaleAttrSave 新建或更新销售属性及属性值
func (a *Attr) SaleAttrSave(c *gin.Context) {
	var req models.AttrSaveRequest
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

	if err := models.SaveSaleAttrInfo(&req); err != nil {
		global.Log.Error("models.SaveSaleAttrInfo() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "销售属性保存失败")
		return
	}
	global.Log.Info("销售属性保存成功", zap.String("attrName", req.AttrName))
	res.Success(c, nil)
}
