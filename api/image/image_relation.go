package image

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ImageRelationRequest struct {
	URL  string `json:"url" validate:"required,min=1"`
	Type int    `json:"type" validate:"required,gte=1,lte=4"`
	Tid  uint   `json:"tid" validate:"required,gt=0"`
}

// ImageRelationAdd 为业务对象绑定图片并增加引用计数
func (i *Image) ImageRelationAdd(c *gin.Context) {
	var req ImageRelationRequest
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

	if err := models.AttachImage(req.URL, req.Type, req.Tid); err != nil {
		global.Log.Error("models.AttachImage() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "图片关联失败")
		return
	}
	global.Log.Info("图片关联成功", zap.String("url", req.URL), zap.Int("type", req.Type))
	res.Success(c, nil)
}

// ImageRelationRemove 解除业务对象的图片绑定并减少引用计数
func (i *Image) ImageRelationRemove(c *gin.Context) {
	var req ImageRelationRequest
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

	if err := models.DetachImage(req.URL, req.Type, req.Tid); err != nil {
		global.Log.Error("models.DetachImage() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "图片关联解除失败")
		return
	}
	global.Log.Info("图片关联解除成功", zap.String("url", req.URL), zap.Int("type", req.Type))
	res.Success(c, nil)
}
