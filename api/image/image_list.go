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

// ImageList 分页查询图片列表
func (i *Image) ImageList(c *gin.Context) {
	var page models.PageRequest
	if err := c.ShouldBindUri(&page); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	err := utils.Validate(page)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	images, total, err := models.FindImageList(page)
	if err != nil {
		global.Log.Error("models.FindImageList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询图片列表失败")
		return
	}
	res.SuccessWithPage(c, images, total, page.PageNum, page.PageSize)
}
