package image

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageDelete 删除图片，仍被引用的图片会被拒绝
func (i *Image) ImageDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.ImageDelete(req.ID); err != nil {
		global.Log.Error("models.ImageDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "图片删除失败")
		return
	}
	global.Log.Info("图片删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
