package sku

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SkuDelete 删除SKU
func (s *Sku) SkuDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.SkuDelete(req.ID); err != nil {
		global.Log.Error("models.SkuDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "SKU删除失败")
		return
	}
	global.Log.Info("SKU删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
