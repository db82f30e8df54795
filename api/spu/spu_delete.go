package spu

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SpuDelete 删除SPU及其名下SKU
func (s *Spu) SpuDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.SpuDelete(req.ID); err != nil {
		global.Log.Error("models.SpuDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "SPU删除失败")
		return
	}
	global.Log.Info("SPU删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
