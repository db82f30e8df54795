package sku

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SkuOnSale 上架SKU
func (s *Sku) SkuOnSale(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.SkuOnSale(req.ID); err != nil {
		global.Log.Error("models.SkuOnSale() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "SKU上架失败")
		return
	}
	global.Log.Info("SKU上架成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}

// SkuCancelSale 下架SKU
func (s *Sku) SkuCancelSale(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.SkuCancelSale(req.ID); err != nil {
		global.Log.Error("models.SkuCancelSale() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "SKU下架失败")
		return
	}
	global.Log.Info("SKU下架成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
