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

// SkuList 分页查询SKU列表
func (s *Sku) SkuList(c *gin.Context) {
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

	skus, total, err := models.FindSkuList(page)
	if err != nil {
		global.Log.Error("models.FindSkuList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询SKU列表失败")
		return
	}
	res.SuccessWithPage(c, skus, total, page.PageNum, page.PageSize)
}

// SkuFindBySpu 查询SPU下全部SKU
func (s *Sku) SkuFindBySpu(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	skus, err := models.FindSkuBySpu(req.ID)
	if err != nil {
		global.Log.Error("models.FindSkuBySpu() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "查询SKU失败")
		return
	}
	res.Success(c, skus)
}

// SkuInfo 查询SKU详情
func (s *Sku) SkuInfo(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	sku, err := models.FindSkuInfo(req.ID)
	if err != nil {
		global.Log.Error("models.FindSkuInfo() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "查询SKU详情失败")
		return
	}
	res.Success(c, sku)
}
