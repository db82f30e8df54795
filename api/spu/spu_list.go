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

type SpuListQuery struct {
	Category3ID uint `form:"category3Id" validate:"required,gt=0"`
}

// SpuList 分页查询三级分类下的SPU
func (s *Spu) SpuList(c *gin.Context) {
	var page models.PageRequest
	if err := c.ShouldBindUri(&page); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	var query SpuListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		global.Log.Error("c.ShouldBindQuery() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	err := utils.Validate(page)
	if err == nil {
		err = utils.Validate(query)
	}
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	spus, total, err := models.FindSpuList(query.Category3ID, page)
	if err != nil {
		global.Log.Error("models.FindSpuList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询SPU列表失败")
		return
	}
	res.SuccessWithPage(c, spus, total, page.PageNum, page.PageSize)
}

// SpuImageList 查询SPU的图片列表
func (s *Spu) SpuImageList(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	images, err := models.FindSpuImageList(req.ID)
	if err != nil {
		global.Log.Error("models.FindSpuImageList() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "查询SPU图片失败")
		return
	}
	res.Success(c, images)
}

// SpuSaleAttrList 查询SPU的销售属性
func (s *Spu) SpuSaleAttrList(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	saleAttrs, err := models.FindSpuSaleAttrList(req.ID)
	if err != nil {
		global.Log.Error("models.FindSpuSaleAttrList() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "查询SPU销售属性失败")
		return
	}
	res.Success(c, saleAttrs)
}
