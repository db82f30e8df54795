package attr

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AttrInfoListRequest struct {
	Category1ID uint `uri:"category1Id" validate:"required,gt=0"`
	Category2ID uint `uri:"category2Id" validate:"required,gt=0"`
	Category3ID uint `uri:"category3Id" validate:"required,gt=0"`
}

// AttrInfoList 查询三级分类下的平台属性
func (a *Attr) AttrInfoList(c *gin.Context) {
	var req AttrInfoListRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	attrs, err := models.FindAttrInfoList(req.Category3ID)
	if err != nil {
		global.Log.Error("models.FindAttrInfoList() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "查询属性列表失败")
		return
	}
	res.Success(c, attrs)
}

// SaleAttrList 查询全部销售属性
func (a *Attr) SaleAttrList(c *gin.Context) {
	attrs, err := models.FindSaleAttrList()
	if err != nil {
		global.Log.Error("models.FindSaleAttrList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询销售属性失败")
		return
	}
	res.Success(c, attrs)
}
