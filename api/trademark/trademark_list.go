package trademark

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TrademarkList 分页查询品牌列表
func (t *Trademark) TrademarkList(c *gin.Context) {
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

	trademarks, total, err := models.FindTrademarkList(page)
	if err != nil {
		global.Log.Error("models.FindTrademarkList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询品牌列表失败")
		return
	}
	res.SuccessWithPage(c, trademarks, total, page.PageNum, page.PageSize)
}

// TrademarkAll 查询全部品牌
func (t *Trademark) TrademarkAll(c *gin.Context) {
	trademarks, err := models.FindAllTrademarks()
	if err != nil {
		global.Log.Error("models.FindAllTrademarks() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询品牌失败")
		return
	}
	res.Success(c, trademarks)
}
