package trademark

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrademarkDelete 删除品牌
func (t *Trademark) TrademarkDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.TrademarkDelete(req.ID); err != nil {
		global.Log.Error("models.TrademarkDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "品牌删除失败")
		return
	}
	global.Log.Info("品牌删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
