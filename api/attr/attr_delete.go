package attr

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AttrDelete 删除属性及其属性值
func (a *Attr) AttrDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.AttrDelete(req.ID); err != nil {
		global.Log.Error("models.AttrDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "属性删除失败")
		return
	}
	global.Log.Info("属性删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
