package category

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryDelete 删除分类及其子分类
func (cg *Category) CategoryDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.CategoryDelete(req.ID); err != nil {
		global.Log.Error("models.CategoryDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "分类删除失败")
		return
	}
	global.Log.Info("分类删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
