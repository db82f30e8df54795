package permission

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionDelete 删除菜单权限及其子节点
func (p *Permission) PermissionDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.MenuDelete(req.ID); err != nil {
		global.Log.Error("models.MenuDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "菜单删除失败")
		return
	}
	global.Log.Info("菜单删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
