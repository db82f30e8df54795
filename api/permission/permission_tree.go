package permission

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionTree 查询完整菜单权限树
func (p *Permission) PermissionTree(c *gin.Context) {
	tree, err := models.FindMenuTree()
	if err != nil {
		global.Log.Error("models.FindMenuTree() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询菜单树失败")
		return
	}
	res.Success(c, tree)
}

// PermissionToAssign 查询带选中状态的菜单权限树，用于角色授权
func (p *Permission) PermissionToAssign(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	tree, err := models.MenuTreeForRole(req.ID)
	if err != nil {
		global.Log.Error("models.MenuTreeForRole() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询角色权限失败")
		return
	}
	res.Success(c, tree)
}
