package permission

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type PermissionAssignRequest struct {
	RoleID  uint   `json:"roleId" validate:"required,gt=0"`
	MenuIDs []uint `json:"permissionIds" validate:"required"`
}

// PermissionAssign 为角色分配菜单权限
func (p *Permission) PermissionAssign(c *gin.Context) {
	var req PermissionAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		global.Log.Error("c.ShouldBindJSON() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	err := utils.Validate(req)
	if err != nil {
		global.Log.Error("utils.Validate() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, utils.FormatValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := models.AssignMenusToRole(req.RoleID, req.MenuIDs); err != nil {
		global.Log.Error("models.AssignMenusToRole() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "角色授权失败")
		return
	}
	global.Log.Info("角色授权成功", zap.Uint("roleId", req.RoleID))
	res.Success(c, nil)
}
