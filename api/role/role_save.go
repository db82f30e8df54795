package role

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type RoleSaveRequest struct {
	ID       uint   `json:"id"`
	RoleName string `json:"roleName" validate:"required,min=1,max=64"`
	Remark   string `json:"remark"`
}

// RoleCreate 创建角色
func (r *Role) RoleCreate(c *gin.Context) {
	var req RoleSaveRequest
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

	role := models.RoleModel{
		RoleName: req.RoleName,
		Remark:   req.Remark,
	}
	if err := role.Create(); err != nil {
		global.Log.Error("role.Create() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "角色创建失败")
		return
	}
	global.Log.Info("角色创建成功", zap.String("roleName", req.RoleName))
	res.Success(c, role)
}

// RoleUpdate 更新角色
func (r *Role) RoleUpdate(c *gin.Context) {
	var req RoleSaveRequest
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

	role := models.RoleModel{
		MODEL:    models.MODEL{ID: req.ID},
		RoleName: req.RoleName,
		Remark:   req.Remark,
	}
	if err := role.Update(); err != nil {
		global.Log.Error("role.Update() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "角色更新失败")
		return
	}
	global.Log.Info("角色更新成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
