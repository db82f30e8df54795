package user

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type UserToAssignResponse struct {
	AllRoles  []models.RoleModel `json:"allRolesList"`
	UserRoles []models.RoleModel `json:"assignRoles"`
}

// UserToAssign 查询全部角色及用户已拥有的角色
func (u *User) UserToAssign(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	allRoles, err := models.FindAllRoles()
	if err != nil {
		global.Log.Error("models.FindAllRoles() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询角色失败")
		return
	}
	userRoles, err := models.FindRolesByUser(req.ID)
	if err != nil {
		global.Log.Error("models.FindRolesByUser() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询用户角色失败")
		return
	}

	res.Success(c, UserToAssignResponse{
		AllRoles:  allRoles,
		UserRoles: userRoles,
	})
}

type UserAssignRequest struct {
	UserID  uint   `json:"userId" validate:"required,gt=0"`
	RoleIDs []uint `json:"roleIds" validate:"required"`
}

// UserAssign 为用户分配角色
func (u *User) UserAssign(c *gin.Context) {
	var req UserAssignRequest
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

	if err := models.AssignRolesToUser(req.UserID, req.RoleIDs); err != nil {
		global.Log.Error("models.AssignRolesToUser() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "用户授权失败")
		return
	}
	global.Log.Info("用户授权成功", zap.Uint("userId", req.UserID))
	res.Success(c, nil)
}
