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

// RoleList 分页查询角色列表，支持按名称搜索
func (r *Role) RoleList(c *gin.Context) {
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

	keyword := c.Query("roleName")
	roles, total, err := models.FindRoleList(page, keyword)
	if err != nil {
		global.Log.Error("models.FindRoleList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询角色列表失败")
		return
	}
	res.SuccessWithPage(c, roles, total, page.PageNum, page.PageSize)
}

// RoleAll 查询全部角色，供用户授权下拉使用
func (r *Role) RoleAll(c *gin.Context) {
	roles, err := models.FindAllRoles()
	if err != nil {
		global.Log.Error("models.FindAllRoles() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询角色失败")
		return
	}
	res.Success(c, roles)
}
