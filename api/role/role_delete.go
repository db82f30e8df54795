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

// RoleDelete 删除角色
func (r *Role) RoleDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.RoleDelete(req.ID); err != nil {
		global.Log.Error("models.RoleDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "角色删除失败")
		return
	}
	global.Log.Info("角色删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}

type RoleBatchDeleteRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

// RoleBatchDelete 批量删除角色
func (r *Role) RoleBatchDelete(c *gin.Context) {
	var req RoleBatchDeleteRequest
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

	if err := models.RoleBatchDelete(req.IDs); err != nil {
		global.Log.Error("models.RoleBatchDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "角色批量删除失败")
		return
	}
	global.Log.Info("角色批量删除成功", zap.Int("count", len(req.IDs)))
	res.Success(c, nil)
}
