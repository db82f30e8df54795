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

type PermissionSaveRequest struct {
	ID     uint   `json:"id"`
	Name   string `json:"name" validate:"required,min=1,max=64"`
	Pid    uint   `json:"pid"`
	Level  int    `json:"level"`
	Code   string `json:"code"`
	ToCode string `json:"toCode"`
	Type   int    `json:"type"`
}

// PermissionCreate 创建菜单权限
func (p *Permission) PermissionCreate(c *gin.Context) {
	var req PermissionSaveRequest
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

	menu := models.MenuModel{
		Name:   req.Name,
		Pid:    req.Pid,
		Level:  req.Level,
		Code:   req.Code,
		ToCode: req.ToCode,
		Type:   req.Type,
	}
	if err := menu.Create(); err != nil {
		global.Log.Error("menu.Create() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "菜单创建失败")
		return
	}
	global.Log.Info("菜单创建成功", zap.String("name", req.Name))
	res.Success(c, menu)
}

// PermissionUpdate 更新菜单权限
func (p *Permission) PermissionUpdate(c *gin.Context) {
	var req PermissionSaveRequest
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

	menu := models.MenuModel{
		MODEL:  models.MODEL{ID: req.ID},
		Name:   req.Name,
		Pid:    req.Pid,
		Level:  req.Level,
		Code:   req.Code,
		ToCode: req.ToCode,
		Type:   req.Type,
	}
	if err := menu.Update(); err != nil {
		global.Log.Error("menu.Update() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "菜单更新失败")
		return
	}
	global.Log.Info("菜单更新成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
