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

// UserCreate 创建用户
func (u *User) UserCreate(c *gin.Context) {
	var req models.UserSaveRequest
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

	req.ID = 0
	if err := models.SaveUser(&req); err != nil {
		global.Log.Error("models.SaveUser() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "用户创建失败")
		return
	}
	global.Log.Info("用户创建成功", zap.String("username", req.Username))
	res.Success(c, nil)
}

// UserUpdate 更新用户
func (u *User) UserUpdate(c *gin.Context) {
	var req models.UserSaveRequest
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
	if req.ID == 0 {
		res.Error(c, res.MissingParameter, "没有携带id！")
		return
	}

	if err := models.SaveUser(&req); err != nil {
		global.Log.Error("models.SaveUser() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "用户更新失败")
		return
	}
	global.Log.Info("用户更新成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
