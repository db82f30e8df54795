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

// UserDelete 删除用户
func (u *User) UserDelete(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	if err := models.UserDelete(req.ID); err != nil {
		global.Log.Error("models.UserDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "用户删除失败")
		return
	}
	global.Log.Info("用户删除成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}

type UserBatchDeleteRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

// UserBatchDelete 批量删除用户
func (u *User) UserBatchDelete(c *gin.Context) {
	var req UserBatchDeleteRequest
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

	if err := models.UserBatchDelete(req.IDs); err != nil {
		global.Log.Error("models.UserBatchDelete() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "用户批量删除失败")
		return
	}
	global.Log.Info("用户批量删除成功", zap.Int("count", len(req.IDs)))
	res.Success(c, nil)
}
