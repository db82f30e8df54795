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

// UserList 分页查询用户列表，支持按账号或昵称搜索
func (u *User) UserList(c *gin.Context) {
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

	keyword := c.Query("username")
	users, total, err := models.FindUserList(page, keyword)
	if err != nil {
		global.Log.Error("models.FindUserList() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询用户列表失败")
		return
	}
	res.SuccessWithPage(c, users, total, page.PageNum, page.PageSize)
}
