package category

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CategoryUpdateRequest struct {
	ID   uint   `json:"id" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,min=1,max=64"`
}

// CategoryUpdate 修改分类名称
func (cg *Category) CategoryUpdate(c *gin.Context) {
	var req CategoryUpdateRequest
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

	var category models.CategoryModel
	if err := category.Update(req.ID, req.Name); err != nil {
		global.Log.Error("category.Update() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "分类更新失败")
		return
	}
	global.Log.Info("分类更新成功", zap.Uint("id", req.ID), zap.String("name", req.Name))
	res.Success(c, category)
}
