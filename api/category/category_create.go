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

type CategoryCreateRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=64"`
	Pid   uint   `json:"pid"`
	Level int    `json:"level" validate:"required,gte=1,lte=3"`
}

// CategoryCreate 创建分类
func (cg *Category) CategoryCreate(c *gin.Context) {
	var req CategoryCreateRequest
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

	category := models.CategoryModel{
		Name:  req.Name,
		Pid:   req.Pid,
		Level: req.Level,
	}
	if err := category.Create(); err != nil {
		global.Log.Error("category.Create() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "分类创建失败")
		return
	}
	global.Log.Info("分类创建成功", zap.String("name", req.Name))
	res.Success(c, category)
}
