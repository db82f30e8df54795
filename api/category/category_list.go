package category

import (
	"mall/global"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryFirst 查询全部一级分类
func (cg *Category) CategoryFirst(c *gin.Context) {
	categories, err := models.FindCategoryByLevel(models.CategoryLevelFirst, 0)
	if err != nil {
		global.Log.Error("models.FindCategoryByLevel() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询一级分类失败")
		return
	}
	res.Success(c, categories)
}

// CategorySecond 查询一级分类下的二级分类
func (cg *Category) CategorySecond(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	categories, err := models.FindCategoryByLevel(models.CategoryLevelSecond, req.ID)
	if err != nil {
		global.Log.Error("models.FindCategoryByLevel() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询二级分类失败")
		return
	}
	res.Success(c, categories)
}

// CategoryThird 查询二级分类下的三级分类
func (cg *Category) CategoryThird(c *gin.Context) {
	var req models.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		global.Log.Error("c.ShouldBindUri() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}
	categories, err := models.FindCategoryByLevel(models.CategoryLevelThird, req.ID)
	if err != nil {
		global.Log.Error("models.FindCategoryByLevel() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询三级分类失败")
		return
	}
	res.Success(c, categories)
}
