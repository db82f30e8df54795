package trademark

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type TrademarkSaveRequest struct {
	ID      uint   `json:"id"`
	TmName  string `json:"tmName" validate:"required,min=1,max=64"`
	LogoURL string `json:"logoUrl" validate:"required,min=1"`
}

// TrademarkCreate 创建品牌
func (t *Trademark) TrademarkCreate(c *gin.Context) {
	var req TrademarkSaveRequest
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

	trademark := models.TrademarkModel{
		TmName:  req.TmName,
		LogoURL: req.LogoURL,
	}
	if err := trademark.Create(); err != nil {
		global.Log.Error("trademark.Create() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "品牌创建失败")
		return
	}
	global.Log.Info("品牌创建成功", zap.String("tmName", req.TmName))
	res.Success(c, trademark)
}

// TrademarkUpdate 更新品牌
func (t *Trademark) TrademarkUpdate(c *gin.Context) {
	var req TrademarkSaveRequest
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

	trademark := models.TrademarkModel{
		MODEL:   models.MODEL{ID: req.ID},
		TmName:  req.TmName,
		LogoURL: req.LogoURL,
	}
	if err := trademark.Update(); err != nil {
		global.Log.Error("trademark.Update() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "品牌更新失败")
		return
	}
	global.Log.Info("品牌更新成功", zap.Uint("id", req.ID))
	res.Success(c, nil)
}
