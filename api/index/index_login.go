package index

import (
	"mall/global"
	"mall/models"
	"mall/models/res"
	"mall/service/redis_ser"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type IndexLoginRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Password  string `json:"password" validate:"required,min=6,max=50"`
	Captcha   string `json:"captcha"`
	CaptchaId string `json:"captcha_id"`
}

type IndexLoginResponse struct {
	Token string `json:"token"`
}

// IndexLogin 后台登录，成功后下发token并写入会话缓存
func (i *Index) IndexLogin(c *gin.Context) {
	var req IndexLoginRequest
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

	if global.Config.Captcha.Open {
		if req.Captcha == "" || req.CaptchaId == "" || !Store.Verify(req.CaptchaId, req.Captcha, true) {
			res.Error(c, res.CaptchaError, "验证码错误")
			return
		}
	}

	user, err := models.VerifyLogin(req.Username, req.Password)
	if err != nil {
		global.Log.Error("models.VerifyLogin() failed", zap.String("error", err.Error()))
		res.Error(c, res.PasswordError, "用户名或密码错误")
		return
	}

	token, err := utils.GenerateToken(utils.PayLoad{
		Username: user.Username,
		UserID:   user.ID,
	})
	if err != nil {
		global.Log.Error("utils.GenerateToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "生成token失败")
		return
	}

	if err := redis_ser.SetLoginToken(token); err != nil {
		global.Log.Error("redis_ser.SetLoginToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "缓存登录会话失败")
		return
	}

	global.Log.Info("用户登录成功", zap.String("username", user.Username))
	res.Success(c, IndexLoginResponse{Token: token})
}
