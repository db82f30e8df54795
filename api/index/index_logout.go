package index

import (
	"mall/global"
	"mall/middleware"
	"mall/models/res"
	"mall/service/redis_ser"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IndexLogout 登出，删除会话缓存使token立即失效
func (i *Index) IndexLogout(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		res.Error(c, res.TokenMissing, "缺少token")
		return
	}

	if err := redis_ser.DelLoginToken(token); err != nil {
		global.Log.Error("redis_ser.DelLoginToken() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "登出失败")
		return
	}

	global.Log.Info("用户登出成功", zap.String("path", c.Request.URL.Path))
	res.SuccessWithMsg(c, nil, "登出成功")
}
