package middleware

import (
	"net/http"
	"strings"

	"mall/global"
	"mall/models/res"
	"mall/service/redis_ser"
	"mall/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExtractToken 从请求头中提取token，兼容token头和Authorization Bearer两种写法
func ExtractToken(c *gin.Context) string {
	token := c.Request.Header.Get("token")
	if token == "" {
		token = c.Request.Header.Get("Authorization")
	}
	return strings.TrimPrefix(token, "Bearer ")
}

// JwtAuth 中间件，负责验证 Token 并将用户信息存储到上下文
func JwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c)
		if tokenString == "" {
			res.HttpError(c, http.StatusUnauthorized, res.TokenMissing, "缺少token")
			c.Abort()
			return
		}

		// 检查token会话是否还在缓存中（登出或超时后失效）
		ok, err := redis_ser.HasLoginToken(tokenString)
		if err != nil {
			global.Log.Error("redis_ser.HasLoginToken() failed", zap.String("error", err.Error()))
			res.HttpError(c, http.StatusInternalServerError, res.ServerError, "服务器错误")
			c.Abort()
			return
		}
		if !ok {
			res.HttpError(c, http.StatusUnauthorized, res.TokenExpired, "token已过期")
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			res.HttpError(c, http.StatusUnauthorized, res.TokenInvalid, err.Error())
			c.Abort()
			return
		}

		// 将用户信息保存到上下文中，方便后续使用
		c.Set("claims", claims)

		c.Next()
	}
}

// GetClaims 从上下文中取当前登录用户信息
func GetClaims(c *gin.Context) (*utils.CustomClaims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*utils.CustomClaims)
	return claims, ok
}
