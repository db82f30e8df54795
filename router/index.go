package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) IndexRouter() {
	indexRouter := r.Group("index")
	indexApi := api.AppGroupApp.IndexApi
	indexRouter.GET("captcha", indexApi.CaptchaCreate)
	indexRouter.POST("login", indexApi.IndexLogin)
	indexRouter.POST("logout", middleware.JwtAuth(), indexApi.IndexLogout)
	indexRouter.GET("info", middleware.JwtAuth(), indexApi.IndexInfo)
}
