package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) CategoryRouter() {
	categoryRouter := r.Group("category").Use(middleware.JwtAuth())
	categoryApi := api.AppGroupApp.CategoryApi
	categoryRouter.GET("getCategory1", categoryApi.CategoryFirst)
	categoryRouter.GET("getCategory2/:id", categoryApi.CategorySecond)
	categoryRouter.GET("getCategory3/:id", categoryApi.CategoryThird)
	categoryRouter.POST("save", categoryApi.CategoryCreate)
	categoryRouter.PUT("update", categoryApi.CategoryUpdate)
	categoryRouter.DELETE(":id", categoryApi.CategoryDelete)
}
