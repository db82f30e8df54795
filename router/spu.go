package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) SpuRouter() {
	spuRouter := r.Group("spu").Use(middleware.JwtAuth())
	spuApi := api.AppGroupApp.SpuApi
	spuRouter.GET("list/:pageNum/:pageSize", spuApi.SpuList)
	spuRouter.POST("saveSpuInfo", spuApi.SpuSave)
	spuRouter.POST("updateSpuInfo", spuApi.SpuUpdate)
	spuRouter.GET("spuImageList/:id", spuApi.SpuImageList)
	spuRouter.GET("spuSaleAttrList/:id", spuApi.SpuSaleAttrList)
	spuRouter.DELETE("deleteSpu/:id", spuApi.SpuDelete)
}
