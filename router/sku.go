package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) SkuRouter() {
	skuRouter := r.Group("sku").Use(middleware.JwtAuth())
	skuApi := api.AppGroupApp.SkuApi
	skuRouter.GET("list/:pageNum/:pageSize", skuApi.SkuList)
	skuRouter.GET("findBySpuId/:id", skuApi.SkuFindBySpu)
	skuRouter.GET("getSkuInfo/:id", skuApi.SkuInfo)
	skuRouter.POST("saveSkuInfo", skuApi.SkuSave)
	skuRouter.PUT("updateSkuInfo", skuApi.SkuSave)
	skuRouter.GET("onSale/:id", skuApi.SkuOnSale)
	skuRouter.GET("cancelSale/:id", skuApi.SkuCancelSale)
	skuRouter.DELETE("deleteSku/:id", skuApi.SkuDelete)
}
