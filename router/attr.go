package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) AttrRouter() {
	attrRouter := r.Group("attr").Use(middleware.JwtAuth())
	attrApi := api.AppGroupApp.AttrApi
	attrRouter.POST("saveAttrInfo", attrApi.AttrSave)
	attrRouter.POST("saveSaleAttrInfo", attrApi.SaleAttrSave)
	attrRouter.GET("attrInfoList/:category1Id/:category2Id/:category3Id", attrApi.AttrInfoList)
	attrRouter.GET("baseSaleAttrList", attrApi.SaleAttrList)
	attrRouter.DELETE("deleteAttr/:id", attrApi.AttrDelete)
}
