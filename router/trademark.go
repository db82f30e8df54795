package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) TrademarkRouter() {
	trademarkRouter := r.Group("baseTrademark").Use(middleware.JwtAuth())
	trademarkApi := api.AppGroupApp.TrademarkApi
	trademarkRouter.GET(":pageNum/:pageSize", trademarkApi.TrademarkList)
	trademarkRouter.GET("getTrademarkList", trademarkApi.TrademarkAll)
	trademarkRouter.POST("save", trademarkApi.TrademarkCreate)
	trademarkRouter.PUT("update", trademarkApi.TrademarkUpdate)
	trademarkRouter.DELETE("remove/:id", trademarkApi.TrademarkDelete)
}
