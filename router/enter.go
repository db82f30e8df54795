package router

import (
	"net/http"

	"mall/core"
	"mall/global"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	//设置gin模式
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	//将指定目录下的文件提供给客户端
	//"uploads" 是URL路径前缀，http.Dir("uploads")是实际文件系统中存储文件的目录
	router.StaticFS("uploads", http.Dir(global.Config.Upload.Path))
	//创建路由组
	apiRouterGroup := router.Group("api")
	routerGroupApp := RouterGroup{apiRouterGroup}
	routerGroupApp.IndexRouter()
	routerGroupApp.CategoryRouter()
	routerGroupApp.AttrRouter()
	routerGroupApp.TrademarkRouter()
	routerGroupApp.SpuRouter()
	routerGroupApp.SkuRouter()
	routerGroupApp.PermissionRouter()
	routerGroupApp.RoleRouter()
	routerGroupApp.UserRouter()
	routerGroupApp.ImageRouter()
	return router
}
