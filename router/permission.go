package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) PermissionRouter() {
	permissionRouter := r.Group("permission").Use(middleware.JwtAuth())
	permissionApi := api.AppGroupApp.PermissionApi
	permissionRouter.GET("", permissionApi.PermissionTree)
	permissionRouter.GET("toAssign/:id", permissionApi.PermissionToAssign)
	permissionRouter.POST("doAssignAcl", permissionApi.PermissionAssign)
	permissionRouter.POST("save", permissionApi.PermissionCreate)
	permissionRouter.PUT("update", permissionApi.PermissionUpdate)
	permissionRouter.DELETE(":id", permissionApi.PermissionDelete)
}
