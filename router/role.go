package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) RoleRouter() {
	roleRouter := r.Group("role").Use(middleware.JwtAuth())
	roleApi := api.AppGroupApp.RoleApi
	roleRouter.GET("list/:pageNum/:pageSize", roleApi.RoleList)
	roleRouter.GET("all", roleApi.RoleAll)
	roleRouter.POST("save", roleApi.RoleCreate)
	roleRouter.PUT("update", roleApi.RoleUpdate)
	roleRouter.DELETE("remove/:id", roleApi.RoleDelete)
	roleRouter.DELETE("batchRemove", roleApi.RoleBatchDelete)
}
