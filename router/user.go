package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) UserRouter() {
	userRouter := r.Group("user").Use(middleware.JwtAuth())
	userApi := api.AppGroupApp.UserApi
	userRouter.GET("list/:pageNum/:pageSize", userApi.UserList)
	userRouter.POST("save", userApi.UserCreate)
	userRouter.PUT("update", userApi.UserUpdate)
	userRouter.GET("toAssign/:id", userApi.UserToAssign)
	userRouter.POST("doAssignRole", userApi.UserAssign)
	userRouter.DELETE("remove/:id", userApi.UserDelete)
	userRouter.DELETE("batchRemove", userApi.UserBatchDelete)
}
