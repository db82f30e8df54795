package router

import (
	"mall/api"
	"mall/middleware"
)

func (r *RouterGroup) ImageRouter() {
	imageApi := api.AppGroupApp.ImageApi
	uploadRouter := r.Group("fileUpload").Use(middleware.JwtAuth())
	uploadRouter.POST("", imageApi.ImageUpload)
	uploadRouter.GET("list/:pageNum/:pageSize", imageApi.ImageList)
	uploadRouter.DELETE("delete/:id", imageApi.ImageDelete)
	fileRouter := r.Group("file").Use(middleware.JwtAuth())
	fileRouter.POST("addImageRelation", imageApi.ImageRelationAdd)
	fileRouter.POST("removeImageRelation", imageApi.ImageRelationRemove)
}
