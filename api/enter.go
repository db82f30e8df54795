package api

import (
	"mall/api/attr"
	"mall/api/category"
	"mall/api/image"
	"mall/api/index"
	"mall/api/permission"
	"mall/api/role"
	"mall/api/sku"
	"mall/api/spu"
	"mall/api/trademark"
	"mall/api/user"
)

type AppGroup struct {
	IndexApi      index.Index
	CategoryApi   category.Category
	AttrApi       attr.Attr
	TrademarkApi  trademark.Trademark
	SpuApi        spu.Spu
	SkuApi        sku.Sku
	PermissionApi permission.Permission
	RoleApi       role.Role
	UserApi       user.User
	ImageApi      image.Image
}

var AppGroupApp = new(AppGroup)
