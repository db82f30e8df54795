package flags

import (
	"mall/global"
	"mall/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func DB(c *cli.Context) (err error) {
	err = global.DB.Set("gorm:table_options", "ENGINE=InnoDB").
		AutoMigrate(&models.UserModel{},
			&models.RoleModel{},
			&models.RoleMenuModel{},
			&models.UserRoleModel{},
			&models.MenuModel{},
			&models.CategoryModel{},
			&models.TrademarkModel{},
			&models.AttrModel{},
			&models.AttrValueModel{},
			&models.SpuModel{},
			&models.SpuImageModel{},
			&models.SpuAttrModel{},
			&models.SpuAttrValueModel{},
			&models.SkuModel{},
			&models.SkuAttrValueModel{},
			&models.ImageModel{},
			&models.ImageRelationModel{},
		)
	if err != nil {
		global.Log.Error("生成数据库表结构失败", zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("生成数据库表结构成功", zap.String("method", "DB"), zap.String("path", "flags/flags_db.go"))
	return nil

}
