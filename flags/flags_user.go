package flags

import (
	"mall/global"
	"mall/models"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func User(c *cli.Context) error {
	username := c.String("username")
	password := c.String("password")
	name := c.String("name")

	req := models.UserSaveRequest{
		Username: username,
		Password: password,
		Name:     name,
	}
	if err := models.SaveUser(&req); err != nil {
		global.Log.Error("用户创建失败",
			zap.String("error", err.Error()),
		)
		return err
	}

	global.Log.Infof("用户%s创建成功,username:%s", name, username)
	return nil
}
