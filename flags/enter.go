package flags

import (
	"os"

	"mall/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func Newflags() {
	var app = cli.NewApp()
	app.Name = "商城后台管理"
	app.Commands = []*cli.Command{
		{
			Name:    "database",
			Aliases: []string{"db"},
			Usage:   "建表",
			Action:  DB,
		},
		{
			Name:    "user",
			Aliases: []string{"u"},
			Usage:   "创建管理员用户",
			Action:  User,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "username",
					Aliases: []string{"u"},
					Usage:   "登录账号",
					Value:   "admin",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "登录密码",
					Value:   "111111",
				},
				&cli.StringFlag{
					Name:    "name",
					Aliases: []string{"n"},
					Usage:   "用户昵称",
					Value:   "超级管理员",
				},
			},
		},
		{
			Name:    "export-mysql",
			Aliases: []string{"e-m"},
			Usage:   "导出数据库",
			Action:  MysqlExport,
		},
		{
			Name:    "import-mysql",
			Aliases: []string{"i-m"},
			Usage:   "导入数据库",
			Action:  MysqlImport,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name: "path",
				},
			},
		},
	}
	if len(os.Args) > 1 {
		err := app.Run(os.Args)
		if err != nil {
			global.Log.Fatal("初始化命令失败", zap.String("error", err.Error()))
		}
		os.Exit(0)

	}
}
