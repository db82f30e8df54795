package flags

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"mall/global"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// MysqlImport 从SQL文件导入数据库
func MysqlImport(c *cli.Context) (err error) {
	mysql := global.Config.Mysql
	sqlPath := c.String("path")
	if sqlPath == "" {
		return fmt.Errorf("请通过--path指定SQL文件路径")
	}
	if _, err := os.Stat(sqlPath); err != nil {
		return fmt.Errorf("SQL文件不存在: %s", sqlPath)
	}

	cmder := fmt.Sprintf("mysql -h%s -P%d -u%s -p%s %s < %s",
		mysql.Host, mysql.Port, mysql.User, mysql.Password, mysql.DB, sqlPath)

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/C", cmder)
	} else {
		cmd = exec.Command("sh", "-c", cmder)
	}

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err != nil {
		global.Log.Error("导入数据库失败",
			zap.String("error", err.Error()),
			zap.String("stderr", stderr.String()),
		)
		return fmt.Errorf("导入数据库失败: %v, stderr: %s", err, stderr.String())
	}

	global.Log.Info("数据库导入成功",
		zap.String("文件路径", sqlPath),
		zap.String("数据库", mysql.DB),
	)
	return nil
}
