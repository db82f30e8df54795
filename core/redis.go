package core

import (
	"context"

	"mall/global"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis 初始化Redis
func InitRedis() *redis.Client {
	redisConf := global.Config.Redis

	opts := &redis.Options{
		Addr:     redisConf.Addr(),
		Password: redisConf.Password,
		DB:       redisConf.DB,
	}
	rdb := redis.NewClient(opts)
	// 测试连接
	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		global.Log.Fatal("Redis连接失败", zap.String("addr", redisConf.Addr()), zap.String("error", err.Error()))
		return nil
	}
	global.Log.Info("Redis连接成功", zap.String("method", "InitRedis"), zap.String("path", "core/redis.go"))
	return rdb
}
