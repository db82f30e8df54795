package redis_ser

import (
	"context"
	"time"

	"mall/global"
)

// SetLoginToken 登录成功后缓存token，有效期与jwt一致
func SetLoginToken(token string) error {
	ttl := time.Duration(global.Config.Jwt.Expires) * time.Hour
	return global.Redis.Set(context.Background(), GetRedisKey(LoginToken+token), "enable", ttl).Err()
}

// HasLoginToken 判断token会话是否存在
func HasLoginToken(token string) (bool, error) {
	n, err := global.Redis.Exists(context.Background(), GetRedisKey(LoginToken+token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DelLoginToken 登出时删除token会话
func DelLoginToken(token string) error {
	return global.Redis.Del(context.Background(), GetRedisKey(LoginToken+token)).Err()
}
