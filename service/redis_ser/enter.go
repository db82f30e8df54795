package redis_ser

const (
	Prefix     = "mall:"
	LoginToken = "login_token:"
)

func GetRedisKey(key string) string {
	return Prefix + key
}
