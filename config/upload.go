package config

type Upload struct {
	Path string `mapstructure:"path"` // 本地存储目录
	Size int    `mapstructure:"size"` // 单张图片大小上限（MB）
	Host string `mapstructure:"host"` // 拼接图片url的对外地址
}
