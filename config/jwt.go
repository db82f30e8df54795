package config

type Jwt struct {
	Secret  string `mapstructure:"secret"`
	Expires int    `mapstructure:"expires"` // token有效期，单位小时
	Issuer  string `mapstructure:"issuer"`
}
