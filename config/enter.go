package config

import (
	"strconv"
)

type Config struct {
	Mysql      Mysql      `mapstructure:"mysql"`
	Redis      Redis      `mapstructure:"redis"`
	Log        Log        `mapstructure:"log"`
	System     System     `mapstructure:"system"`
	Jwt        Jwt        `mapstructure:"jwt"`
	Captcha    Captcha    `mapstructure:"captcha"`
	Upload     Upload     `mapstructure:"upload"`
	TencentCos TencentCos `mapstructure:"tencent_cos"`
}

type Mysql struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

func (m Mysql) Dsn() string {
	return m.User + ":" + m.Password + "@tcp(" + m.Host + ":" + strconv.Itoa(m.Port) + ")/" + m.DB + "?charset=utf8mb4&parseTime=True&loc=Local"
}

func (m Mysql) DSNWithoutDB() string {
	return m.User + ":" + m.Password + "@tcp(" + m.Host + ":" + strconv.Itoa(m.Port) + ")/" + "?charset=utf8mb4&parseTime=True&loc=Local"
}
