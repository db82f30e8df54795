package config

type Captcha struct {
	Open      bool `mapstructure:"open"` // 登录是否校验验证码
	KeyLong   int  `mapstructure:"key_long"`
	ImgWidth  int  `mapstructure:"img_width"`
	ImgHeight int  `mapstructure:"img_height"`
}
