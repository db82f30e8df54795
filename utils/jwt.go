package utils

import (
	"errors"
	"time"

	"mall/global"

	"github.com/golang-jwt/jwt/v5"
)

type PayLoad struct {
	Username string `json:"username"`
	UserID   uint   `json:"user_id"`
}

type CustomClaims struct {
	PayLoad
	jwt.RegisteredClaims
}

// GenerateToken 生成 Token
func GenerateToken(payload PayLoad) (string, error) {
	claims := CustomClaims{
		PayLoad: payload,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(global.Config.Jwt.Expires) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    global.Config.Jwt.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(global.Config.Jwt.Secret))
}

// ParseToken 解析 Token
func ParseToken(tokenString string) (*CustomClaims, error) {
	var claims CustomClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("token签名算法错误")
		}
		return []byte(global.Config.Jwt.Secret), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, errors.New("token已过期")
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, errors.New("token格式错误")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, errors.New("token签名无效")
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, errors.New("token尚未生效")
		}
		return nil, errors.New("token无效")
	}

	if !token.Valid {
		return nil, errors.New("token验证失败")
	}

	return &claims, nil
}
