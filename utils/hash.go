package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256 计算内容的sha256哈希值，用于图片去重
func Sha256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// InList 判断元素是否在列表中
func InList(key string, list []string) bool {
	for _, item := range list {
		if item == key {
			return true
		}
	}
	return false
}
