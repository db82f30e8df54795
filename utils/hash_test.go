package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSha256(t *testing.T) {
	// 相同内容哈希一致
	assert.Equal(t, Sha256([]byte("hello")), Sha256([]byte("hello")))
	assert.NotEqual(t, Sha256([]byte("hello")), Sha256([]byte("world")))
	// sha256十六进制长度固定64
	assert.Len(t, Sha256([]byte("hello")), 64)
}

func TestInList(t *testing.T) {
	list := []string{"jpg", "png", "webp"}
	assert.True(t, InList("png", list))
	assert.False(t, InList("exe", list))
	assert.False(t, InList("", list))
}
