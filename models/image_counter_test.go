package models

import (
	"testing"

	"mall/models/res"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextRefCountNeverNegative(t *testing.T) {
	assert.Equal(t, 0, nextRefCount(0))
	assert.Equal(t, 0, nextRefCount(-1))
	assert.Equal(t, 0, nextRefCount(1))
	assert.Equal(t, 4, nextRefCount(5))
}

func TestRefCountAttachDetachRoundTrip(t *testing.T) {
	// 绑定三次再解绑三次，计数回到0且最后一次解绑触发删除
	num := 0
	for i := 0; i < 3; i++ {
		num++
	}
	require.Equal(t, 3, num)

	removed := false
	for i := 0; i < 3; i++ {
		num = nextRefCount(num)
		if num == 0 {
			removed = true
		}
	}
	assert.Equal(t, 0, num)
	assert.True(t, removed)

	// 计数归零后继续解绑不会变负
	assert.Equal(t, 0, nextRefCount(num))
}

func TestDetachPrecondition(t *testing.T) {
	// 图片不存在
	err := detachPrecondition(false, 0, "http://example.com/a.png")
	require.Error(t, err)
	var bizErr *res.BizError
	require.True(t, res.AsBizError(err, &bizErr))
	assert.Equal(t, res.FileNotFound, bizErr.Code)

	// 图片存在但关联记录不存在
	err = detachPrecondition(true, 0, "http://example.com/a.png")
	require.Error(t, err)
	require.True(t, res.AsBizError(err, &bizErr))
	assert.Equal(t, res.NotFound, bizErr.Code)

	// 图片和关联记录都存在
	assert.NoError(t, detachPrecondition(true, 1, "http://example.com/a.png"))
}
