package res

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageData(t *testing.T) {
	page := NewPageData([]int{1, 2, 3}, 7, 1, 3)
	assert.Equal(t, int64(7), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.True(t, page.HasMore)

	page = NewPageData([]int{7}, 7, 3, 3)
	assert.False(t, page.HasMore)

	// 空结果
	page = NewPageData([]int{}, 0, 1, 10)
	assert.Equal(t, 0, page.Pages)
	assert.False(t, page.HasMore)
}

func TestPageDataJSONKeys(t *testing.T) {
	// 前端约定全部使用驼峰字段
	raw, err := json.Marshal(NewPageData([]int{1}, 1, 1, 10))
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"records", "total", "pageNum", "pageSize", "pages", "hasMore", "searchCount"} {
		assert.Contains(t, decoded, key)
	}
}
