package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectDescendantIDs(t *testing.T) {
	// 1 -> 2,3; 2 -> 4; 3 -> 5; 6独立
	children := map[uint][]uint{
		1: {2, 3},
		2: {4},
		3: {5},
	}

	ids := CollectDescendantIDs(children, []uint{1})
	assert.ElementsMatch(t, []uint{1, 2, 3, 4, 5}, ids)

	// 叶子节点只返回自身
	ids = CollectDescendantIDs(children, []uint{4})
	assert.Equal(t, []uint{4}, ids)

	// 不在邻接表里的节点也返回自身
	ids = CollectDescendantIDs(children, []uint{6})
	assert.Equal(t, []uint{6}, ids)
}

func TestCollectDescendantIDsDeduplicates(t *testing.T) {
	children := map[uint][]uint{
		1: {2},
		2: {3},
	}
	// 根集合包含祖先和子孙，子孙不重复出现
	ids := CollectDescendantIDs(children, []uint{1, 2, 1})
	assert.ElementsMatch(t, []uint{1, 2, 3}, ids)
}

func TestCollectDescendantIDsDeepChain(t *testing.T) {
	// 长链不会因为深度出问题
	children := make(map[uint][]uint)
	for i := uint(1); i < 1000; i++ {
		children[i] = []uint{i + 1}
	}
	ids := CollectDescendantIDs(children, []uint{1})
	assert.Len(t, ids, 1000)
}

func TestDiffIDSets(t *testing.T) {
	toAdd, toRemove := DiffIDSets([]uint{1, 2, 3}, []uint{2, 3, 4})
	assert.Equal(t, []uint{1}, toAdd)
	assert.Equal(t, []uint{4}, toRemove)

	toAdd, toRemove = DiffIDSets([]uint{1, 2}, []uint{1, 2})
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)

	toAdd, toRemove = DiffIDSets(nil, []uint{1})
	assert.Empty(t, toAdd)
	assert.Equal(t, []uint{1}, toRemove)

	toAdd, toRemove = DiffIDSets([]uint{1}, nil)
	assert.Equal(t, []uint{1}, toAdd)
	assert.Empty(t, toRemove)
}

func TestFindDuplicates(t *testing.T) {
	assert.Empty(t, FindDuplicates([]string{"红", "蓝", "绿"}))
	assert.Equal(t, []string{"红"}, FindDuplicates([]string{"红", "蓝", "红"}))
	// 出现三次也只报一次
	assert.Equal(t, []string{"红"}, FindDuplicates([]string{"红", "红", "红"}))
}
