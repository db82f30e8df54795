package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeMenu(id, pid uint, name string) MenuModel {
	return MenuModel{MODEL: MODEL{ID: id}, Name: name, Pid: pid}
}

func TestBuildMenuTree(t *testing.T) {
	menus := []MenuModel{
		makeMenu(1, 0, "权限管理"),
		makeMenu(2, 1, "用户管理"),
		makeMenu(3, 1, "角色管理"),
		makeMenu(4, 2, "添加用户"),
		makeMenu(5, 0, "商品管理"),
	}

	tree := BuildMenuTree(menus, 0, nil)
	require.Len(t, tree, 2)
	assert.Equal(t, "权限管理", tree[0].Name)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "添加用户", tree[0].Children[0].Children[0].Name)
	assert.Empty(t, tree[1].Children)
}

func TestBuildMenuTreeWithSelected(t *testing.T) {
	menus := []MenuModel{
		makeMenu(1, 0, "权限管理"),
		makeMenu(2, 1, "用户管理"),
	}
	selected := map[uint]bool{2: true}

	tree := BuildMenuTree(menus, 0, selected)
	require.Len(t, tree, 1)
	assert.False(t, tree[0].Select)
	assert.True(t, tree[0].Children[0].Select)
}

func TestBuildMenuTreeEmpty(t *testing.T) {
	tree := BuildMenuTree(nil, 0, nil)
	assert.NotNil(t, tree)
	assert.Empty(t, tree)
}
