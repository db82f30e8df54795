package models

import (
	"testing"

	"mall/models/res"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeAttrValue(id uint, name string) AttrValueModel {
	return AttrValueModel{MODEL: MODEL{ID: id}, ValueName: name, AttrID: 1}
}

func TestReconcileAttrValuesAllNew(t *testing.T) {
	change, err := ReconcileAttrValues([]AttrValueInput{
		{ValueName: "红"},
		{ValueName: "蓝"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"红", "蓝"}, change.ToCreate)
	assert.Empty(t, change.ToRename)
	assert.Empty(t, change.ToDelete)
}

func TestReconcileAttrValuesNewAttrIgnoresIDs(t *testing.T) {
	// 新建属性时前端可能带上无意义的id，应全部按新增处理
	change, err := ReconcileAttrValues([]AttrValueInput{
		{ID: 7, ValueName: "红"},
		{ValueName: "蓝"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"红", "蓝"}, change.ToCreate)
	assert.Empty(t, change.ToRename)
	assert.Empty(t, change.ToDelete)
	assert.Empty(t, change.Kept)
}

func TestReconcileAttrValuesMixed(t *testing.T) {
	existing := []AttrValueModel{
		makeAttrValue(1, "红"),
		makeAttrValue(2, "蓝"),
		makeAttrValue(3, "黑"),
	}
	// 保留红、改名蓝为深蓝、新增绿，黑未提交应删除
	change, err := ReconcileAttrValues([]AttrValueInput{
		{ID: 1, ValueName: "红"},
		{ID: 2, ValueName: "深蓝"},
		{ValueName: "绿"},
	}, existing)
	require.NoError(t, err)
	assert.Equal(t, []string{"绿"}, change.ToCreate)
	assert.Equal(t, map[uint]string{2: "深蓝"}, change.ToRename)
	assert.Equal(t, []uint{3}, change.ToDelete)
	assert.Equal(t, []uint{1}, change.Kept)
}

func TestReconcileAttrValuesEmptySubmissionDeletesAll(t *testing.T) {
	existing := []AttrValueModel{
		makeAttrValue(1, "红"),
		makeAttrValue(2, "蓝"),
	}
	change, err := ReconcileAttrValues(nil, existing)
	require.NoError(t, err)
	assert.Empty(t, change.ToCreate)
	assert.ElementsMatch(t, []uint{1, 2}, change.ToDelete)
}

func TestReconcileAttrValuesDuplicateName(t *testing.T) {
	_, err := ReconcileAttrValues([]AttrValueInput{
		{ValueName: "红"},
		{ValueName: "红"},
	}, nil)
	require.Error(t, err)
	var bizErr *res.BizError
	require.True(t, res.AsBizError(err, &bizErr))
	assert.Equal(t, res.Conflict, bizErr.Code)
}

func TestReconcileAttrValuesForeignID(t *testing.T) {
	existing := []AttrValueModel{makeAttrValue(1, "红")}
	// 携带的id不属于该属性
	_, err := ReconcileAttrValues([]AttrValueInput{
		{ID: 99, ValueName: "蓝"},
	}, existing)
	require.Error(t, err)
	var bizErr *res.BizError
	require.True(t, res.AsBizError(err, &bizErr))
	assert.Equal(t, res.Conflict, bizErr.Code)
}
