package models

import (
	"errors"
	"fmt"

	"mall/global"
	"mall/models/res"

	"gorm.io/gorm"
)

// 分类等级，一共有1/2/3级，1为最高级
const (
	CategoryLevelFirst  = 1
	CategoryLevelSecond = 2
	CategoryLevelThird  = 3
)

// CategoryModel 商品分类，按pid构成深度不超过3的森林
type CategoryModel struct {
	MODEL
	Name  string `json:"name" gorm:"size:64;uniqueIndex:idx_category_name;comment:分类名称" validate:"required,min=1,max=64"`
	Pid   uint   `json:"pid" gorm:"index;default:0;comment:父分类id，一级分类为0"`
	Level int    `json:"level" gorm:"comment:分类等级" validate:"required,gte=1,lte=3"`
}

func (CategoryModel) TableName() string {
	return "category"
}

// FindCategoryByLevel 根据分类等级和父分类id查子分类
func FindCategoryByLevel(level int, pid uint) ([]CategoryModel, error) {
	var categories []CategoryModel
	err := global.DB.Where("level = ? AND pid = ?", level, pid).Find(&categories).Error
	return categories, err
}

// Create 创建分类，校验名称唯一与等级规则
func (c *CategoryModel) Create() error {
	if err := c.checkName(0); err != nil {
		return err
	}
	if err := c.checkLevel(); err != nil {
		return err
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("创建分类失败: %w", err)
		}
		return nil
	})
}

// Update 修改分类名称，等级和父分类不可变更
func (c *CategoryModel) Update(id uint, name string) error {
	var category CategoryModel
	if err := global.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("分类id为%d的记录不存在", id))
		}
		return fmt.Errorf("查询分类失败: %w", err)
	}
	probe := CategoryModel{Name: name}
	if err := probe.checkName(id); err != nil {
		return err
	}
	if err := global.DB.Model(&category).Update("name", name).Error; err != nil {
		return fmt.Errorf("更新分类失败: %w", err)
	}
	*c = category
	c.Name = name
	return nil
}

// Delete 删除分类及其全部子分类。
// 任一待删分类仍被属性或SPU引用时拒绝删除，整棵子树的删除在一个事务内完成。
func CategoryDelete(id uint) error {
	var all []CategoryModel
	if err := global.DB.Find(&all).Error; err != nil {
		return fmt.Errorf("查询分类失败: %w", err)
	}
	exists := false
	children := make(map[uint][]uint, len(all))
	for _, item := range all {
		children[item.Pid] = append(children[item.Pid], item.ID)
		if item.ID == id {
			exists = true
		}
	}
	if !exists {
		return res.NewNotFound(fmt.Sprintf("分类id为%d的记录不存在", id))
	}

	ids := CollectDescendantIDs(children, []uint{id})

	// 被属性或SPU引用的分类不允许删除
	var blockingAttrs []AttrModel
	if err := global.DB.Select("attr_name").Where("category_id IN ?", ids).Limit(5).Find(&blockingAttrs).Error; err != nil {
		return fmt.Errorf("查询分类下属性失败: %w", err)
	}
	if len(blockingAttrs) > 0 {
		names := make([]string, 0, len(blockingAttrs))
		for _, attr := range blockingAttrs {
			names = append(names, attr.AttrName)
		}
		return res.NewConflict(fmt.Sprintf("分类下存在属性 %v，请先删除相关属性", names))
	}
	var blockingSpus []SpuModel
	if err := global.DB.Select("spu_name").Where("category_id IN ?", ids).Limit(5).Find(&blockingSpus).Error; err != nil {
		return fmt.Errorf("查询分类下SPU失败: %w", err)
	}
	if len(blockingSpus) > 0 {
		names := make([]string, 0, len(blockingSpus))
		for _, spu := range blockingSpus {
			names = append(names, spu.SpuName)
		}
		return res.NewConflict(fmt.Sprintf("分类下存在SPU %v，请先删除相关SPU", names))
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id IN ?", ids).Delete(&CategoryModel{}).Error; err != nil {
			return fmt.Errorf("删除分类失败: %w", err)
		}
		return nil
	})
}

// checkName 检查分类名称是否已存在，excludeID用于更新时排除自身
func (c *CategoryModel) checkName(excludeID uint) error {
	var count int64
	query := global.DB.Model(&CategoryModel{}).Where("name = ?", c.Name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查分类名称失败: %w", err)
	}
	if count > 0 {
		return res.NewConflict(fmt.Sprintf("分类名称 %s 已存在，请重新输入新的分类名称", c.Name))
	}
	return nil
}

// checkLevel 校验等级规则：pid=0时level必须为1，否则父分类必须存在且恰好高一级
func (c *CategoryModel) checkLevel() error {
	if c.Level < CategoryLevelFirst || c.Level > CategoryLevelThird {
		return res.NewBizError(res.InvalidParameter, fmt.Sprintf("请输入正确的分类等级：1、2、3，您输入的是%d", c.Level))
	}
	if c.Pid == 0 {
		if c.Level != CategoryLevelFirst {
			return res.NewBizError(res.InvalidParameter, "请输入正确的level，当pid=0时，分类等级应该为1")
		}
		return nil
	}
	var parent CategoryModel
	if err := global.DB.First(&parent, c.Pid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewBizError(res.InvalidParameter, "请输入正确的pid，数据库里没有该id作为父id")
		}
		return fmt.Errorf("查询父分类失败: %w", err)
	}
	if parent.Level != c.Level-1 {
		return res.NewBizError(res.InvalidParameter, "请输入正确的pid，父分类等级并不高于该分类等级一级")
	}
	return nil
}

// FindLeafCategory 查询三级分类，平台属性只能挂在三级分类下
func FindLeafCategory(id uint) (*CategoryModel, error) {
	var category CategoryModel
	if err := global.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, res.NewConflict(fmt.Sprintf("分类id为%d 不存在！", id))
		}
		return nil, fmt.Errorf("查询分类失败: %w", err)
	}
	if category.Level != CategoryLevelThird {
		return nil, res.NewConflict(fmt.Sprintf("分类名称 %s 不是三级分类！", category.Name))
	}
	return &category, nil
}
