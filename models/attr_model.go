package models

import (
	"errors"
	"fmt"

	"mall/global"
	"mall/models/res"

	"gorm.io/gorm"
)

// 属性类型，平台属性挂在三级分类下，销售属性全局共享
const (
	AttrTypePlatform = 1
	AttrTypeSale     = 2
)

// AttrModel 属性（平台属性/销售属性）
type AttrModel struct {
	MODEL
	AttrName      string           `json:"attrName" gorm:"size:64;comment:属性名称" validate:"required,min=1,max=64"`
	CategoryID    uint             `json:"categoryId" gorm:"index;default:0;comment:所属三级分类id，销售属性为0"`
	Type          int              `json:"type" gorm:"default:1;comment:属性类型 1平台 2销售"`
	AttrValueList []AttrValueModel `json:"attrValueList" gorm:"foreignKey:AttrID"`
}

func (AttrModel) TableName() string {
	return "attr"
}

// AttrValueModel 属性值
type AttrValueModel struct {
	MODEL
	ValueName string `json:"valueName" gorm:"size:64;comment:属性值名称" validate:"required,min=1,max=64"`
	AttrID    uint   `json:"attrId" gorm:"index;comment:所属属性id"`
}

func (AttrValueModel) TableName() string {
	return "attr_value"
}

// AttrValueInput 保存属性时提交的属性值，id为0表示新增
type AttrValueInput struct {
	ID        uint   `json:"id"`
	ValueName string `json:"valueName" validate:"required,min=1,max=64"`
}

// ValueChangeSet 属性值对账结果
type ValueChangeSet struct {
	ToCreate []string // 需要新建的属性值名称
	ToRename map[uint]string
	ToDelete []uint
	Kept     []uint // 名称未变的已有属性值
}

// ReconcileAttrValues 对比提交的属性值与已有属性值，得出增删改集合。
// 提交列表中名称重复，或携带的id不属于该属性时返回冲突错误；
// 已有列表为空时提交的id一律忽略，全部视为新增。
func ReconcileAttrValues(submitted []AttrValueInput, existing []AttrValueModel) (*ValueChangeSet, error) {
	names := make([]string, 0, len(submitted))
	for _, item := range submitted {
		names = append(names, item.ValueName)
	}
	if duplicates := FindDuplicates(names); len(duplicates) > 0 {
		return nil, res.NewConflict(fmt.Sprintf("属性值 %v 重复，请重新填写", duplicates))
	}

	change := &ValueChangeSet{ToRename: make(map[uint]string)}

	// 属性下没有已有属性值时（典型场景是新建属性），前端携带的id没有意义，
	// 全部按新增处理
	if len(existing) == 0 {
		for _, item := range submitted {
			change.ToCreate = append(change.ToCreate, item.ValueName)
		}
		return change, nil
	}

	existingByID := make(map[uint]AttrValueModel, len(existing))
	for _, value := range existing {
		existingByID[value.ID] = value
	}

	submittedIDs := make(map[uint]bool, len(submitted))
	for _, item := range submitted {
		if item.ID == 0 {
			change.ToCreate = append(change.ToCreate, item.ValueName)
			continue
		}
		old, ok := existingByID[item.ID]
		if !ok {
			return nil, res.NewConflict(fmt.Sprintf("属性值id为%d的记录不属于该属性", item.ID))
		}
		submittedIDs[item.ID] = true
		if old.ValueName != item.ValueName {
			change.ToRename[item.ID] = item.ValueName
		} else {
			change.Kept = append(change.Kept, item.ID)
		}
	}
	for _, value := range existing {
		if !submittedIDs[value.ID] {
			change.ToDelete = append(change.ToDelete, value.ID)
		}
	}
	return change, nil
}

// AttrSaveRequest 保存属性请求，id为0表示新增
type AttrSaveRequest struct {
	ID            uint             `json:"id"`
	AttrName      string           `json:"attrName" validate:"required,min=1,max=64"`
	CategoryID    uint             `json:"categoryId"`
	AttrValueList []AttrValueInput `json:"attrValueList" validate:"required,min=1,dive"`
}

// SaveAttrInfo 新建或更新平台属性及属性值，整体在一个事务内。
// 新建时校验分类必须为三级分类。
func SaveAttrInfo(req *AttrSaveRequest) error {
	return saveAttr(req, AttrTypePlatform)
}

// SaveSaleAttrInfo 新建或更新销售属性及属性值，销售属性不挂分类
func SaveSaleAttrInfo(req *AttrSaveRequest) error {
	req.CategoryID = 0
	return saveAttr(req, AttrTypeSale)
}

func saveAttr(req *AttrSaveRequest, attrType int) error {
	if attrType == AttrTypePlatform {
		if _, err := FindLeafCategory(req.CategoryID); err != nil {
			return err
		}
	}
	if err := checkAttrName(req.AttrName, req.CategoryID, attrType, req.ID); err != nil {
		return err
	}

	if req.ID == 0 {
		return global.DB.Transaction(func(tx *gorm.DB) error {
			attr := AttrModel{
				AttrName:   req.AttrName,
				CategoryID: req.CategoryID,
				Type:       attrType,
			}
			if err := tx.Create(&attr).Error; err != nil {
				return fmt.Errorf("创建属性失败: %w", err)
			}
			change, err := ReconcileAttrValues(req.AttrValueList, nil)
			if err != nil {
				return err
			}
			return applyValueChanges(tx, attr.ID, change)
		})
	}

	var attr AttrModel
	if err := global.DB.First(&attr, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("属性id为%d的记录不存在", req.ID))
		}
		return fmt.Errorf("查询属性失败: %w", err)
	}
	if attr.Type != attrType {
		return res.NewConflict(fmt.Sprintf("属性 %s 的类型不匹配", attr.AttrName))
	}
	var existing []AttrValueModel
	if err := global.DB.Where("attr_id = ?", attr.ID).Find(&existing).Error; err != nil {
		return fmt.Errorf("查询属性值失败: %w", err)
	}
	change, err := ReconcileAttrValues(req.AttrValueList, existing)
	if err != nil {
		return err
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"attr_name":   req.AttrName,
			"category_id": req.CategoryID,
		}
		if err := tx.Model(&attr).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新属性失败: %w", err)
		}
		return applyValueChanges(tx, attr.ID, change)
	})
}

// applyValueChanges 在事务内落地属性值的增删改
func applyValueChanges(tx *gorm.DB, attrID uint, change *ValueChangeSet) error {
	if len(change.ToDelete) > 0 {
		if err := tx.Where("attr_value_id IN ?", change.ToDelete).Delete(&SpuAttrValueModel{}).Error; err != nil {
			return fmt.Errorf("删除SPU属性值关联失败: %w", err)
		}
		if err := tx.Where("attr_value_id IN ?", change.ToDelete).Delete(&SkuAttrValueModel{}).Error; err != nil {
			return fmt.Errorf("删除SKU属性值关联失败: %w", err)
		}
		if err := tx.Where("id IN ?", change.ToDelete).Delete(&AttrValueModel{}).Error; err != nil {
			return fmt.Errorf("删除属性值失败: %w", err)
		}
	}
	for id, name := range change.ToRename {
		if err := tx.Model(&AttrValueModel{}).Where("id = ?", id).Update("value_name", name).Error; err != nil {
			return fmt.Errorf("更新属性值失败: %w", err)
		}
	}
	if len(change.ToCreate) > 0 {
		rows := make([]AttrValueModel, 0, len(change.ToCreate))
		for _, name := range change.ToCreate {
			rows = append(rows, AttrValueModel{ValueName: name, AttrID: attrID})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("创建属性值失败: %w", err)
		}
	}
	return nil
}

// FindAttrInfoList 查询三级分类下的平台属性，附带属性值列表
func FindAttrInfoList(category3ID uint) ([]AttrModel, error) {
	var attrs []AttrModel
	err := global.DB.Preload("AttrValueList").
		Where("category_id = ? AND type = ?", category3ID, AttrTypePlatform).
		Order("id DESC").
		Find(&attrs).Error
	if err != nil {
		return nil, fmt.Errorf("查询属性失败: %w", err)
	}
	return attrs, nil
}

// FindSaleAttrList 查询全部销售属性，附带属性值列表
func FindSaleAttrList() ([]AttrModel, error) {
	var attrs []AttrModel
	err := global.DB.Preload("AttrValueList").
		Where("type = ?", AttrTypeSale).
		Find(&attrs).Error
	if err != nil {
		return nil, fmt.Errorf("查询销售属性失败: %w", err)
	}
	return attrs, nil
}

// AttrDelete 删除属性及其属性值，并清理SPU/SKU侧的关联记录，整体在一个事务内
func AttrDelete(id uint) error {
	var attr AttrModel
	if err := global.DB.First(&attr, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("属性id为%d的记录不存在", id))
		}
		return fmt.Errorf("查询属性失败: %w", err)
	}
	var valueIDs []uint
	if err := global.DB.Model(&AttrValueModel{}).Where("attr_id = ?", id).Pluck("id", &valueIDs).Error; err != nil {
		return fmt.Errorf("查询属性值失败: %w", err)
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if len(valueIDs) > 0 {
			if err := tx.Where("attr_value_id IN ?", valueIDs).Delete(&SpuAttrValueModel{}).Error; err != nil {
				return fmt.Errorf("删除SPU属性值关联失败: %w", err)
			}
			if err := tx.Where("attr_value_id IN ?", valueIDs).Delete(&SkuAttrValueModel{}).Error; err != nil {
				return fmt.Errorf("删除SKU属性值关联失败: %w", err)
			}
		}
		if err := tx.Where("attr_id = ?", id).Delete(&SpuAttrModel{}).Error; err != nil {
			return fmt.Errorf("删除SPU属性关联失败: %w", err)
		}
		if err := tx.Where("attr_id = ?", id).Delete(&AttrValueModel{}).Error; err != nil {
			return fmt.Errorf("删除属性值失败: %w", err)
		}
		if err := tx.Delete(&attr).Error; err != nil {
			return fmt.Errorf("删除属性失败: %w", err)
		}
		return nil
	})
}

// checkAttrName 同一分类同一类型下属性名唯一
func checkAttrName(name string, categoryID uint, attrType int, excludeID uint) error {
	var count int64
	query := global.DB.Model(&AttrModel{}).
		Where("attr_name = ? AND category_id = ? AND type = ?", name, categoryID, attrType)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查属性名称失败: %w", err)
	}
	if count > 0 {
		return res.NewConflict(fmt.Sprintf("属性名称 %s 已存在，请重新填写", name))
	}
	return nil
}
