package models

import (
	"errors"
	"fmt"

	"mall/global"
	"mall/models/res"

	"gorm.io/gorm"
)

// TrademarkModel 品牌
type TrademarkModel struct {
	MODEL
	TmName  string `json:"tmName" gorm:"size:64;uniqueIndex:idx_tm_name;comment:品牌名称" validate:"required,min=1,max=64"`
	LogoURL string `json:"logoUrl" gorm:"size:256;comment:品牌logo地址" validate:"required,min=1"`
}

func (TrademarkModel) TableName() string {
	return "trademark"
}

// FindTrademarkList 分页查询品牌列表
func FindTrademarkList(page PageRequest) ([]TrademarkModel, int64, error) {
	var trademarks []TrademarkModel
	var total int64
	if err := global.DB.Model(&TrademarkModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("查询品牌总数失败: %w", err)
	}
	err := global.DB.Order("id DESC").
		Limit(page.PageSize).Offset(page.Offset()).
		Find(&trademarks).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询品牌列表失败: %w", err)
	}
	return trademarks, total, nil
}

// FindAllTrademarks 查询全部品牌，供SPU表单下拉使用
func FindAllTrademarks() ([]TrademarkModel, error) {
	var trademarks []TrademarkModel
	if err := global.DB.Find(&trademarks).Error; err != nil {
		return nil, fmt.Errorf("查询品牌失败: %w", err)
	}
	return trademarks, nil
}

// Create 创建品牌并绑定logo图片，整体在一个事务内
func (t *TrademarkModel) Create() error {
	if err := t.checkName(0); err != nil {
		return err
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("创建品牌失败: %w", err)
		}
		return attachImageTx(tx, t.LogoURL, ImageRelationTrademark, t.ID)
	})
}

// Update 更新品牌，logo变化时换绑图片引用
func (t *TrademarkModel) Update() error {
	if t.ID == 0 {
		return res.NewBizError(res.MissingParameter, "没有携带id！")
	}
	var trademark TrademarkModel
	if err := global.DB.First(&trademark, t.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("品牌id为%d的记录不存在", t.ID))
		}
		return fmt.Errorf("查询品牌失败: %w", err)
	}
	if err := t.checkName(t.ID); err != nil {
		return err
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"tm_name":  t.TmName,
			"logo_url": t.LogoURL,
		}
		if err := tx.Model(&trademark).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新品牌失败: %w", err)
		}
		return replaceImageTx(tx, trademark.LogoURL, t.LogoURL, ImageRelationTrademark, trademark.ID)
	})
}

// TrademarkDelete 删除品牌并释放logo图片引用。
// 仍有SPU挂在该品牌下时拒绝删除。
func TrademarkDelete(id uint) error {
	var trademark TrademarkModel
	if err := global.DB.First(&trademark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("品牌id为%d的记录不存在", id))
		}
		return fmt.Errorf("查询品牌失败: %w", err)
	}

	var blockingSpus []SpuModel
	if err := global.DB.Select("spu_name").Where("tm_id = ?", id).Limit(5).Find(&blockingSpus).Error; err != nil {
		return fmt.Errorf("查询品牌下SPU失败: %w", err)
	}
	if len(blockingSpus) > 0 {
		names := make([]string, 0, len(blockingSpus))
		for _, spu := range blockingSpus {
			names = append(names, spu.SpuName)
		}
		return res.NewConflict(fmt.Sprintf("品牌下存在SPU %v，请先删除相关SPU", names))
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := detachImageTx(tx, trademark.LogoURL, ImageRelationTrademark, trademark.ID); err != nil {
			return err
		}
		if err := tx.Delete(&trademark).Error; err != nil {
			return fmt.Errorf("删除品牌失败: %w", err)
		}
		return nil
	})
}

// checkName 检查品牌名称是否已存在
func (t *TrademarkModel) checkName(excludeID uint) error {
	var count int64
	query := global.DB.Model(&TrademarkModel{}).Where("tm_name = ?", t.TmName)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查品牌名称失败: %w", err)
	}
	if count > 0 {
		return res.NewConflict(fmt.Sprintf("品牌名称 %s 已存在，请重新填写品牌名称", t.TmName))
	}
	return nil
}
