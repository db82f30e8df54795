package models

import (
	"errors"
	"fmt"

	"mall/global"
	"mall/models/res"

	"gorm.io/gorm"
)

// SkuModel 库存量单位，挂在SPU下
type SkuModel struct {
	MODEL
	SpuID         uint    `json:"spuId" gorm:"index;comment:所属SPUid" validate:"required,gt=0"`
	TmID          uint    `json:"tmId" gorm:"index;comment:品牌id"`
	CategoryID    uint    `json:"category3Id" gorm:"index;comment:三级分类id"`
	SkuName       string  `json:"skuName" gorm:"size:128;comment:SKU名称" validate:"required,min=1,max=128"`
	Price         float64 `json:"price" gorm:"type:decimal(10,2);comment:价格" validate:"required,gt=0"`
	Weight        string  `json:"weight" gorm:"size:32;comment:重量"`
	SkuDesc       string  `json:"skuDesc" gorm:"size:512;comment:SKU描述"`
	SkuDefaultImg string  `json:"skuDefaultImg" gorm:"size:256;comment:默认图片地址" validate:"required,min=1"`
	IsSale        bool    `json:"isSale" gorm:"default:false;comment:是否上架"`

	SkuAttrValueList []SkuAttrValueModel `json:"skuAttrValueList" gorm:"foreignKey:SkuID"`
}

func (SkuModel) TableName() string {
	return "sku"
}

// SkuAttrValueModel SKU选中的属性值，平台属性和销售属性共用一张表，按Type区分
type SkuAttrValueModel struct {
	MODEL
	SkuID       uint   `json:"skuId" gorm:"index;comment:所属SKUid"`
	AttrID      uint   `json:"attrId" gorm:"index;comment:属性id"`
	AttrValueID uint   `json:"attrValueId" gorm:"index;comment:属性值id"`
	Type        int    `json:"type" gorm:"comment:属性类型 1平台 2销售"`
	AttrName    string `json:"attrName" gorm:"size:64;comment:属性名称"`
	ValueName   string `json:"valueName" gorm:"size:64;comment:属性值名称"`
}

func (SkuAttrValueModel) TableName() string {
	return "sku_attr_value"
}

// SkuAttrValueInput 保存SKU时提交的属性值选择
type SkuAttrValueInput struct {
	AttrID      uint `json:"attrId" validate:"required,gt=0"`
	AttrValueID uint `json:"valueId" validate:"required,gt=0"`
}

// SkuSaveRequest 保存SKU请求，id为0表示新增
type SkuSaveRequest struct {
	ID                   uint                `json:"id"`
	SpuID                uint                `json:"spuId" validate:"required,gt=0"`
	SkuName              string              `json:"skuName" validate:"required,min=1,max=128"`
	Price                float64             `json:"price" validate:"required,gt=0"`
	Weight               string              `json:"weight"`
	SkuDesc              string              `json:"skuDesc"`
	SkuDefaultImg        string              `json:"skuDefaultImg" validate:"required,min=1"`
	SkuAttrValueList     []SkuAttrValueInput `json:"skuAttrValueList" validate:"dive"`
	SkuSaleAttrValueList []SkuAttrValueInput `json:"skuSaleAttrValueList" validate:"dive"`
}

// FindSkuList 分页查询SKU列表
func FindSkuList(page PageRequest) ([]SkuModel, int64, error) {
	var skus []SkuModel
	var total int64
	if err := global.DB.Model(&SkuModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("查询SKU总数失败: %w", err)
	}
	err := global.DB.Order("id DESC").
		Limit(page.PageSize).Offset(page.Offset()).
		Find(&skus).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询SKU列表失败: %w", err)
	}
	return skus, total, nil
}

// FindSkuBySpu 查询SPU下全部SKU
func FindSkuBySpu(spuID uint) ([]SkuModel, error) {
	if err := checkSpuExists(spuID); err != nil {
		return nil, err
	}
	var skus []SkuModel
	err := global.DB.Preload("SkuAttrValueList").
		Where("spu_id = ?", spuID).
		Find(&skus).Error
	if err != nil {
		return nil, fmt.Errorf("查询SKU失败: %w", err)
	}
	return skus, nil
}

// FindSkuInfo 查询SKU详情，附带属性值选择
func FindSkuInfo(id uint) (*SkuModel, error) {
	var sku SkuModel
	err := global.DB.Preload("SkuAttrValueList").First(&sku, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, res.NewNotFound(fmt.Sprintf("SKUid为%d的记录不存在", id))
		}
		return nil, fmt.Errorf("查询SKU失败: %w", err)
	}
	return &sku, nil
}

// SaveSkuInfo 新建或更新SKU，属性值选择随SKU一起落库，整体在一个事务内。
// 品牌和分类从所属SPU继承。
func SaveSkuInfo(req *SkuSaveRequest) error {
	var spu SpuModel
	if err := global.DB.First(&spu, req.SpuID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewBizError(res.InvalidParameter, fmt.Sprintf("SPUid为%d的记录不存在", req.SpuID))
		}
		return fmt.Errorf("查询SPU失败: %w", err)
	}

	platformRows, err := resolveSkuAttrValues(req.SkuAttrValueList, AttrTypePlatform)
	if err != nil {
		return err
	}
	saleRows, err := resolveSkuAttrValues(req.SkuSaleAttrValueList, AttrTypeSale)
	if err != nil {
		return err
	}
	rows := append(platformRows, saleRows...)

	if req.ID == 0 {
		if err := checkSkuName(req.SkuName, req.SpuID, 0); err != nil {
			return err
		}
		return global.DB.Transaction(func(tx *gorm.DB) error {
			sku := SkuModel{
				SpuID:         spu.ID,
				TmID:          spu.TmID,
				CategoryID:    spu.CategoryID,
				SkuName:       req.SkuName,
				Price:         req.Price,
				Weight:        req.Weight,
				SkuDesc:       req.SkuDesc,
				SkuDefaultImg: req.SkuDefaultImg,
			}
			if err := tx.Create(&sku).Error; err != nil {
				return fmt.Errorf("创建SKU失败: %w", err)
			}
			if err := attachImageTx(tx, sku.SkuDefaultImg, ImageRelationSku, sku.ID); err != nil {
				return err
			}
			return createSkuAttrValuesTx(tx, sku.ID, rows)
		})
	}

	var sku SkuModel
	if err := global.DB.First(&sku, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("SKUid为%d的记录不存在", req.ID))
		}
		return fmt.Errorf("查询SKU失败: %w", err)
	}
	if err := checkSkuName(req.SkuName, req.SpuID, sku.ID); err != nil {
		return err
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"spu_id":          spu.ID,
			"tm_id":           spu.TmID,
			"category_id":     spu.CategoryID,
			"sku_name":        req.SkuName,
			"price":           req.Price,
			"weight":          req.Weight,
			"sku_desc":        req.SkuDesc,
			"sku_default_img": req.SkuDefaultImg,
		}
		if err := tx.Model(&sku).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新SKU失败: %w", err)
		}
		if err := replaceImageTx(tx, sku.SkuDefaultImg, req.SkuDefaultImg, ImageRelationSku, sku.ID); err != nil {
			return err
		}
		if err := tx.Where("sku_id = ?", sku.ID).Delete(&SkuAttrValueModel{}).Error; err != nil {
			return fmt.Errorf("删除SKU属性值失败: %w", err)
		}
		return createSkuAttrValuesTx(tx, sku.ID, rows)
	})
}

// resolveSkuAttrValues 校验提交的属性值归属并补齐名称
func resolveSkuAttrValues(inputs []SkuAttrValueInput, attrType int) ([]SkuAttrValueModel, error) {
	rows := make([]SkuAttrValueModel, 0, len(inputs))
	seen := make(map[uint]bool, len(inputs))
	for _, input := range inputs {
		if seen[input.AttrID] {
			return nil, res.NewConflict(fmt.Sprintf("属性id为%d的记录重复选择", input.AttrID))
		}
		seen[input.AttrID] = true

		var attr AttrModel
		if err := global.DB.First(&attr, input.AttrID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, res.NewBizError(res.InvalidParameter, fmt.Sprintf("属性id为%d的记录不存在", input.AttrID))
			}
			return nil, fmt.Errorf("查询属性失败: %w", err)
		}
		if attr.Type != attrType {
			return nil, res.NewBizError(res.InvalidParameter, fmt.Sprintf("属性 %s 的类型不匹配", attr.AttrName))
		}
		var attrValue AttrValueModel
		if err := global.DB.First(&attrValue, input.AttrValueID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, res.NewBizError(res.InvalidParameter, fmt.Sprintf("属性值id为%d的记录不存在", input.AttrValueID))
			}
			return nil, fmt.Errorf("查询属性值失败: %w", err)
		}
		if attrValue.AttrID != attr.ID {
			return nil, res.NewBizError(res.InvalidParameter, fmt.Sprintf("属性值 %s 不属于属性 %s", attrValue.ValueName, attr.AttrName))
		}

		rows = append(rows, SkuAttrValueModel{
			AttrID:      attr.ID,
			AttrValueID: attrValue.ID,
			Type:        attrType,
			AttrName:    attr.AttrName,
			ValueName:   attrValue.ValueName,
		})
	}
	return rows, nil
}

func createSkuAttrValuesTx(tx *gorm.DB, skuID uint, rows []SkuAttrValueModel) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].SkuID = skuID
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("创建SKU属性值失败: %w", err)
	}
	return nil
}

// SkuOnSale 上架SKU
func SkuOnSale(id uint) error {
	return skuSetSale(id, true)
}

// SkuCancelSale 下架SKU
func SkuCancelSale(id uint) error {
	return skuSetSale(id, false)
}

func skuSetSale(id uint, onSale bool) error {
	var sku SkuModel
	if err := global.DB.First(&sku, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("SKUid为%d的记录不存在", id))
		}
		return fmt.Errorf("查询SKU失败: %w", err)
	}
	if err := global.DB.Model(&sku).Update("is_sale", onSale).Error; err != nil {
		return fmt.Errorf("更新SKU上架状态失败: %w", err)
	}
	return nil
}

// SkuDelete 删除SKU及其属性值选择，释放默认图片引用，整体在一个事务内
func SkuDelete(id uint) error {
	var sku SkuModel
	if err := global.DB.First(&sku, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("SKUid为%d的记录不存在", id))
		}
		return fmt.Errorf("查询SKU失败: %w", err)
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		return skuDeleteTx(tx, &sku)
	})
}

// skuDeleteTx 在事务内删除单个SKU
func skuDeleteTx(tx *gorm.DB, sku *SkuModel) error {
	if err := detachImageTx(tx, sku.SkuDefaultImg, ImageRelationSku, sku.ID); err != nil {
		return err
	}
	if err := tx.Where("sku_id = ?", sku.ID).Delete(&SkuAttrValueModel{}).Error; err != nil {
		return fmt.Errorf("删除SKU属性值失败: %w", err)
	}
	if err := tx.Delete(sku).Error; err != nil {
		return fmt.Errorf("删除SKU失败: %w", err)
	}
	return nil
}

// skuDeleteBySpuTx 在事务内删除SPU名下全部SKU
func skuDeleteBySpuTx(tx *gorm.DB, spuID uint) error {
	var skus []SkuModel
	if err := tx.Where("spu_id = ?", spuID).Find(&skus).Error; err != nil {
		return fmt.Errorf("查询SKU失败: %w", err)
	}
	for i := range skus {
		if err := skuDeleteTx(tx, &skus[i]); err != nil {
			return err
		}
	}
	return nil
}

// checkSkuName 同一SPU下SKU名称唯一
func checkSkuName(name string, spuID, excludeID uint) error {
	var count int64
	query := global.DB.Model(&SkuModel{}).
		Where("sku_name = ? AND spu_id = ?", name, spuID)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查SKU名称失败: %w", err)
	}
	if count > 0 {
		return res.NewConflict(fmt.Sprintf("SKU名称 %s 已存在，请重新填写", name))
	}
	return nil
}
