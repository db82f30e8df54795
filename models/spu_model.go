package models

import (
	"errors"
	"fmt"

	"mall/global"
	"mall/models/res"

	"gorm.io/gorm"
)

// SpuModel 标准产品单元
type SpuModel struct {
	MODEL
	SpuName     string `json:"spuName" gorm:"size:128;comment:SPU名称" validate:"required,min=1,max=128"`
	Description string `json:"description" gorm:"size:512;comment:SPU描述"`
	CategoryID  uint   `json:"category3Id" gorm:"index;comment:三级分类id" validate:"required,gt=0"`
	TmID        uint   `json:"tmId" gorm:"index;comment:品牌id" validate:"required,gt=0"`
}

func (SpuModel) TableName() string {
	return "spu"
}

// SpuImageModel SPU图片
type SpuImageModel struct {
	MODEL
	SpuID   uint   `json:"spuId" gorm:"index;comment:所属SPUid"`
	ImgName string `json:"imgName" gorm:"size:128;comment:图片名称"`
	ImgURL  string `json:"imgUrl" gorm:"size:256;comment:图片地址"`
}

func (SpuImageModel) TableName() string {
	return "spu_image"
}

// SpuAttrModel SPU选用的销售属性
type SpuAttrModel struct {
	MODEL
	SpuID        uint   `json:"spuId" gorm:"index;comment:所属SPUid"`
	AttrID       uint   `json:"baseSaleAttrId" gorm:"index;comment:销售属性id"`
	SaleAttrName string `json:"saleAttrName" gorm:"size:64;comment:销售属性名称"`

	SpuSaleAttrValueList []SpuAttrValueModel `json:"spuSaleAttrValueList" gorm:"foreignKey:SpuAttrID"`
}

func (SpuAttrModel) TableName() string {
	return "spu_attr"
}

// SpuAttrValueModel SPU销售属性下启用的属性值
type SpuAttrValueModel struct {
	MODEL
	SpuAttrID         uint   `json:"spuAttrId" gorm:"index;comment:所属SPU销售属性id"`
	SpuID             uint   `json:"spuId" gorm:"index;comment:所属SPUid"`
	AttrValueID       uint   `json:"baseSaleAttrValueId" gorm:"index;comment:属性值id"`
	SaleAttrValueName string `json:"saleAttrValueName" gorm:"size:64;comment:属性值名称"`
}

func (SpuAttrValueModel) TableName() string {
	return "spu_attr_value"
}

// SpuImageInput 保存SPU时提交的图片
type SpuImageInput struct {
	ImgName string `json:"imgName"`
	ImgURL  string `json:"imgUrl" validate:"required,min=1"`
}

// SpuSaleAttrValueInput 保存SPU时提交的销售属性值
type SpuSaleAttrValueInput struct {
	AttrValueID       uint   `json:"baseSaleAttrValueId" validate:"required,gt=0"`
	SaleAttrValueName string `json:"saleAttrValueName"`
}

// SpuSaleAttrInput 保存SPU时提交的销售属性
type SpuSaleAttrInput struct {
	AttrID               uint                    `json:"baseSaleAttrId" validate:"required,gt=0"`
	SaleAttrName         string                  `json:"saleAttrName"`
	SpuSaleAttrValueList []SpuSaleAttrValueInput `json:"spuSaleAttrValueList" validate:"required,min=1,dive"`
}

// SpuSaveRequest 保存SPU请求，id为0表示新增
type SpuSaveRequest struct {
	ID              uint               `json:"id"`
	SpuName         string             `json:"spuName" validate:"required,min=1,max=128"`
	Description     string             `json:"description"`
	Category3ID     uint               `json:"category3Id" validate:"required,gt=0"`
	TmID            uint               `json:"tmId" validate:"required,gt=0"`
	SpuImageList    []SpuImageInput    `json:"spuImageList" validate:"required,min=1,dive"`
	SpuSaleAttrList []SpuSaleAttrInput `json:"spuSaleAttrList" validate:"dive"`
}

// FindSpuList 分页查询三级分类下的SPU
func FindSpuList(category3ID uint, page PageRequest) ([]SpuModel, int64, error) {
	var spus []SpuModel
	var total int64
	query := global.DB.Model(&SpuModel{}).Where("category_id = ?", category3ID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("查询SPU总数失败: %w", err)
	}
	err := global.DB.Where("category_id = ?", category3ID).
		Order("id DESC").
		Limit(page.PageSize).Offset(page.Offset()).
		Find(&spus).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询SPU列表失败: %w", err)
	}
	return spus, total, nil
}

// SaveSpuInfo 新建或更新SPU，图片与销售属性随SPU一起落库，整体在一个事务内
func SaveSpuInfo(req *SpuSaveRequest) error {
	if _, err := FindLeafCategory(req.Category3ID); err != nil {
		return err
	}
	var trademark TrademarkModel
	if err := global.DB.First(&trademark, req.TmID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewBizError(res.InvalidParameter, fmt.Sprintf("品牌id为%d的记录不存在", req.TmID))
		}
		return fmt.Errorf("查询品牌失败: %w", err)
	}
	if err := checkSaleAttrInputs(req.SpuSaleAttrList); err != nil {
		return err
	}

	if req.ID == 0 {
		if err := checkSpuName(req.SpuName, req.Category3ID, 0); err != nil {
			return err
		}
		return global.DB.Transaction(func(tx *gorm.DB) error {
			spu := SpuModel{
				SpuName:     req.SpuName,
				Description: req.Description,
				CategoryID:  req.Category3ID,
				TmID:        req.TmID,
			}
			if err := tx.Create(&spu).Error; err != nil {
				return fmt.Errorf("创建SPU失败: %w", err)
			}
			if err := createSpuImagesTx(tx, spu.ID, req.SpuImageList); err != nil {
				return err
			}
			return createSpuSaleAttrsTx(tx, spu.ID, req.SpuSaleAttrList)
		})
	}

	var spu SpuModel
	if err := global.DB.First(&spu, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("SPUid为%d的记录不存在", req.ID))
		}
		return fmt.Errorf("查询SPU失败: %w", err)
	}
	if err := checkSpuName(req.SpuName, req.Category3ID, spu.ID); err != nil {
		return err
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"spu_name":    req.SpuName,
			"description": req.Description,
			"category_id": req.Category3ID,
			"tm_id":       req.TmID,
		}
		if err := tx.Model(&spu).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新SPU失败: %w", err)
		}

		// 图片按地址集合对账，只动有变化的部分
		var oldImages []SpuImageModel
		if err := tx.Where("spu_id = ?", spu.ID).Find(&oldImages).Error; err != nil {
			return fmt.Errorf("查询SPU图片失败: %w", err)
		}
		oldURLs := make(map[string]bool, len(oldImages))
		for _, image := range oldImages {
			oldURLs[image.ImgURL] = true
		}
		newURLs := make(map[string]bool, len(req.SpuImageList))
		var toCreate []SpuImageInput
		for _, image := range req.SpuImageList {
			newURLs[image.ImgURL] = true
			if !oldURLs[image.ImgURL] {
				toCreate = append(toCreate, image)
			}
		}
		for _, image := range oldImages {
			if newURLs[image.ImgURL] {
				continue
			}
			if err := tx.Where("spu_id = ? AND img_url = ?", spu.ID, image.ImgURL).
				Delete(&SpuImageModel{}).Error; err != nil {
				return fmt.Errorf("删除SPU图片失败: %w", err)
			}
			if err := detachImageTx(tx, image.ImgURL, ImageRelationSpu, spu.ID); err != nil {
				return err
			}
		}
		if err := createSpuImagesTx(tx, spu.ID, toCreate); err != nil {
			return err
		}

		// 销售属性整组重建
		if err := tx.Where("spu_id = ?", spu.ID).Delete(&SpuAttrValueModel{}).Error; err != nil {
			return fmt.Errorf("删除SPU销售属性值失败: %w", err)
		}
		if err := tx.Where("spu_id = ?", spu.ID).Delete(&SpuAttrModel{}).Error; err != nil {
			return fmt.Errorf("删除SPU销售属性失败: %w", err)
		}
		return createSpuSaleAttrsTx(tx, spu.ID, req.SpuSaleAttrList)
	})
}

// createSpuImagesTx 在事务内写入SPU图片并登记图片引用
func createSpuImagesTx(tx *gorm.DB, spuID uint, images []SpuImageInput) error {
	for _, image := range images {
		row := SpuImageModel{SpuID: spuID, ImgName: image.ImgName, ImgURL: image.ImgURL}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("创建SPU图片失败: %w", err)
		}
		if err := attachImageTx(tx, image.ImgURL, ImageRelationSpu, spuID); err != nil {
			return err
		}
	}
	return nil
}

// createSpuSaleAttrsTx 在事务内写入SPU销售属性和属性值，名称从属性表补齐
func createSpuSaleAttrsTx(tx *gorm.DB, spuID uint, saleAttrs []SpuSaleAttrInput) error {
	for _, saleAttr := range saleAttrs {
		var attr AttrModel
		if err := tx.First(&attr, saleAttr.AttrID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return res.NewBizError(res.InvalidParameter, fmt.Sprintf("销售属性id为%d的记录不存在", saleAttr.AttrID))
			}
			return fmt.Errorf("查询销售属性失败: %w", err)
		}
		if attr.Type != AttrTypeSale {
			return res.NewBizError(res.InvalidParameter, fmt.Sprintf("属性 %s 不是销售属性", attr.AttrName))
		}

		row := SpuAttrModel{SpuID: spuID, AttrID: attr.ID, SaleAttrName: attr.AttrName}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("创建SPU销售属性失败: %w", err)
		}
		for _, value := range saleAttr.SpuSaleAttrValueList {
			var attrValue AttrValueModel
			if err := tx.First(&attrValue, value.AttrValueID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return res.NewBizError(res.InvalidParameter, fmt.Sprintf("属性值id为%d的记录不存在", value.AttrValueID))
				}
				return fmt.Errorf("查询属性值失败: %w", err)
			}
			if attrValue.AttrID != attr.ID {
				return res.NewBizError(res.InvalidParameter, fmt.Sprintf("属性值 %s 不属于销售属性 %s", attrValue.ValueName, attr.AttrName))
			}
			valueRow := SpuAttrValueModel{
				SpuAttrID:         row.ID,
				SpuID:             spuID,
				AttrValueID:       attrValue.ID,
				SaleAttrValueName: attrValue.ValueName,
			}
			if err := tx.Create(&valueRow).Error; err != nil {
				return fmt.Errorf("创建SPU销售属性值失败: %w", err)
			}
		}
	}
	return nil
}

// checkSaleAttrInputs 同一SPU下销售属性不允许重复选择
func checkSaleAttrInputs(saleAttrs []SpuSaleAttrInput) error {
	seen := make(map[uint]bool, len(saleAttrs))
	for _, saleAttr := range saleAttrs {
		if seen[saleAttr.AttrID] {
			return res.NewConflict(fmt.Sprintf("销售属性id为%d的记录重复选择", saleAttr.AttrID))
		}
		seen[saleAttr.AttrID] = true
	}
	return nil
}

// FindSpuImageList 查询SPU的图片列表
func FindSpuImageList(spuID uint) ([]SpuImageModel, error) {
	if err := checkSpuExists(spuID); err != nil {
		return nil, err
	}
	var images []SpuImageModel
	if err := global.DB.Where("spu_id = ?", spuID).Find(&images).Error; err != nil {
		return nil, fmt.Errorf("查询SPU图片失败: %w", err)
	}
	return images, nil
}

// FindSpuSaleAttrList 查询SPU的销售属性及属性值
func FindSpuSaleAttrList(spuID uint) ([]SpuAttrModel, error) {
	if err := checkSpuExists(spuID); err != nil {
		return nil, err
	}
	var saleAttrs []SpuAttrModel
	err := global.DB.Preload("SpuSaleAttrValueList").
		Where("spu_id = ?", spuID).
		Find(&saleAttrs).Error
	if err != nil {
		return nil, fmt.Errorf("查询SPU销售属性失败: %w", err)
	}
	return saleAttrs, nil
}

// SpuDelete 删除SPU及其名下全部SKU、图片、销售属性，整体在一个事务内
func SpuDelete(id uint) error {
	var spu SpuModel
	if err := global.DB.First(&spu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("SPUid为%d的记录不存在", id))
		}
		return fmt.Errorf("查询SPU失败: %w", err)
	}

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := skuDeleteBySpuTx(tx, spu.ID); err != nil {
			return err
		}

		if err := detachAllImagesTx(tx, ImageRelationSpu, spu.ID); err != nil {
			return err
		}
		if err := tx.Where("spu_id = ?", spu.ID).Delete(&SpuImageModel{}).Error; err != nil {
			return fmt.Errorf("删除SPU图片失败: %w", err)
		}
		if err := tx.Where("spu_id = ?", spu.ID).Delete(&SpuAttrValueModel{}).Error; err != nil {
			return fmt.Errorf("删除SPU销售属性值失败: %w", err)
		}
		if err := tx.Where("spu_id = ?", spu.ID).Delete(&SpuAttrModel{}).Error; err != nil {
			return fmt.Errorf("删除SPU销售属性失败: %w", err)
		}
		if err := tx.Delete(&spu).Error; err != nil {
			return fmt.Errorf("删除SPU失败: %w", err)
		}
		return nil
	})
}

func checkSpuExists(spuID uint) error {
	var count int64
	if err := global.DB.Model(&SpuModel{}).Where("id = ?", spuID).Count(&count).Error; err != nil {
		return fmt.Errorf("查询SPU失败: %w", err)
	}
	if count == 0 {
		return res.NewNotFound(fmt.Sprintf("SPUid为%d的记录不存在", spuID))
	}
	return nil
}

// checkSpuName 同一三级分类下SPU名称唯一
func checkSpuName(name string, category3ID, excludeID uint) error {
	var count int64
	query := global.DB.Model(&SpuModel{}).
		Where("spu_name = ? AND category_id = ?", name, category3ID)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查SPU名称失败: %w", err)
	}
	if count > 0 {
		return res.NewConflict(fmt.Sprintf("SPU名称 %s 已存在，请重新填写", name))
	}
	return nil
}
