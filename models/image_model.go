package models

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"mall/global"
	"mall/models/res"
	"mall/utils"

	"github.com/avast/retry-go"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 存储类型常量
const (
	LocalStorage  = "local"  // 本地存储
	OnlineStorage = "online" // 在线存储
)

// 图片关联类型
const (
	ImageRelationAvatar    = 1 // 用户头像
	ImageRelationTrademark = 2 // 品牌logo
	ImageRelationSpu       = 3 // SPU图片
	ImageRelationSku       = 4 // SKU图片
)

// WhiteList 定义允许上传的图片格式
var WhiteList = []string{
	"jpg", "jpeg", "png",
	"gif", "bmp", "webp",
}

// ImageModel 图片模型，Num为被业务对象引用的次数，归零即删除
type ImageModel struct {
	MODEL
	URL  string `json:"url" gorm:"size:256;uniqueIndex:idx_image_url,length:191;comment:图片访问地址"`
	Hash string `json:"hash" gorm:"uniqueIndex:idx_image_hash,length:64;comment:图片哈希值"`
	Name string `json:"name" gorm:"comment:图片名称"`
	Type string `json:"type" gorm:"comment:存储类型"`
	Size int64  `json:"size" gorm:"comment:图片大小"`
	Num  int    `json:"num" gorm:"default:0;comment:引用计数"`
}

func (ImageModel) TableName() string {
	return "image"
}

// ImageRelationModel 图片与业务对象的关联记录
type ImageRelationModel struct {
	MODEL
	Type    int  `json:"type" gorm:"index:idx_relation,priority:1;comment:关联类型 1头像 2品牌 3SPU 4SKU"`
	Tid     uint `json:"tid" gorm:"index:idx_relation,priority:2;comment:业务对象id"`
	ImageID uint `json:"imageId" gorm:"index;comment:图片id"`
}

func (ImageRelationModel) TableName() string {
	return "image_relation"
}

// UploadResponse 定义上传响应结构
type UploadResponse struct {
	FileName  string `json:"file_name"`      // 文件访问地址
	IsSuccess bool   `json:"is_success"`     // 是否上传成功
	Msg       string `json:"msg"`            // 响应信息
	Size      int64  `json:"size,omitempty"` // 文件大小
	Hash      string `json:"hash,omitempty"` // 文件哈希值
}

// imageValidate 图片验证函数
func (im *ImageModel) imageValidate(file *multipart.FileHeader) error {
	if file == nil {
		return fmt.Errorf("文件不能为空")
	}

	// 验证文件格式
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" || !utils.InList(ext[1:], WhiteList) {
		return fmt.Errorf("不支持的文件格式: %s", ext)
	}

	// 验证文件大小
	sizeMB := float64(file.Size) / float64(1024*1024)
	if sizeMB >= float64(global.Config.Upload.Size) {
		return fmt.Errorf("图片大小超过设定,当前大小为:%.2fMB,设定大小为:%dMB",
			sizeMB, global.Config.Upload.Size)
	}
	return nil
}

// Upload 文件上传主函数，内容去重后落本地盘，再尽力同步到腾讯云
func (im *ImageModel) Upload(file *multipart.FileHeader) (resp UploadResponse) {
	// 1. 验证图片
	if err := im.imageValidate(file); err != nil {
		resp.Msg = err.Error()
		return
	}

	// 2. 读取文件内容
	byteData, err := im.readFileContent(file)
	if err != nil {
		resp.Msg = err.Error()
		return
	}

	// 3. 计算并检查文件哈希值是否重复，重复则直接复用已有图片
	imageHash := utils.Sha256(byteData)
	if existingImage, exists := im.checkDuplicate(imageHash); exists {
		return existingImage
	}

	// 4. 生成不重名的文件名并写入本地
	fileID, err := utils.GenerateID()
	if err != nil {
		global.Log.Error("utils.GenerateID() failed", zap.String("error", err.Error()))
		resp.Msg = "生成文件名失败"
		return
	}
	ext := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("%d%s", fileID, ext)
	basePath := global.Config.Upload.Path

	if err := os.MkdirAll(basePath, 0755); err != nil {
		global.Log.Error("创建目录失败", zap.String("error", err.Error()))
		resp.Msg = "创建上传目录失败"
		return
	}
	localPath := filepath.Join(basePath, fileName)
	if err := os.WriteFile(localPath, byteData, 0644); err != nil {
		global.Log.Error("写入文件失败", zap.String("error", err.Error()))
		resp.Msg = "保存文件失败"
		return
	}

	// 5. 尝试上传到腾讯云，失败则退回本地地址
	imageURL, err := im.uploadToTencentCOS(fileName, byteData)
	storageType := OnlineStorage
	if err != nil {
		global.Log.Warn("上传到腾讯云失败，将使用本地存储",
			zap.String("error", err.Error()),
			zap.String("localPath", localPath),
		)
		imageURL = fmt.Sprintf("%s/%s/%s", strings.TrimRight(global.Config.Upload.Host, "/"), basePath, fileName)
		storageType = LocalStorage
	}

	// 6. 保存记录到数据库
	im.URL = imageURL
	im.Hash = imageHash
	im.Name = localPath
	im.Type = storageType
	im.Size = file.Size
	if err := global.DB.Create(im).Error; err != nil {
		if err := os.Remove(localPath); err != nil {
			global.Log.Error("删除文件失败", zap.String("error", err.Error()))
		}
		global.Log.Error("保存图片记录失败", zap.String("error", err.Error()))
		resp.Msg = "保存图片记录失败"
		return
	}

	return UploadResponse{
		FileName:  imageURL,
		IsSuccess: true,
		Msg:       "上传成功",
		Size:      file.Size,
		Hash:      imageHash,
	}
}

// readFileContent 读取文件内容
func (im *ImageModel) readFileContent(file *multipart.FileHeader) ([]byte, error) {
	fileObj, err := file.Open()
	if err != nil {
		global.Log.Error("打开文件失败", zap.String("error", err.Error()))
		return nil, fmt.Errorf("无法打开文件")
	}

	defer fileObj.Close()

	return io.ReadAll(fileObj)
}

// checkDuplicate 检查重复文件
func (im *ImageModel) checkDuplicate(hash string) (UploadResponse, bool) {
	var existImage ImageModel
	if err := global.DB.Where("hash = ?", hash).First(&existImage).Error; err == nil {
		*im = existImage
		return UploadResponse{
			FileName:  existImage.URL,
			IsSuccess: true,
			Msg:       "图片已存在",
			Size:      existImage.Size,
			Hash:      hash,
		}, true
	}
	return UploadResponse{}, false
}

// newCosClient 创建COS客户端
func newCosClient() *cos.Client {
	cosConfig := global.Config.TencentCos
	u, _ := url.Parse(cosConfig.BucketURL)
	b := &cos.BaseURL{BucketURL: u}
	return cos.NewClient(b, &http.Client{
		Transport: &cos.AuthorizationTransport{
			SecretID:  cosConfig.SecretID,
			SecretKey: cosConfig.SecretKey,
		},
	})
}

// uploadToTencentCOS 上传文件到腾讯云COS，瞬时失败时重试
func (im *ImageModel) uploadToTencentCOS(fileName string, data []byte) (string, error) {
	cosConfig := global.Config.TencentCos
	if cosConfig.BucketURL == "" {
		return "", fmt.Errorf("未配置腾讯云存储桶")
	}
	client := newCosClient()

	err := retry.Do(
		func() error {
			r := bytes.NewReader(data)
			_, err := client.Object.Put(context.Background(), fileName, r, nil)
			return err
		},
		retry.Attempts(3),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		global.Log.Error("上传到腾讯云失败", zap.String("error", err.Error()))
		return "", fmt.Errorf("上传到腾讯云失败: %v", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimRight(cosConfig.BucketURL, "/"), fileName), nil
}

// BeforeDelete 删除钩子：在删除数据库记录前删除对应的文件
func (im *ImageModel) BeforeDelete(tx *gorm.DB) error {
	// 本地副本始终存在，先删本地
	if im.Name != "" {
		if err := os.Remove(im.Name); err != nil && !os.IsNotExist(err) {
			global.Log.Error("删除本地文件失败",
				zap.String("path", im.Name),
				zap.String("error", err.Error()),
			)
			return fmt.Errorf("删除文件失败: %v", err)
		}
	}

	if im.Type != OnlineStorage {
		return nil
	}

	// 删除腾讯云COS中的文件
	cosConfig := global.Config.TencentCos
	client := newCosClient()

	// 从完整URL中提取对象键
	objectKey := strings.TrimPrefix(im.URL, strings.TrimRight(cosConfig.BucketURL, "/")+"/")
	if objectKey == "" || objectKey == im.URL {
		global.Log.Error("无法从路径中提取对象键",
			zap.String("url", im.URL),
		)
		return fmt.Errorf("无效的文件路径")
	}

	_, err := client.Object.Delete(context.Background(), objectKey)
	if err != nil {
		// 如果对象不存在，不返回错误
		if strings.Contains(err.Error(), "NoSuchKey") {
			global.Log.Warn("腾讯云文件不存在",
				zap.String("url", im.URL),
			)
			return nil
		}
		global.Log.Error("删除腾讯云文件失败",
			zap.String("url", im.URL),
			zap.String("objectKey", objectKey),
			zap.String("error", err.Error()),
		)
		return fmt.Errorf("删除腾讯云文件失败: %v", err)
	}
	return nil
}

// AttachImage 为业务对象绑定图片并增加引用计数，独立事务
func AttachImage(imageURL string, relationType int, tid uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		return attachImageTx(tx, imageURL, relationType, tid)
	})
}

// DetachImage 解除业务对象的图片绑定并减少引用计数，独立事务。
// 图片或关联记录不存在时返回NotFound。
func DetachImage(imageURL string, relationType int, tid uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var image ImageModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("url = ?", imageURL).First(&image).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("查询图片失败: %w", err)
		}
		imageFound := err == nil
		var count int64
		if imageFound {
			err = tx.Model(&ImageRelationModel{}).
				Where("type = ? AND tid = ? AND image_id = ?", relationType, tid, image.ID).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("查询图片关联失败: %w", err)
			}
		}
		if err := detachPrecondition(imageFound, count, imageURL); err != nil {
			return err
		}
		return detachImageByIDTx(tx, image, relationType, tid)
	})
}

// detachPrecondition 公开解绑接口的前置校验，图片和关联记录都必须存在
func detachPrecondition(imageFound bool, relationCount int64, imageURL string) error {
	if !imageFound {
		return res.NewBizError(res.FileNotFound, fmt.Sprintf("图片 %s 不存在", imageURL))
	}
	if relationCount == 0 {
		return res.NewNotFound("图片关联记录不存在")
	}
	return nil
}

// nextRefCount 计算一次解绑后的引用计数，计数不会降到0以下
func nextRefCount(num int) int {
	if num <= 1 {
		return 0
	}
	return num - 1
}

// attachImageTx 在事务内绑定图片：加行锁后原子加一并写入关联记录。
// 同一对象同一类型下重复绑定同一图片时直接返回，不重复计数。
func attachImageTx(tx *gorm.DB, imageURL string, relationType int, tid uint) error {
	var image ImageModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("url = ?", imageURL).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewConflict(fmt.Sprintf("图片 %s 不存在，请先上传图片", imageURL))
		}
		return fmt.Errorf("查询图片失败: %w", err)
	}

	var count int64
	err = tx.Model(&ImageRelationModel{}).
		Where("type = ? AND tid = ? AND image_id = ?", relationType, tid, image.ID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("查询图片关联失败: %w", err)
	}
	if count > 0 {
		return nil
	}

	relation := ImageRelationModel{Type: relationType, Tid: tid, ImageID: image.ID}
	if err := tx.Create(&relation).Error; err != nil {
		return fmt.Errorf("创建图片关联失败: %w", err)
	}
	if err := tx.Model(&ImageModel{}).Where("id = ?", image.ID).
		Update("num", gorm.Expr("num + 1")).Error; err != nil {
		return fmt.Errorf("更新引用计数失败: %w", err)
	}
	return nil
}

// detachImageTx 在事务内解绑图片：加行锁后原子减一，归零时连同文件一起删除
func detachImageTx(tx *gorm.DB, imageURL string, relationType int, tid uint) error {
	var image ImageModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("url = ?", imageURL).First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 图片已不存在时视为解绑成功
			return nil
		}
		return fmt.Errorf("查询图片失败: %w", err)
	}
	return detachImageByIDTx(tx, image, relationType, tid)
}

// detachAllImagesTx 解绑业务对象名下某类型的全部图片
func detachAllImagesTx(tx *gorm.DB, relationType int, tid uint) error {
	var relations []ImageRelationModel
	err := tx.Where("type = ? AND tid = ?", relationType, tid).Find(&relations).Error
	if err != nil {
		return fmt.Errorf("查询图片关联失败: %w", err)
	}
	for _, relation := range relations {
		var image ImageModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&image, relation.ImageID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return fmt.Errorf("查询图片失败: %w", err)
		}
		if err := detachImageByIDTx(tx, image, relationType, tid); err != nil {
			return err
		}
	}
	return nil
}

// detachImageByIDTx 删除关联记录并原子减一。调用方已对图片行加行锁，
// image.Num在事务内不会被其他会话改动。
func detachImageByIDTx(tx *gorm.DB, image ImageModel, relationType int, tid uint) error {
	result := tx.Where("type = ? AND tid = ? AND image_id = ?", relationType, tid, image.ID).
		Delete(&ImageRelationModel{})
	if result.Error != nil {
		return fmt.Errorf("删除图片关联失败: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil
	}
	if err := tx.Model(&ImageModel{}).Where("id = ? AND num > 0", image.ID).
		Update("num", gorm.Expr("num - 1")).Error; err != nil {
		return fmt.Errorf("更新引用计数失败: %w", err)
	}

	// 计数归零的图片立即清理，钩子负责删除文件
	if nextRefCount(image.Num) == 0 {
		image.Num = 0
		if err := tx.Unscoped().Delete(&image).Error; err != nil {
			return fmt.Errorf("删除图片失败: %w", err)
		}
	}
	return nil
}

// replaceImageTx 更换业务对象的图片，地址相同则什么都不做
func replaceImageTx(tx *gorm.DB, oldURL, newURL string, relationType int, tid uint) error {
	if oldURL == newURL {
		return nil
	}
	if newURL != "" {
		if err := attachImageTx(tx, newURL, relationType, tid); err != nil {
			return err
		}
	}
	if oldURL != "" {
		if err := detachImageTx(tx, oldURL, relationType, tid); err != nil {
			return err
		}
	}
	return nil
}

// FindImageList 分页查询图片列表
func FindImageList(page PageRequest) ([]ImageModel, int64, error) {
	var images []ImageModel
	var total int64
	if err := global.DB.Model(&ImageModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("查询图片总数失败: %w", err)
	}
	err := global.DB.Order("id DESC").
		Limit(page.PageSize).Offset(page.Offset()).
		Find(&images).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询图片列表失败: %w", err)
	}
	return images, total, nil
}

// ImageDelete 删除图片记录与文件，仍被引用的图片拒绝删除
func ImageDelete(id uint) error {
	return global.DB.Transaction(func(tx *gorm.DB) error {
		var image ImageModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&image, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return res.NewBizError(res.FileNotFound, fmt.Sprintf("图片id为%d的记录不存在", id))
			}
			return fmt.Errorf("查询图片失败: %w", err)
		}
		if image.Num > 0 {
			return res.NewBizError(res.FileReferenced, fmt.Sprintf("图片 %s 仍被%d处引用，无法删除", image.Name, image.Num))
		}
		if err := tx.Unscoped().Delete(&image).Error; err != nil {
			return fmt.Errorf("删除图片失败: %w", err)
		}
		return nil
	})
}
