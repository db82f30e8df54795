package models

import (
	"mall/models/ctypes"

	"gorm.io/gorm"
)

type MODEL struct {
	ID        uint           `gorm:"primaryKey;comment:id" json:"id"`
	CreatedAt ctypes.MyTime  `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP;comment:创建时间" json:"createTime"`
	UpdatedAt ctypes.MyTime  `gorm:"type:datetime NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP;comment:更新时间" json:"updateTime"`
	DeletedAt gorm.DeletedAt `gorm:"type:datetime NULL;index;comment:删除时间" json:"-"`
}

type PageRequest struct {
	PageNum  int `json:"pageNum" uri:"pageNum" validate:"required,gt=0"`
	PageSize int `json:"pageSize" uri:"pageSize" validate:"required,gt=0,lte=200"`
}

// Offset 分页偏移量
func (p PageRequest) Offset() int {
	return (p.PageNum - 1) * p.PageSize
}

type IDRequest struct {
	ID uint `json:"id" uri:"id" form:"id" validate:"required,gt=0"`
}
