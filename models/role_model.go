package models

import (
	"errors"
	"fmt"

	"mall/global"
	"mall/models/res"

	"gorm.io/gorm"
)

// RoleModel 角色
type RoleModel struct {
	MODEL
	RoleName string `json:"roleName" gorm:"size:64;uniqueIndex:idx_role_name;comment:角色名称" validate:"required,min=1,max=64"`
	Remark   string `json:"remark" gorm:"size:256;comment:备注"`
}

func (RoleModel) TableName() string {
	return "role"
}

// RoleMenuModel 角色与菜单权限的关联
type RoleMenuModel struct {
	MODEL
	RoleID uint `json:"roleId" gorm:"index:idx_role_menu,priority:1;comment:角色id"`
	MenuID uint `json:"menuId" gorm:"index:idx_role_menu,priority:2;comment:菜单id"`
}

func (RoleMenuModel) TableName() string {
	return "role_menu"
}

// UserRoleModel 用户与角色的关联
type UserRoleModel struct {
	MODEL
	UserID uint `json:"userId" gorm:"index:idx_user_role,priority:1;comment:用户id"`
	RoleID uint `json:"roleId" gorm:"index:idx_user_role,priority:2;comment:角色id"`
}

func (UserRoleModel) TableName() string {
	return "user_role"
}

// FindRoleList 分页查询角色列表，支持按名称模糊搜索
func FindRoleList(page PageRequest, keyword string) ([]RoleModel, int64, error) {
	var roles []RoleModel
	var total int64
	query := global.DB.Model(&RoleModel{})
	if keyword != "" {
		query = query.Where("role_name LIKE ?", "%"+keyword+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("查询角色总数失败: %w", err)
	}
	err := query.Order("id DESC").
		Limit(page.PageSize).Offset(page.Offset()).
		Find(&roles).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询角色列表失败: %w", err)
	}
	return roles, total, nil
}

// FindAllRoles 查询全部角色，供用户授权下拉使用
func FindAllRoles() ([]RoleModel, error) {
	var roles []RoleModel
	if err := global.DB.Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("查询角色失败: %w", err)
	}
	return roles, nil
}

// Create 创建角色，名称唯一
func (r *RoleModel) Create() error {
	if err := r.checkName(0); err != nil {
		return err
	}
	if err := global.DB.Create(r).Error; err != nil {
		return fmt.Errorf("创建角色失败: %w", err)
	}
	return nil
}

// Update 更新角色，名称唯一（排除自身）
func (r *RoleModel) Update() error {
	if r.ID == 0 {
		return res.NewBizError(res.MissingParameter, "没有携带id！")
	}
	var role RoleModel
	if err := global.DB.First(&role, r.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("角色id为%d的记录不存在", r.ID))
		}
		return fmt.Errorf("查询角色失败: %w", err)
	}
	if err := r.checkName(r.ID); err != nil {
		return err
	}
	updates := map[string]interface{}{
		"role_name": r.RoleName,
		"remark":    r.Remark,
	}
	if err := global.DB.Model(&role).Updates(updates).Error; err != nil {
		return fmt.Errorf("更新角色失败: %w", err)
	}
	return nil
}

// RoleDelete 删除角色，连同菜单授权与用户关联一起清理，整体在一个事务内
func RoleDelete(id uint) error {
	var role RoleModel
	if err := global.DB.First(&role, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("角色id为%d的记录不存在", id))
		}
		return fmt.Errorf("查询角色失败: %w", err)
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&RoleMenuModel{}).Error; err != nil {
			return fmt.Errorf("删除角色授权失败: %w", err)
		}
		if err := tx.Where("role_id = ?", id).Delete(&UserRoleModel{}).Error; err != nil {
			return fmt.Errorf("删除用户角色关联失败: %w", err)
		}
		if err := tx.Delete(&role).Error; err != nil {
			return fmt.Errorf("删除角色失败: %w", err)
		}
		return nil
	})
}

// RoleBatchDelete 批量删除角色，一个删不掉全部回滚
func RoleBatchDelete(ids []uint) error {
	if len(ids) == 0 {
		return res.NewBizError(res.MissingParameter, "没有携带id！")
	}
	var roles []RoleModel
	if err := global.DB.Where("id IN ?", ids).Find(&roles).Error; err != nil {
		return fmt.Errorf("查询角色失败: %w", err)
	}
	if len(roles) != len(ids) {
		return res.NewNotFound("部分角色不存在")
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id IN ?", ids).Delete(&RoleMenuModel{}).Error; err != nil {
			return fmt.Errorf("删除角色授权失败: %w", err)
		}
		if err := tx.Where("role_id IN ?", ids).Delete(&UserRoleModel{}).Error; err != nil {
			return fmt.Errorf("删除用户角色关联失败: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&RoleModel{}).Error; err != nil {
			return fmt.Errorf("删除角色失败: %w", err)
		}
		return nil
	})
}

// FindRolesByUser 查询用户拥有的角色
func FindRolesByUser(userID uint) ([]RoleModel, error) {
	var roles []RoleModel
	err := global.DB.
		Joins("JOIN user_role ON user_role.role_id = role.id AND user_role.deleted_at IS NULL").
		Where("user_role.user_id = ?", userID).
		Find(&roles).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户角色失败: %w", err)
	}
	return roles, nil
}

// FindMenusByUser 查询用户经由角色获得的全部菜单权限，去重后返回
func FindMenusByUser(userID uint) ([]MenuModel, error) {
	var roleIDs []uint
	err := global.DB.Model(&UserRoleModel{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, fmt.Errorf("查询用户角色失败: %w", err)
	}
	if len(roleIDs) == 0 {
		return []MenuModel{}, nil
	}
	var menuIDs []uint
	err = global.DB.Model(&RoleMenuModel{}).
		Where("role_id IN ?", roleIDs).
		Distinct("menu_id").
		Pluck("menu_id", &menuIDs).Error
	if err != nil {
		return nil, fmt.Errorf("查询角色授权失败: %w", err)
	}
	if len(menuIDs) == 0 {
		return []MenuModel{}, nil
	}
	var menus []MenuModel
	if err := global.DB.Where("id IN ?", menuIDs).Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("查询菜单失败: %w", err)
	}
	return menus, nil
}

// checkName 检查角色名称是否已存在
func (r *RoleModel) checkName(excludeID uint) error {
	var count int64
	query := global.DB.Model(&RoleModel{}).Where("role_name = ?", r.RoleName)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查角色名称失败: %w", err)
	}
	if count > 0 {
		return res.NewConflict(fmt.Sprintf("角色名称 %s 已存在，请重新填写角色名称", r.RoleName))
	}
	return nil
}
