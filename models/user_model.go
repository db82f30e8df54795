package models

import (
	"errors"
	"fmt"
	"strings"

	"mall/global"
	"mall/models/res"
	"mall/utils"

	"gorm.io/gorm"
)

// UserModel 后台用户
type UserModel struct {
	MODEL
	Username string `json:"username" gorm:"size:64;uniqueIndex:idx_username;comment:登录账号" validate:"required,min=3,max=64"`
	Password string `json:"-" gorm:"size:128;comment:密码"`
	Name     string `json:"name" gorm:"size:64;comment:用户昵称"`
	Phone    string `json:"phone" gorm:"size:32;comment:手机号"`
	Avatar   string `json:"avatar" gorm:"size:256;comment:头像地址"`

	RoleName string `json:"roleName" gorm:"-"` // 角色名称拼接，仅列表展示用
}

func (UserModel) TableName() string {
	return "user"
}

// FindUserByUsername 按登录账号查询用户
func FindUserByUsername(username string) (*UserModel, error) {
	var user UserModel
	if err := global.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, res.NewBizError(res.UserNotFound, "用户不存在")
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return &user, nil
}

// VerifyLogin 校验账号密码，成功返回用户
func VerifyLogin(username, password string) (*UserModel, error) {
	user, err := FindUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(user.Password, password) {
		return nil, res.NewBizError(res.PasswordError, "密码错误")
	}
	return user, nil
}

// FindUserList 分页查询用户列表，支持按账号或昵称模糊搜索，附带角色名称
func FindUserList(page PageRequest, keyword string) ([]UserModel, int64, error) {
	var users []UserModel
	var total int64
	query := global.DB.Model(&UserModel{})
	if keyword != "" {
		query = query.Where("username LIKE ? OR name LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("查询用户总数失败: %w", err)
	}
	err := query.Order("id DESC").
		Limit(page.PageSize).Offset(page.Offset()).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("查询用户列表失败: %w", err)
	}

	for i := range users {
		roles, err := FindRolesByUser(users[i].ID)
		if err != nil {
			return nil, 0, err
		}
		names := make([]string, 0, len(roles))
		for _, role := range roles {
			names = append(names, role.RoleName)
		}
		users[i].RoleName = strings.Join(names, ",")
	}
	return users, total, nil
}

// UserSaveRequest 保存用户请求，id为0表示新增
type UserSaveRequest struct {
	ID       uint   `json:"id"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password"`
	Name     string `json:"name" validate:"required,min=1,max=64"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
}

// SaveUser 新建或更新用户。新建必须携带密码；更新时密码为空表示不修改。
// 头像变化时换绑图片引用。
func SaveUser(req *UserSaveRequest) error {
	if req.ID == 0 {
		if req.Password == "" {
			return res.NewBizError(res.MissingParameter, "密码不能为空")
		}
		if err := checkUsername(req.Username, 0); err != nil {
			return err
		}
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("密码加密失败: %w", err)
		}
		return global.DB.Transaction(func(tx *gorm.DB) error {
			user := UserModel{
				Username: req.Username,
				Password: hashed,
				Name:     req.Name,
				Phone:    req.Phone,
				Avatar:   req.Avatar,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("创建用户失败: %w", err)
			}
			if user.Avatar != "" {
				return attachImageTx(tx, user.Avatar, ImageRelationAvatar, user.ID)
			}
			return nil
		})
	}

	var user UserModel
	if err := global.DB.First(&user, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewBizError(res.UserNotFound, fmt.Sprintf("用户id为%d的记录不存在", req.ID))
		}
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if err := checkUsername(req.Username, user.ID); err != nil {
		return err
	}
	updates := map[string]interface{}{
		"username": req.Username,
		"name":     req.Name,
		"phone":    req.Phone,
		"avatar":   req.Avatar,
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("密码加密失败: %w", err)
		}
		updates["password"] = hashed
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return fmt.Errorf("更新用户失败: %w", err)
		}
		return replaceImageTx(tx, user.Avatar, req.Avatar, ImageRelationAvatar, user.ID)
	})
}

// UserDelete 删除用户，连同角色关联与头像引用一起清理
func UserDelete(id uint) error {
	var user UserModel
	if err := global.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewBizError(res.UserNotFound, fmt.Sprintf("用户id为%d的记录不存在", id))
		}
		return fmt.Errorf("查询用户失败: %w", err)
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		return userDeleteTx(tx, &user)
	})
}

// UserBatchDelete 批量删除用户，一个删不掉全部回滚
func UserBatchDelete(ids []uint) error {
	if len(ids) == 0 {
		return res.NewBizError(res.MissingParameter, "没有携带id！")
	}
	var users []UserModel
	if err := global.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if len(users) != len(ids) {
		return res.NewBizError(res.UserNotFound, "部分用户不存在")
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		for i := range users {
			if err := userDeleteTx(tx, &users[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func userDeleteTx(tx *gorm.DB, user *UserModel) error {
	if user.Avatar != "" {
		if err := detachImageTx(tx, user.Avatar, ImageRelationAvatar, user.ID); err != nil {
			return err
		}
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&UserRoleModel{}).Error; err != nil {
		return fmt.Errorf("删除用户角色关联失败: %w", err)
	}
	if err := tx.Delete(user).Error; err != nil {
		return fmt.Errorf("删除用户失败: %w", err)
	}
	return nil
}

// AssignRolesToUser 为用户分配角色：新增缺少的关联，移除不在列表中的关联
func AssignRolesToUser(userID uint, roleIDs []uint) error {
	var count int64
	if err := global.DB.Model(&UserModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("查询用户失败: %w", err)
	}
	if count == 0 {
		return res.NewBizError(res.UserNotFound, fmt.Sprintf("用户id为%d的记录不存在", userID))
	}

	var relations []UserRoleModel
	if err := global.DB.Where("user_id = ?", userID).Find(&relations).Error; err != nil {
		return fmt.Errorf("查询用户角色关联失败: %w", err)
	}
	oldIDs := make([]uint, 0, len(relations))
	for _, relation := range relations {
		oldIDs = append(oldIDs, relation.RoleID)
	}
	toAdd, toRemove := DiffIDSets(roleIDs, oldIDs)

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if len(toAdd) > 0 {
			rows := make([]UserRoleModel, 0, len(toAdd))
			for _, roleID := range toAdd {
				rows = append(rows, UserRoleModel{UserID: userID, RoleID: roleID})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("新增用户角色关联失败: %w", err)
			}
		}
		if len(toRemove) > 0 {
			if err := tx.Where("user_id = ? AND role_id IN ?", userID, toRemove).Delete(&UserRoleModel{}).Error; err != nil {
				return fmt.Errorf("移除用户角色关联失败: %w", err)
			}
		}
		return nil
	})
}

// checkUsername 检查登录账号是否已存在
func checkUsername(username string, excludeID uint) error {
	var count int64
	query := global.DB.Model(&UserModel{}).Where("username = ?", username)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查登录账号失败: %w", err)
	}
	if count > 0 {
		return res.NewBizError(res.UserAlreadyExists, fmt.Sprintf("登录账号 %s 已存在，请重新填写", username))
	}
	return nil
}
