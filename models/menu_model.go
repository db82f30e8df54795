package models

import (
	"errors"
	"fmt"

	"mall/global"
	"mall/models/res"

	"gorm.io/gorm"
)

// 菜单类型
const (
	MenuTypeMenu   = 1 // 路由菜单
	MenuTypeButton = 2 // 按钮权限
)

// MenuModel 菜单/按钮权限，按pid构成深度不限的森林
type MenuModel struct {
	MODEL
	Name   string `json:"name" gorm:"size:64;uniqueIndex:idx_menu_name;comment:菜单名称" validate:"required,min=1,max=64"`
	Pid    uint   `json:"pid" gorm:"index;default:0;comment:父菜单id"`
	Level  int    `json:"level" gorm:"comment:菜单层级"`
	Code   string `json:"code" gorm:"size:128;comment:权限标识"`
	ToCode string `json:"toCode" gorm:"size:128;comment:跳转权限标识"`
	Type   int    `json:"type" gorm:"default:1;comment:类型 1菜单 2按钮"`
}

func (MenuModel) TableName() string {
	return "menu"
}

// MenuTree 菜单树节点
type MenuTree struct {
	MenuModel
	Select   bool       `json:"select"`
	Children []MenuTree `json:"children"`
}

// BuildMenuTree 将菜单平铺列表组装成树。
// selected 不为nil时同时标记节点选中状态（角色授权视图）。
func BuildMenuTree(menus []MenuModel, pid uint, selected map[uint]bool) []MenuTree {
	tree := make([]MenuTree, 0)
	for _, menu := range menus {
		if menu.Pid != pid {
			continue
		}
		node := MenuTree{
			MenuModel: menu,
			Select:    selected[menu.ID],
			Children:  BuildMenuTree(menus, menu.ID, selected),
		}
		tree = append(tree, node)
	}
	return tree
}

// FindMenuTree 查找所有菜单项并生成树状结构返回
func FindMenuTree() ([]MenuTree, error) {
	var menus []MenuModel
	if err := global.DB.Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("查询菜单失败: %w", err)
	}
	return BuildMenuTree(menus, 0, nil), nil
}

// Create 创建菜单，名称唯一
func (m *MenuModel) Create() error {
	if err := m.checkName(0); err != nil {
		return err
	}
	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("创建菜单失败: %w", err)
		}
		return nil
	})
}

// Update 更新菜单，名称唯一（排除自身）
func (m *MenuModel) Update() error {
	if m.ID == 0 {
		return res.NewBizError(res.MissingParameter, "没有携带id！")
	}
	var menu MenuModel
	if err := global.DB.First(&menu, m.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res.NewNotFound(fmt.Sprintf("菜单id为%d的记录不存在", m.ID))
		}
		return fmt.Errorf("查询菜单失败: %w", err)
	}
	if err := m.checkName(m.ID); err != nil {
		return err
	}
	updates := map[string]interface{}{
		"name":    m.Name,
		"pid":     m.Pid,
		"level":   m.Level,
		"code":    m.Code,
		"to_code": m.ToCode,
		"type":    m.Type,
	}
	if err := global.DB.Model(&menu).Updates(updates).Error; err != nil {
		return fmt.Errorf("更新菜单失败: %w", err)
	}
	return nil
}

// MenuDelete 删除菜单及其全部子菜单，并清理角色授权记录，整体在一个事务内
func MenuDelete(id uint) error {
	var all []MenuModel
	if err := global.DB.Find(&all).Error; err != nil {
		return fmt.Errorf("查询菜单失败: %w", err)
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
		return res.NewNotFound(fmt.Sprintf("菜单id为%d的记录不存在", id))
	}

	ids := CollectDescendantIDs(children, []uint{id})

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id IN ?", ids).Delete(&RoleMenuModel{}).Error; err != nil {
			return fmt.Errorf("删除菜单授权失败: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&MenuModel{}).Error; err != nil {
			return fmt.Errorf("删除菜单失败: %w", err)
		}
		return nil
	})
}

// MenuTreeForRole 获取带选中状态的菜单树，用于角色授权展示
func MenuTreeForRole(roleID uint) ([]MenuTree, error) {
	var menus []MenuModel
	if err := global.DB.Find(&menus).Error; err != nil {
		return nil, fmt.Errorf("查询菜单失败: %w", err)
	}
	var grants []RoleMenuModel
	if err := global.DB.Where("role_id = ?", roleID).Find(&grants).Error; err != nil {
		return nil, fmt.Errorf("查询角色授权失败: %w", err)
	}
	selected := make(map[uint]bool, len(grants))
	for _, grant := range grants {
		selected[grant.MenuID] = true
	}
	return BuildMenuTree(menus, 0, selected), nil
}

// AssignMenusToRole 为角色分配菜单权限：新增缺少的授权，移除不在列表中的授权
func AssignMenusToRole(roleID uint, menuIDs []uint) error {
	var grants []RoleMenuModel
	if err := global.DB.Where("role_id = ?", roleID).Find(&grants).Error; err != nil {
		return fmt.Errorf("查询角色授权失败: %w", err)
	}
	oldIDs := make([]uint, 0, len(grants))
	for _, grant := range grants {
		oldIDs = append(oldIDs, grant.MenuID)
	}
	toAdd, toRemove := DiffIDSets(menuIDs, oldIDs)

	return global.DB.Transaction(func(tx *gorm.DB) error {
		if len(toAdd) > 0 {
			rows := make([]RoleMenuModel, 0, len(toAdd))
			for _, menuID := range toAdd {
				rows = append(rows, RoleMenuModel{RoleID: roleID, MenuID: menuID})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("新增角色授权失败: %w", err)
			}
		}
		if len(toRemove) > 0 {
			if err := tx.Where("role_id = ? AND menu_id IN ?", roleID, toRemove).Delete(&RoleMenuModel{}).Error; err != nil {
				return fmt.Errorf("移除角色授权失败: %w", err)
			}
		}
		return nil
	})
}

// checkName 检查菜单名称是否已存在
func (m *MenuModel) checkName(excludeID uint) error {
	if m.Name == "" {
		return res.NewBizError(res.MissingParameter, "菜单名称不能为空，请填写菜单名称")
	}
	var count int64
	query := global.DB.Model(&MenuModel{}).Where("name = ?", m.Name)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("检查菜单名称失败: %w", err)
	}
	if count > 0 {
		return res.NewConflict(fmt.Sprintf("菜单名称 %s 已存在，请重新填写菜单名称", m.Name))
	}
	return nil
}
