package index

import (
	"mall/global"
	"mall/middleware"
	"mall/models"
	"mall/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IndexInfoResponse struct {
	Name    string   `json:"name"`
	Avatar  string   `json:"avatar"`
	Roles   []string `json:"roles"`
	Buttons []string `json:"buttons"`
	Routes  []string `json:"routes"`
}

// IndexInfo 当前登录用户信息，附带角色与按钮/路由权限标识
func (i *Index) IndexInfo(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		res.Error(c, res.TokenInvalid, "无法获取用户信息")
		return
	}

	user, err := models.FindUserByUsername(claims.Username)
	if err != nil {
		global.Log.Error("models.FindUserByUsername() failed", zap.String("error", err.Error()))
		res.ErrorFrom(c, err, res.ServerError, "查询用户信息失败")
		return
	}

	roles, err := models.FindRolesByUser(user.ID)
	if err != nil {
		global.Log.Error("models.FindRolesByUser() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询用户角色失败")
		return
	}
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, role.RoleName)
	}

	menus, err := models.FindMenusByUser(user.ID)
	if err != nil {
		global.Log.Error("models.FindMenusByUser() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "查询用户权限失败")
		return
	}
	buttons := make([]string, 0)
	routes := make([]string, 0)
	for _, menu := range menus {
		if menu.Code == "" {
			continue
		}
		switch menu.Type {
		case models.MenuTypeButton:
			buttons = append(buttons, menu.Code)
		default:
			routes = append(routes, menu.Code)
		}
	}

	res.Success(c, IndexInfoResponse{
		Name:    user.Name,
		Avatar:  user.Avatar,
		Roles:   roleNames,
		Buttons: buttons,
		Routes:  routes,
	})
}
