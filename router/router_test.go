package router

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(t *testing.T, register func(*RouterGroup)) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	group := RouterGroup{engine.Group("api")}
	register(&group)

	routes := make(map[string]bool)
	for _, route := range engine.Routes() {
		routes[route.Method+" "+route.Path] = true
	}
	return routes
}

func TestTrademarkRoutes(t *testing.T) {
	routes := registeredRoutes(t, func(r *RouterGroup) { r.TrademarkRouter() })
	assert.True(t, routes["GET /api/baseTrademark/:pageNum/:pageSize"])
	assert.True(t, routes["GET /api/baseTrademark/getTrademarkList"])
	assert.True(t, routes["POST /api/baseTrademark/save"])
	assert.True(t, routes["PUT /api/baseTrademark/update"])
	assert.True(t, routes["DELETE /api/baseTrademark/remove/:id"])
}

func TestImageRoutes(t *testing.T) {
	routes := registeredRoutes(t, func(r *RouterGroup) { r.ImageRouter() })
	assert.True(t, routes["POST /api/fileUpload"])
	assert.True(t, routes["GET /api/fileUpload/list/:pageNum/:pageSize"])
	assert.True(t, routes["DELETE /api/fileUpload/delete/:id"])
	assert.True(t, routes["POST /api/file/addImageRelation"])
	assert.True(t, routes["POST /api/file/removeImageRelation"])
}
