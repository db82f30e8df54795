package res

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusOK, StatusOf(0))
	assert.Equal(t, http.StatusNotFound, StatusOf(NotFound))
	assert.Equal(t, http.StatusNotFound, StatusOf(UserNotFound))
	assert.Equal(t, http.StatusNotFound, StatusOf(FileNotFound))
	assert.Equal(t, http.StatusConflict, StatusOf(Conflict))
	assert.Equal(t, http.StatusConflict, StatusOf(UserAlreadyExists))
	assert.Equal(t, http.StatusConflict, StatusOf(FileReferenced))
	assert.Equal(t, http.StatusForbidden, StatusOf(PermissionDenied))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(TokenExpired))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(TokenInvalid))
	assert.Equal(t, http.StatusUnauthorized, StatusOf(TokenMissing))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(ServerError))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(DBError))
	assert.Equal(t, http.StatusBadRequest, StatusOf(InvalidParameter))
	assert.Equal(t, http.StatusBadRequest, StatusOf(CaptchaError))
}

func TestBizError(t *testing.T) {
	err := NewConflict("分类名称已存在")
	var bizErr *BizError
	assert.True(t, AsBizError(err, &bizErr))
	assert.Equal(t, Conflict, bizErr.Code)
	assert.Equal(t, "分类名称已存在", bizErr.Error())

	plain := assert.AnError
	bizErr = nil
	assert.False(t, AsBizError(plain, &bizErr))
}

func TestGetMsg(t *testing.T) {
	assert.Equal(t, "资源冲突", GetMsg(Conflict))
	assert.Equal(t, "未知错误", GetMsg(ResponseCode(99999)))
}
