package res

import "errors"

// BizError 业务错误，携带业务码和面向前端的消息
type BizError struct {
	Code ResponseCode
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

// NewBizError 创建业务错误
func NewBizError(code ResponseCode, msg string) error {
	return &BizError{Code: code, Msg: msg}
}

// NewConflict 名称冲突等资源冲突错误
func NewConflict(msg string) error {
	return NewBizError(Conflict, msg)
}

// NewNotFound 资源不存在错误
func NewNotFound(msg string) error {
	return NewBizError(NotFound, msg)
}

// AsBizError errors.As 的简单包装
func AsBizError(err error, target **BizError) bool {
	return errors.As(err, target)
}
