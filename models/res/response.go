package res

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StandardResponse 标准响应结构
type StandardResponse struct {
	Success bool         `json:"success"` // 请求是否成功
	Code    ResponseCode `json:"code"`    // 业务状态码
	Message string       `json:"message"` // 响应信息
	Data    interface{}  `json:"data"`    // 响应数据
}

// PageData 分页数据结构
type PageData[T any] struct {
	Records     T     `json:"records"`     // 数据列表
	Total       int64 `json:"total"`       // 总记录数
	PageNum     int   `json:"pageNum"`     // 当前页码
	PageSize    int   `json:"pageSize"`    // 每页大小
	Pages       int   `json:"pages"`       // 总页数
	HasMore     bool  `json:"hasMore"`     // 是否有更多数据
	SearchCount bool  `json:"searchCount"` // 兼容前端表格组件
}

// 成功响应
func Success(c *gin.Context, data interface{}) {
	response(c, http.StatusOK, 0, "success", data)
}

// 成功响应带消息
func SuccessWithMsg(c *gin.Context, data interface{}, msg string) {
	response(c, http.StatusOK, 0, msg, data)
}

// NewPageData 组装分页数据
func NewPageData[T any](records T, total int64, pageNum, pageSize int) PageData[T] {
	pages := (int(total) + pageSize - 1) / pageSize
	return PageData[T]{
		Records:     records,
		Total:       total,
		PageNum:     pageNum,
		PageSize:    pageSize,
		Pages:       pages,
		HasMore:     pageNum < pages,
		SearchCount: true,
	}
}

// 分页响应
func SuccessWithPage[T any](c *gin.Context, records T, total int64, pageNum, pageSize int) {
	Success(c, NewPageData(records, total, pageNum, pageSize))
}

// 错误响应，HTTP状态码由业务码推导
func Error(c *gin.Context, code ResponseCode, msg string) {
	response(c, StatusOf(code), code, msg, nil)
}

// HTTP错误响应
func HttpError(c *gin.Context, httpStatus int, code ResponseCode, msg string) {
	response(c, httpStatus, code, msg, nil)
}

// ErrorFrom 根据错误类型选择业务码，业务错误透出消息，其余按兜底处理
func ErrorFrom(c *gin.Context, err error, fallbackCode ResponseCode, fallbackMsg string) {
	var bizErr *BizError
	if AsBizError(err, &bizErr) {
		Error(c, bizErr.Code, bizErr.Msg)
		return
	}
	Error(c, fallbackCode, fallbackMsg)
}

// 统一响应处理
func response(c *gin.Context, httpStatus int, code ResponseCode, msg string, data interface{}) {
	response := StandardResponse{
		Success: code == 0,
		Code:    code,
		Message: msg,
		Data:    data,
	}

	c.JSON(httpStatus, response)
}
