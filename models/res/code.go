package res

import "net/http"

// ResponseCode 响应码类型
type ResponseCode int

const (
	// 通用客户端错误 (1000-1099)
	BadRequest ResponseCode = 1000 // 错误的请求
	NotFound   ResponseCode = 1004 // 资源未找到
	Conflict   ResponseCode = 1009 // 资源冲突

	// 参数验证错误 (1100-1199)
	InvalidParameter ResponseCode = 1100 // 无效的参数
	MissingParameter ResponseCode = 1101 // 缺少参数

	// 认证授权错误 (1200-1299)
	TokenExpired     ResponseCode = 1200 // 令牌过期
	TokenInvalid     ResponseCode = 1201 // 令牌无效
	TokenMissing     ResponseCode = 1202 // 缺少令牌
	PermissionDenied ResponseCode = 1204 // 权限不足

	// 服务端错误码 (2000-2999)
	ServerError ResponseCode = 2000 // 服务器内部错误
	DBError     ResponseCode = 2100 // 数据库错误

	// 业务错误码 (3000-3999)
	UserNotFound      ResponseCode = 3000 // 用户不存在
	UserAlreadyExists ResponseCode = 3001 // 用户已存在
	PasswordError     ResponseCode = 3002 // 密码错误
	CaptchaError      ResponseCode = 3005 // 验证码错误

	// 文件相关错误 (3300-3399)
	FileUploadFailed ResponseCode = 3300 // 文件上传失败
	FileNotFound     ResponseCode = 3302 // 文件不存在
	FileTooLarge     ResponseCode = 3303 // 文件过大
	InvalidFileType  ResponseCode = 3304 // 无效的文件类型
	FileReferenced   ResponseCode = 3305 // 文件存在引用
)

// CodeMsg 错误码消息映射
var CodeMsg = map[ResponseCode]string{
	BadRequest:       "请求参数错误",
	NotFound:         "资源不存在",
	Conflict:         "资源冲突",
	InvalidParameter: "无效的参数",
	MissingParameter: "缺少必要参数",
	TokenExpired:     "令牌已过期",
	TokenInvalid:     "令牌无效",
	TokenMissing:     "缺少令牌",
	PermissionDenied: "权限不足",
	ServerError:      "服务器内部错误",
	DBError:          "数据库操作失败",

	UserNotFound:      "用户不存在",
	UserAlreadyExists: "用户已存在",
	PasswordError:     "密码错误",
	CaptchaError:      "验证码错误",

	FileUploadFailed: "文件上传失败",
	FileNotFound:     "文件不存在",
	FileTooLarge:     "文件超过大小限制",
	InvalidFileType:  "不支持的文件类型",
	FileReferenced:   "文件存在引用",
}

// GetMsg 获取错误码对应的消息
func GetMsg(code ResponseCode) string {
	msg, ok := CodeMsg[code]
	if ok {
		return msg
	}
	return "未知错误"
}

// StatusOf 业务码映射到HTTP状态码
func StatusOf(code ResponseCode) int {
	switch {
	case code == 0:
		return http.StatusOK
	case code == NotFound || code == UserNotFound || code == FileNotFound:
		return http.StatusNotFound
	case code == Conflict || code == UserAlreadyExists || code == FileReferenced:
		return http.StatusConflict
	case code == PermissionDenied:
		return http.StatusForbidden
	case code >= TokenExpired && code <= 1299:
		return http.StatusUnauthorized
	case code >= 2000 && code <= 2999:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
