package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrDocumentNotFound = errors.New("文档不存在")
	ErrPersistence      = errors.New("数据保存失败")
	ErrTooManyRequests  = errors.New("请求过于频繁")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrDocumentNotFound: NotFound,
	ErrPersistence:      InternalServerError,
	ErrTooManyRequests:  TooManyRequests,
	UnExpectedError:     InternalServerError,
}

// Lookup 按 errors.Is 匹配哨兵错误及其业务码，包装过的错误同样生效
func Lookup(err error) (error, int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return err, code, true
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return sentinel, code, true
		}
	}
	return nil, 0, false
}
