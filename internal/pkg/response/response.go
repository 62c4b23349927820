package response

import (
	"Folio/internal/api/dto"
	"Folio/internal/service"
	stdjson "encoding/json"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误，5xx 只返回哨兵文案，不暴露底层原因
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, validationMessage(ve))
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}
	var syntaxError *json.SyntaxError
	if errors.As(err, &syntaxError) {
		Fail(c, BadRequest, "Json错误")
		return
	}
	// gin 默认使用标准库解码请求体
	var stdTypeError *stdjson.UnmarshalTypeError
	var stdSyntaxError *stdjson.SyntaxError
	if errors.As(err, &stdTypeError) || errors.As(err, &stdSyntaxError) {
		Fail(c, BadRequest, "Json错误")
		return
	}
	var numError *strconv.NumError
	if errors.As(err, &numError) {
		Fail(c, BadRequest, service.ErrParamInvalid.Error())
		return
	}

	sentinel, code, ok := service.Lookup(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		Fail(c, InternalServerError, service.UnExpectedError.Error())
		return
	}
	if code >= InternalServerError {
		Fail(c, code, sentinel.Error())
		return
	}
	Fail(c, code, err.Error())
}

func validationMessage(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return service.ErrParamInvalid.Error()
	}
	fe := ve[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s: %s 校验失败(%s=%s)", service.ErrParamInvalid.Error(), fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: %s 校验失败(%s)", service.ErrParamInvalid.Error(), fe.Field(), fe.Tag())
}
