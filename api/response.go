package api

import (
	"errors"
	"net/http"

	"expense-api/config"
	"expense-api/validation"

	"github.com/gin-gonic/gin"
)

// Response 通用响应结构，读取接口直接返回资源本身
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应，直接返回数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithMessage 带消息的成功响应
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Message: message,
		Data:    data,
	})
}

// Created 201 响应
func Created(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, Response{Message: message})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Message: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 错误响应
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// ValidationError 校验失败返回第一条错误信息
func ValidationError(c *gin.Context, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		BadRequest(c, verr.Message)
		return
	}
	BadRequest(c, config.SafeErrorMessage(err, "Invalid request"))
}

// bindJSON 解析请求体，空请求体视为 {}
func bindJSON(c *gin.Context, obj interface{}) error {
	return validation.BindError(c.ShouldBindJSON(obj))
}
