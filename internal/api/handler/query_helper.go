package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ilyasbozdemir/personel-duty-tracking/pkg/response"
)

// MustGetParam 读取非空路径参数。
// 为空时写入 400 响应并返回 false，调用方应直接 return。
func MustGetParam(c *gin.Context, key string) (string, bool) {
	v := strings.TrimSpace(c.Param(key))
	if v == "" {
		response.ErrorWithDetails(c, 400, 10001, "Geçersiz parametre", key+" boş olamaz")
		return "", false
	}
	return v, true
}

// OptionalIntQuery 读取可选的整数查询参数，缺省时返回 nil。
// 无法解析时写入 400 响应并返回 false。
func OptionalIntQuery(c *gin.Context, key string) (*int, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		response.ErrorWithDetails(c, 400, 10001, "Geçersiz parametre", key+" tam sayı olmalıdır")
		return nil, false
	}
	return &v, true
}
