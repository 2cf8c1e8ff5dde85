// Package dataurl 编解码图片集合中使用的 base64 data URL（data:<mime>;base64,<payload>）
package dataurl

import (
	"errors"
	"fmt"
	"strings"

	vdataurl "github.com/vincent-petithory/dataurl"
)

var (
	ErrEmpty       = errors.New("data url 为空")
	ErrInvalid     = errors.New("data url 格式无效")
	ErrNotBase64   = errors.New("data url 必须为 base64 编码")
	ErrMissingMIME = errors.New("data url 缺少 MIME 类型")
)

const fallbackMIME = "application/octet-stream"

// Encode 生成 base64 data URL；mime 的参数部分（如 charset）会被丢弃
func Encode(mime string, payload []byte) string {
	return vdataurl.New(payload, cleanMIME(mime)).String()
}

// Decode 解析 data URL，返回 MIME 类型（type/subtype）与解码后的内容
// 只接受 base64 编码，且必须显式给出 MIME 类型
func Decode(value string) (string, []byte, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return "", nil, ErrEmpty
	}
	if !strings.HasPrefix(raw, "data:") {
		return "", nil, ErrInvalid
	}
	// 省略 MIME 时解析库会补上 text/plain，这里提前拒绝
	if rest := raw[len("data:"):]; strings.HasPrefix(rest, ";") || strings.HasPrefix(rest, ",") {
		return "", nil, ErrMissingMIME
	}

	du, err := vdataurl.DecodeString(raw)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if du.Encoding != vdataurl.EncodingBase64 {
		return "", nil, ErrNotBase64
	}
	return du.ContentType(), du.Data, nil
}

func cleanMIME(mime string) string {
	base, _, _ := strings.Cut(mime, ";")
	base = strings.TrimSpace(base)
	if typ, sub, ok := strings.Cut(base, "/"); !ok || typ == "" || sub == "" || strings.Contains(sub, "/") {
		return fallbackMIME
	}
	return base
}
