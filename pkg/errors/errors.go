package errors

import "errors"

// ErrValidation 参数校验失败：各业务模块的校验错误都包装此错误，
// Handler 层可统一映射为 400，且保证校验失败时不发生任何写入
var ErrValidation = errors.New("参数校验失败")
