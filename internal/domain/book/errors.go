package book

import (
	"fmt"

	apperrors "github.com/xiebiao/mylibrary/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在(数据库唯一索引冲突)
	ErrISBNDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "ISBN号已存在")
)

// ValidationError 字段校验失败
// 设计说明:
// 1. 携带完整的FieldErrors,调用方可逐字段展示
// 2. 属于用户可纠正的输入问题,不当作系统故障记录
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("图书字段校验失败: %v", e.Fields)
}

// NewValidationError 创建校验错误
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}
