package book

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// 字段错误原因标签
// 设计说明:
// 1. 标签是机器可读的原因码,展示层负责翻译成用户提示
// 2. 与模板解耦,测试直接断言标签即可
const (
	ReasonBlank         = "blank"          // 必填字段为空
	ReasonTooShort      = "too_short"      // 长度不足
	ReasonTooLong       = "too_long"       // 超出最大长度
	ReasonInvalidFormat = "invalid_format" // 格式不合法(ISBN)
	ReasonInvalidDate   = "invalid_date"   // 日期无法解析
	ReasonNotUnique     = "not_unique"     // ISBN已被其他图书占用
)

// isbnPattern ISBN格式:恰好10位或13位纯数字,不允许连字符和字母
var isbnPattern = regexp.MustCompile(`^\d{10}(\d{3})?$`)

// FieldErrors 字段名 → 错误原因标签
// 同一字段只保留第一个错误,保证提示稳定
type FieldErrors map[string]string

// Add 记录字段错误(已有错误不覆盖)
func (e FieldErrors) Add(field, reason string) {
	if _, exists := e[field]; !exists {
		e[field] = reason
	}
}

// Check 当ok为false时记录字段错误
func (e FieldErrors) Check(ok bool, field, reason string) {
	if !ok {
		e.Add(field, reason)
	}
}

// Validate 校验实体的字段级规则
// 设计说明:
// 1. 每个字段独立检查,一次性收集全部问题(调用方可整体展示)
// 2. 唯一性不在这里检查,需要查库,由领域服务负责
// 规则:
// - authors: 去空白后4~255个字符
// - title: 1~255个字符
// - publication_date: 必填
// - isbn: 恰好10位或13位数字
func (b *Book) Validate() FieldErrors {
	errs := make(FieldErrors)

	// 长度按字符数统计而不是字节数,与utf8mb4列的VARCHAR(255)语义一致
	authors := strings.TrimSpace(b.Authors)
	errs.Check(authors != "", "authors", ReasonBlank)
	errs.Check(utf8.RuneCountInString(authors) >= 4, "authors", ReasonTooShort)
	errs.Check(utf8.RuneCountInString(authors) <= 255, "authors", ReasonTooLong)

	title := strings.TrimSpace(b.Title)
	errs.Check(title != "", "title", ReasonBlank)
	errs.Check(utf8.RuneCountInString(title) <= 255, "title", ReasonTooLong)

	errs.Check(!b.PublicationDate.IsZero(), "publication_date", ReasonBlank)

	errs.Check(b.ISBN != "", "isbn", ReasonBlank)
	errs.Check(isbnPattern.MatchString(b.ISBN), "isbn", ReasonInvalidFormat)

	return errs
}

// IsValidISBN 校验ISBN格式(10位或13位纯数字)
func IsValidISBN(isbn string) bool {
	return isbnPattern.MatchString(isbn)
}
