package book

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// validBook 构造一本字段全部合法的图书
func validBook() *Book {
	return NewBook("Doe, J.", "A title", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "1234567890123")
}

// TestValidate 测试字段级校验规则
func TestValidate(t *testing.T) {
	t.Run("合法图书无错误", func(t *testing.T) {
		errs := validBook().Validate()
		assert.Empty(t, errs)
	})

	t.Run("必填字段为空", func(t *testing.T) {
		b := &Book{}
		errs := b.Validate()

		assert.Equal(t, ReasonBlank, errs["authors"])
		assert.Equal(t, ReasonBlank, errs["title"])
		assert.Equal(t, ReasonBlank, errs["publication_date"])
		assert.Equal(t, ReasonBlank, errs["isbn"])
	})

	t.Run("作者过短", func(t *testing.T) {
		b := validBook()
		b.Authors = "Doe"
		assert.Equal(t, ReasonTooShort, b.Validate()["authors"])
	})

	t.Run("作者全是空白等同于为空", func(t *testing.T) {
		b := validBook()
		b.Authors = "   "
		assert.Equal(t, ReasonBlank, b.Validate()["authors"])
	})

	t.Run("作者超长", func(t *testing.T) {
		b := validBook()
		for len(b.Authors) <= 255 {
			b.Authors += "x"
		}
		assert.Equal(t, ReasonTooLong, b.Validate()["authors"])
	})

	t.Run("书名超长", func(t *testing.T) {
		b := validBook()
		for len(b.Title) <= 255 {
			b.Title += "x"
		}
		assert.Equal(t, ReasonTooLong, b.Validate()["title"])
	})

	// 长度规则按字符数统计,多字节输入不能按字节误判
	t.Run("中文作者2个字过短", func(t *testing.T) {
		b := validBook()
		b.Authors = "間宮"
		assert.Equal(t, ReasonTooShort, b.Validate()["authors"])
	})

	t.Run("中文作者4个字合法", func(t *testing.T) {
		b := validBook()
		b.Authors = "司馬遼太"
		assert.NotContains(t, b.Validate(), "authors")
	})

	t.Run("中文书名100个字不算超长", func(t *testing.T) {
		b := validBook()
		b.Title = strings.Repeat("书", 100)
		assert.NotContains(t, b.Validate(), "title")
	})

	t.Run("中文书名256个字超长", func(t *testing.T) {
		b := validBook()
		b.Title = strings.Repeat("书", 256)
		assert.Equal(t, ReasonTooLong, b.Validate()["title"])
	})
}

// TestIsValidISBN 测试ISBN格式规则:恰好10位或13位纯数字
func TestIsValidISBN(t *testing.T) {
	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{"10位数字", "1234567890", true},
		{"13位数字", "9781234567897", true},
		{"3位太短", "000", false},
		{"9位太短", "123456789", false},
		{"11位非法", "12345678901", false},
		{"12位非法", "123456789012", false},
		{"14位太长", "12345678901234", false},
		{"含字母", "123456789X", false},
		{"含连字符", "978-12345-6789", false},
		{"空字符串", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidISBN(tt.isbn))
		})
	}
}

// TestFieldErrors 测试字段错误容器的first-wins语义
func TestFieldErrors(t *testing.T) {
	errs := make(FieldErrors)

	errs.Add("isbn", ReasonBlank)
	errs.Add("isbn", ReasonInvalidFormat)
	assert.Equal(t, ReasonBlank, errs["isbn"], "同一字段只保留第一个错误")

	errs.Check(true, "title", ReasonBlank)
	assert.NotContains(t, errs, "title", "条件为真时不记录错误")

	errs.Check(false, "title", ReasonTooLong)
	assert.Equal(t, ReasonTooLong, errs["title"])
}
