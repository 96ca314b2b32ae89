package book

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/mylibrary/internal/domain/book"
)

// TestBuildCandidate 测试原始表单到候选实体的转换
func TestBuildCandidate(t *testing.T) {
	t.Run("去除字段首尾空白", func(t *testing.T) {
		candidate, parseErrs := buildCandidate(FormInput{
			Authors:         "  Doe, J.  ",
			Title:           " A title ",
			PublicationDate: " 2024-03-15 ",
			ISBN:            " 1234567890123 ",
		}, nil)

		assert.Empty(t, parseErrs)
		assert.Equal(t, "Doe, J.", candidate.Authors)
		assert.Equal(t, "A title", candidate.Title)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), candidate.PublicationDate)
		assert.Equal(t, "1234567890123", candidate.ISBN)
	})

	t.Run("日期格式错误", func(t *testing.T) {
		candidate, parseErrs := buildCandidate(FormInput{
			Authors:         "Doe, J.",
			Title:           "A title",
			PublicationDate: "15/03/2024",
			ISBN:            "1234567890123",
		}, nil)

		assert.Equal(t, book.ReasonInvalidDate, parseErrs["publication_date"])
		assert.True(t, candidate.PublicationDate.IsZero(), "解析失败保留零值日期")
	})

	t.Run("日期为空不算解析错误", func(t *testing.T) {
		candidate, parseErrs := buildCandidate(FormInput{PublicationDate: "  "}, nil)

		assert.Empty(t, parseErrs, "空日期由字段校验标记为blank")
		assert.True(t, candidate.PublicationDate.IsZero())
	})

	t.Run("基于已有图书构建候选", func(t *testing.T) {
		existing := book.NewBook("Doe, J.", "旧书名", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), "0123456789")
		existing.ID = 7

		candidate, parseErrs := buildCandidate(FormInput{
			Authors:         "Smith, A.",
			Title:           "新书名",
			PublicationDate: "2021-02-02",
			ISBN:            "9876543210",
		}, existing)

		assert.Empty(t, parseErrs)
		assert.Equal(t, uint(7), candidate.ID, "候选保留原ID")
		assert.Equal(t, "Smith, A.", candidate.Authors)
		assert.Equal(t, existing.CreatedAt, candidate.CreatedAt)
		assert.Equal(t, "旧书名", existing.Title, "不修改原实体")
	})
}

// TestMergeSaveOutcome 测试保存结果的错误分类
func TestMergeSaveOutcome(t *testing.T) {
	t.Run("保存成功且无解析错误", func(t *testing.T) {
		assert.Nil(t, mergeSaveOutcome(nil, nil, msgCreateFailure))
	})

	t.Run("字段校验错误", func(t *testing.T) {
		err := book.NewValidationError(book.FieldErrors{"title": book.ReasonBlank})
		formErrs := mergeSaveOutcome(err, nil, msgCreateFailure)

		require.NotNil(t, formErrs)
		assert.Equal(t, book.ReasonBlank, formErrs.Fields["title"])
		assert.Empty(t, formErrs.NonField)
	})

	t.Run("并发ISBN冲突给非字段提示", func(t *testing.T) {
		formErrs := mergeSaveOutcome(book.ErrISBNDuplicate, nil, msgCreateFailure)

		require.NotNil(t, formErrs)
		assert.Equal(t, msgISBNConflict, formErrs.NonField)
		assert.Empty(t, formErrs.Fields)
	})

	t.Run("存储故障给通用提示", func(t *testing.T) {
		formErrs := mergeSaveOutcome(errors.New("connection refused"), nil, msgUpdateFailure)

		require.NotNil(t, formErrs)
		assert.Equal(t, msgUpdateFailure, formErrs.NonField)
	})

	t.Run("解析错误覆盖同字段的规则错误", func(t *testing.T) {
		err := book.NewValidationError(book.FieldErrors{"publication_date": book.ReasonBlank})
		parseErrs := book.FieldErrors{"publication_date": book.ReasonInvalidDate}

		formErrs := mergeSaveOutcome(err, parseErrs, msgCreateFailure)

		require.NotNil(t, formErrs)
		assert.Equal(t, book.ReasonInvalidDate, formErrs.Fields["publication_date"])
	})
}
