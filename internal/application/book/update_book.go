package book

import (
	"context"
	"errors"

	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/pkg/logger"
	"github.com/xiebiao/mylibrary/pkg/metrics"
)

// UpdateBookUseCase 更新图书用例
// 流程:确认目标存在(404语义) → 表单解析 → 领域服务整体替换 → 缓存失效
type UpdateBookUseCase struct {
	bookService book.Service
	cache       DetailCache
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service, cache DetailCache) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService, cache: cache}
}

// Execute 执行更新
// 目标图书不存在时返回book.ErrBookNotFound;
// 校验/保存失败折叠进SubmitResult.Errors,数据库中的记录保持不变
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, input FormInput) (*SubmitResult, error) {
	existing, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate, parseErrs := buildCandidate(input, existing)

	err = uc.bookService.UpdateBook(ctx, candidate)
	if errors.Is(err, book.ErrBookNotFound) {
		// 目标在确认之后被并发删除
		return nil, err
	}
	if formErrs := mergeSaveOutcome(err, parseErrs, msgUpdateFailure); formErrs != nil {
		return &SubmitResult{Errors: formErrs}, nil
	}

	// 更新成功后删除旧缓存,下次详情访问重新回填
	if uc.cache != nil {
		if cacheErr := uc.cache.Delete(ctx, id); cacheErr != nil {
			logger.Warn("删除图书缓存失败", cacheErr)
		}
	}

	metrics.IncCounter(metrics.BooksUpdatedTotal)
	return &SubmitResult{Book: candidate}, nil
}
