package book

import (
	"context"

	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/pkg/logger"
	"github.com/xiebiao/mylibrary/pkg/metrics"
)

// DeleteBookUseCase 删除图书用例(硬删除)
type DeleteBookUseCase struct {
	bookService book.Service
	cache       DetailCache
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(bookService book.Service, cache DetailCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService, cache: cache}
}

// Execute 执行删除
// 图书不存在时返回book.ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, id); err != nil {
			logger.Warn("删除图书缓存失败", err)
		}
	}

	metrics.IncCounter(metrics.BooksDeletedTotal)
	return nil
}
