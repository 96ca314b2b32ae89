package book

import (
	"context"

	"github.com/xiebiao/mylibrary/internal/domain/book"
	"github.com/xiebiao/mylibrary/pkg/logger"
)

// DetailCache 图书详情缓存接口(由调用方定义,Redis实现注入)
// Get未命中时返回(nil, nil)
type DetailCache interface {
	Get(ctx context.Context, id uint) (*book.Book, error)
	Set(ctx context.Context, b *book.Book) error
	Delete(ctx context.Context, id uint) error
}

// GetBookUseCase 图书详情用例(Cache-Aside)
// 缓存只是加速,任何缓存错误都降级为直接查库,不影响请求结果
type GetBookUseCase struct {
	bookService book.Service
	cache       DetailCache
}

// NewGetBookUseCase 创建详情用例
// cache可以为nil(测试或未部署Redis时直连数据库)
func NewGetBookUseCase(bookService book.Service, cache DetailCache) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService, cache: cache}
}

// Execute 查询图书详情
// 图书不存在时返回book.ErrBookNotFound
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*book.Book, error) {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, id)
		if err != nil {
			logger.Warn("读取图书缓存失败,降级查库", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, b); err != nil {
			logger.Warn("回填图书缓存失败", err)
		}
	}

	return b, nil
}
