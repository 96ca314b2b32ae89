package book

import (
	"context"

	"github.com/xiebiao/mylibrary/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 排序固定为ID升序,页大小由配置注入(不读进程级全局状态)
// 2. 页码参数宽容处理:小于1取第1页,超过末页收敛到末页,不报错
type ListBooksUseCase struct {
	bookService book.Service
	pageSize    int
}

// NewListBooksUseCase 创建列表用例
func NewListBooksUseCase(bookService book.Service, pageSize int) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		pageSize:    pageSize,
	}
}

// BookSummary 列表项DTO
type BookSummary struct {
	ID              uint
	Authors         string
	Title           string
	PublicationDate string // YYYY-MM-DD
	ISBN            string
	Description     string // 单行文本描述
}

// BookPage 列表查询结果(分页对象)
type BookPage struct {
	Items      []BookSummary
	Page       int   // 收敛后的实际页码
	TotalPages int   // 总页数(至少为1)
	Total      int64 // 总记录数
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, page int) (*BookPage, error) {
	if page < 1 {
		page = 1
	}

	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     page,
		PageSize: uc.pageSize,
	})
	if err != nil {
		return nil, err
	}

	totalPages := uc.totalPages(total)

	// 页码超出末页:收敛到末页重新查询
	if len(books) == 0 && page > totalPages {
		page = totalPages
		books, total, err = uc.bookService.ListBooks(ctx, book.ListParams{
			Page:     page,
			PageSize: uc.pageSize,
		})
		if err != nil {
			return nil, err
		}
		totalPages = uc.totalPages(total)
	}

	items := make([]BookSummary, len(books))
	for i, b := range books {
		items[i] = BookSummary{
			ID:              b.ID,
			Authors:         b.Authors,
			Title:           b.Title,
			PublicationDate: b.PublicationDate.Format(dateLayout),
			ISBN:            b.ISBN,
			Description:     b.String(),
		}
	}

	return &BookPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		PrevPage:   page - 1,
		NextPage:   page + 1,
	}, nil
}

// totalPages 计算总页数,空表也算1页(列表页始终可渲染)
func (uc *ListBooksUseCase) totalPages(total int64) int {
	pages := int(total) / uc.pageSize
	if int(total)%uc.pageSize != 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return pages
}
