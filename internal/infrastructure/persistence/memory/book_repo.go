// Package memory 提供图书仓储的内存实现
// 设计说明:
// 1. 与MySQL实现遵守同一份接口契约(含ErrISBNDuplicate/ErrBookNotFound语义),
//    供领域服务、用例和HTTP处理器的测试使用,不依赖外部数据库
// 2. 互斥锁保证并发安全;存取都做值拷贝,避免调用方共享内部状态
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xiebiao/mylibrary/internal/domain/book"
)

// BookRepository 图书仓储的内存实现
type BookRepository struct {
	mu     sync.Mutex
	nextID uint
	books  map[uint]book.Book
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() *BookRepository {
	return &BookRepository{
		nextID: 1,
		books:  make(map[uint]book.Book),
	}
}

// Create 创建图书(模拟唯一索引:重复ISBN整体拒绝)
func (r *BookRepository) Create(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.books {
		if existing.ISBN == b.ISBN {
			return book.ErrISBNDuplicate
		}
	}

	b.ID = r.nextID
	r.nextID++
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.books[b.ID] = *b

	return nil
}

// FindByID 根据ID查找图书
func (r *BookRepository) FindByID(_ context.Context, id uint) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &stored, nil
}

// FindByISBN 根据ISBN查找图书
func (r *BookRepository) FindByISBN(_ context.Context, isbn string) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stored := range r.books {
		if stored.ISBN == isbn {
			found := stored
			return &found, nil
		}
	}
	return nil, book.ErrBookNotFound
}

// Update 全量更新可变字段
func (r *BookRepository) Update(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.books[b.ID]
	if !ok {
		return book.ErrBookNotFound
	}

	for _, existing := range r.books {
		if existing.ISBN == b.ISBN && existing.ID != b.ID {
			return book.ErrISBNDuplicate
		}
	}

	stored.Authors = b.Authors
	stored.Title = b.Title
	stored.PublicationDate = b.PublicationDate
	stored.ISBN = b.ISBN
	stored.UpdatedAt = time.Now()
	r.books[b.ID] = stored
	b.UpdatedAt = stored.UpdatedAt

	return nil
}

// Delete 硬删除
func (r *BookRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)

	return nil
}

// List 按ID升序分页查询
func (r *BookRepository) List(_ context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ordered := make([]book.Book, 0, len(r.books))
	for _, stored := range r.books {
		ordered = append(ordered, stored)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	total := int64(len(ordered))

	start := params.Offset()
	if start < 0 {
		start = 0
	}
	if start >= len(ordered) {
		return []*book.Book{}, total, nil
	}
	end := start + params.PageSize
	if end > len(ordered) {
		end = len(ordered)
	}

	page := make([]*book.Book, 0, end-start)
	for i := start; i < end; i++ {
		item := ordered[i]
		page = append(page, &item)
	}

	return page, total, nil
}

// Count 当前存量(测试断言用)
func (r *BookRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.books)
}
