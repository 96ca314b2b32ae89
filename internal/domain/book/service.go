package book

import (
	"context"
	"errors"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装字段校验 + 唯一性校验 + 持久化的完整流程
// 2. 唯一性采用"预检查 + 数据库唯一索引兜底"两层:
//    预检查能把重复ISBN和其他字段错误一起展示给用户;
//    并发竞争漏过预检查时,数据库约束让后写者拿到ErrISBNDuplicate
type Service interface {
	// CreateBook 创建图书
	// 校验失败返回*ValidationError;保存时的并发ISBN冲突返回ErrISBNDuplicate
	CreateBook(ctx context.Context, b *Book) error

	// GetBook 根据ID获取图书
	GetBook(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书(b.ID为目标记录)
	// 图书匹配自己原有的ISBN不算重复
	UpdateBook(ctx context.Context, b *Book) error

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 按ID升序分页查询
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) error {
	fields, err := s.validate(ctx, b)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}

	// 持久化(数据库唯一索引兜底并发冲突)
	return s.repo.Create(ctx, b)
}

// GetBook 根据ID获取图书
func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, b *Book) error {
	fields, err := s.validate(ctx, b)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}

	// 确认目标仍然存在(404语义),再整体替换
	if _, err := s.repo.FindByID(ctx, b.ID); err != nil {
		return err
	}

	return s.repo.Update(ctx, b)
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListBooks 按ID升序分页查询
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// validate 字段规则 + 唯一性预检查
// 返回的FieldErrors包含本次能发现的全部问题;err仅表示查库本身失败
func (s *service) validate(ctx context.Context, b *Book) (FieldErrors, error) {
	fields := b.Validate()

	// ISBN格式已经不合法时没必要再查唯一性
	if _, has := fields["isbn"]; has {
		return fields, nil
	}

	existing, err := s.repo.FindByISBN(ctx, b.ISBN)
	switch {
	case err == nil:
		// 更新时匹配到自己不算重复
		if existing.ID != b.ID {
			fields.Add("isbn", ReasonNotUnique)
		}
	case errors.Is(err, ErrBookNotFound):
		// ISBN未被占用
	default:
		return nil, err
	}

	return fields, nil
}
