package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 写操作对唯一性约束是原子的:要么整行提交,要么什么都不变
type Repository interface {
	// Create 创建图书,回填自增ID
	// ISBN冲突时返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书
	// 不存在时返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书(唯一性预检查用)
	// 不存在时返回ErrBookNotFound
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 全量更新可变字段,ID不变
	// 目标行不存在时返回ErrBookNotFound,ISBN冲突时返回ErrISBNDuplicate
	Update(ctx context.Context, book *Book) error

	// Delete 硬删除
	// 目标行不存在时返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// List 按ID升序分页查询,返回当页数据和总记录数
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// ListParams 列表查询参数
// 排序固定为ID升序,页码从1开始
type ListParams struct {
	Page     int // 页码(从1开始)
	PageSize int // 每页数量
}

// Offset 计算SQL偏移量
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
