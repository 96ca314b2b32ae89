package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/mylibrary/internal/domain/book"
	apperrors "github.com/xiebiao/mylibrary/pkg/errors"
)

// BookCache 图书详情缓存(Cache-Aside)
// 设计说明:
// 1. 详情页先查缓存,未命中再查数据库并回填
// 2. 更新、删除图书后删除缓存(而不是更新缓存,避免并发写入不一致)
// 3. 缓存永远不是权威数据,任何缓存错误都由调用方降级处理
type BookCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBookCache 创建图书详情缓存
func NewBookCache(client *redis.Client, ttl time.Duration) *BookCache {
	return &BookCache{client: client, ttl: ttl}
}

// cachedBook 缓存存储结构(JSON)
type cachedBook struct {
	ID              uint      `json:"id"`
	Authors         string    `json:"authors"`
	Title           string    `json:"title"`
	PublicationDate time.Time `json:"publication_date"`
	ISBN            string    `json:"isbn"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Get 获取图书详情缓存
// 缓存未命中时返回(nil, nil),调用方需要查询数据库
func (c *BookCache) Get(ctx context.Context, id uint) (*book.Book, error) {
	val, err := c.client.Get(ctx, c.key(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "获取图书缓存失败")
	}

	var cached cachedBook
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		return nil, apperrors.Wrap(err, "解析图书缓存失败")
	}

	return &book.Book{
		ID:              cached.ID,
		Authors:         cached.Authors,
		Title:           cached.Title,
		PublicationDate: cached.PublicationDate,
		ISBN:            cached.ISBN,
		CreatedAt:       cached.CreatedAt,
		UpdatedAt:       cached.UpdatedAt,
	}, nil
}

// Set 回填图书详情缓存
func (c *BookCache) Set(ctx context.Context, b *book.Book) error {
	data, err := json.Marshal(cachedBook{
		ID:              b.ID,
		Authors:         b.Authors,
		Title:           b.Title,
		PublicationDate: b.PublicationDate,
		ISBN:            b.ISBN,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	})
	if err != nil {
		return apperrors.Wrap(err, "序列化图书缓存失败")
	}

	if err := c.client.Set(ctx, c.key(b.ID), data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入图书缓存失败")
	}

	return nil
}

// Delete 删除图书详情缓存(更新/删除图书后调用)
func (c *BookCache) Delete(ctx context.Context, id uint) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return apperrors.Wrap(err, "删除图书缓存失败")
	}
	return nil
}

// key 缓存Key:book:detail:{id}
func (c *BookCache) key(id uint) string {
	return fmt.Sprintf("book:detail:%d", id)
}
