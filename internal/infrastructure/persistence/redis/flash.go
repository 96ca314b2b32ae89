package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/mylibrary/pkg/errors"
)

// FlashStore 一次性提示消息存储
// 设计说明：
// 1. 更新成功后的提示("图书记录已更新为: ...")需要跨越一次302重定向,
//    写入Redis列表,列表页读取后立即删除(只展示一次)
// 2. Key按浏览器会话隔离:flash:{session_id},session_id来自Cookie
// 3. 设置过期时间兜底,未被读取的提示不会永久残留
type FlashStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFlashStore 创建提示消息存储
func NewFlashStore(client *redis.Client, ttl time.Duration) *FlashStore {
	return &FlashStore{client: client, ttl: ttl}
}

// Push 追加一条提示消息
func (s *FlashStore) Push(ctx context.Context, sessionID, message string) error {
	key := s.key(sessionID)

	if err := s.client.RPush(ctx, key, message).Err(); err != nil {
		return apperrors.Wrap(err, "写入提示消息失败")
	}

	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "设置提示消息过期时间失败")
	}

	return nil
}

// PopAll 取出并清空全部提示消息
// 读取和删除放在同一个Pipeline里,保证"只展示一次"
func (s *FlashStore) PopAll(ctx context.Context, sessionID string) ([]string, error) {
	key := s.key(sessionID)

	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, apperrors.Wrap(err, "读取提示消息失败")
	}

	return rangeCmd.Val(), nil
}

// key 消息Key:flash:{session_id}
func (s *FlashStore) key(sessionID string) string {
	return fmt.Sprintf("flash:%s", sessionID)
}
