package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ReallyKrishna/Book-Review-API/internal/infrastructure/config"
	"github.com/ReallyKrishna/Book-Review-API/pkg/circuitbreaker"
	apperrors "github.com/ReallyKrishna/Book-Review-API/pkg/errors"
)

// DetailCache 图书详情缓存(Cache-Aside)
// 设计说明:
// 1. 缓存的是序列化后的详情载荷([]byte),缓存层不关心具体结构,
//    序列化/反序列化由调用方负责,避免缓存层依赖应用层DTO
// 2. 写路径(新评论/改评论/删评论)删除缓存而非更新缓存,
//    下次读取时重建,避免并发更新导致的脏数据
// 3. 所有Redis操作经过熔断器:Redis持续故障时快速失败,
//    调用方把缓存故障当作未命中降级到数据库
// 4. Key设计:book_detail:{book_id}
type DetailCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *circuitbreaker.Breaker
}

// NewDetailCache 创建详情缓存
func NewDetailCache(client *redis.Client, cfg *config.Config) *DetailCache {
	return &DetailCache{
		client:  client,
		ttl:     cfg.Cache.DetailTTL,
		breaker: circuitbreaker.New("redis-detail-cache", 5, 30*time.Second),
	}
}

// Get 获取详情缓存
// 返回(payload, hit, err):未命中时hit=false且err=nil
func (c *DetailCache) Get(ctx context.Context, bookID uint) ([]byte, bool, error) {
	key := c.detailKey(bookID)

	var payload []byte
	hit := false

	err := c.breaker.Do(func() error {
		val, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				// 未命中不是故障,不计入熔断器失败
				return nil
			}
			return err
		}
		payload = val
		hit = true
		return nil
	})
	if err != nil {
		return nil, false, apperrors.Wrap(err, "获取详情缓存失败")
	}

	return payload, hit, nil
}

// Set 写入详情缓存
func (c *DetailCache) Set(ctx context.Context, bookID uint, payload []byte) error {
	key := c.detailKey(bookID)

	err := c.breaker.Do(func() error {
		return c.client.Set(ctx, key, payload, c.ttl).Err()
	})
	if err != nil {
		return apperrors.Wrap(err, "写入详情缓存失败")
	}

	return nil
}

// Invalidate 删除详情缓存
// 评论的增删改会改变详情中的评论列表与平均分,必须失效
func (c *DetailCache) Invalidate(ctx context.Context, bookID uint) error {
	key := c.detailKey(bookID)

	err := c.breaker.Do(func() error {
		return c.client.Del(ctx, key).Err()
	})
	if err != nil {
		return apperrors.Wrap(err, "删除详情缓存失败")
	}

	return nil
}

// detailKey 生成详情缓存key
func (c *DetailCache) detailKey(bookID uint) string {
	return fmt.Sprintf("book_detail:%d", bookID)
}
