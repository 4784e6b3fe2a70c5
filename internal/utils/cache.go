package utils

import (
	"log"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry 包装缓存数据和过期时间
type cacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// LocalCache 进程内 LRU 缓存。只用于分类列表这类低频变动数据，
// 余额、点赞数等必须实时读库的数据不允许走缓存。
type LocalCache struct {
	store *lru.Cache[string, cacheEntry]
}

var cacheInstance *LocalCache

// GetCache 获取单例缓存实例
func GetCache() *LocalCache {
	if cacheInstance == nil {
		l, err := lru.New[string, cacheEntry](256)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &LocalCache{store: l}
	}
	return cacheInstance
}

// Set 设置缓存，TTL 为过期时间
func (c *LocalCache) Set(key string, data interface{}, ttl time.Duration) {
	c.store.Add(key, cacheEntry{Data: data, ExpiresAt: time.Now().Add(ttl)})
}

// Get 获取缓存，若不存在或已过期则返回 nil
func (c *LocalCache) Get(key string) interface{} {
	entry, ok := c.store.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(entry.ExpiresAt) {
		c.store.Remove(key)
		return nil
	}
	return entry.Data
}

// Delete 删除指定缓存
func (c *LocalCache) Delete(key string) {
	c.store.Remove(key)
}
