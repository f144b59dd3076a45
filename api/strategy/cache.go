package strategy

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/straddleshift/configapi/shared/zaplogger"
)

const cacheTTL = 15 * time.Minute

// Cache is a read-through Redis cache for the current document of a client.
// Every cache failure degrades to a database read, never to an error.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func cacheKey(clientID, strategyID string) string {
	return "strategy:config:" + clientID + ":" + strategyID
}

// Get returns the cached document, or nil on a miss.
func (c *Cache) Get(ctx context.Context, clientID, strategyID string) *ConfigModel {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := c.client.Get(ctx, cacheKey(clientID, strategyID)).Bytes()
	if err != nil {
		return nil
	}
	var config ConfigModel
	if err := json.Unmarshal(data, &config); err != nil {
		return nil
	}
	return &config
}

// Set stores the document under its client key.
func (c *Cache) Set(ctx context.Context, config *ConfigModel) {
	if c == nil || c.client == nil || config == nil {
		return
	}
	data, err := json.Marshal(config)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(config.ClientID, config.StrategyID), data, cacheTTL).Err(); err != nil {
		zaplogger.Warn("config cache set failed", zaplogger.Fields{"client_id": config.ClientID, "error": err.Error()})
	}
}
