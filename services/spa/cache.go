package spa

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"omnispa/models"
	"omnispa/utils"
)

const (
	listCacheKey   = "spa:list"
	spaCachePrefix = "spa:detail:"
	cacheTTL       = 60 * time.Second
)

// cachedList returns the directory listing from Redis, falling back to the
// repository on a miss. Cache failures degrade to the repository silently.
func (s *DefaultSpaService) cachedList() ([]models.Spa, error) {
	if s.Cache == nil {
		return s.Repo.GetAll()
	}
	ctx := context.Background()

	raw, err := s.Cache.Get(ctx, listCacheKey).Result()
	if err == nil {
		var spas []models.Spa
		if json.Unmarshal([]byte(raw), &spas) == nil {
			return spas, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("spa list cache read failed", zap.Error(err))
	}

	spas, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(spas); err == nil {
		if err := s.Cache.Set(ctx, listCacheKey, data, cacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("spa list cache write failed", zap.Error(err))
		}
	}
	return spas, nil
}

func (s *DefaultSpaService) cachedGet(id string) (*models.Spa, error) {
	if s.Cache == nil {
		return s.Repo.GetByID(id)
	}
	ctx := context.Background()
	key := spaCachePrefix + id

	raw, err := s.Cache.Get(ctx, key).Result()
	if err == nil {
		var spa models.Spa
		if json.Unmarshal([]byte(raw), &spa) == nil {
			return &spa, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("spa cache read failed", zap.Error(err))
	}

	spa, err := s.Repo.GetByID(id)
	if err != nil || spa == nil {
		return spa, err
	}
	if data, err := json.Marshal(spa); err == nil {
		if err := s.Cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("spa cache write failed", zap.Error(err))
		}
	}
	return spa, nil
}

// invalidate drops the cached listing and, when an ID is given, the cached
// detail, so mutations become visible on the next read.
func (s *DefaultSpaService) invalidate(id string) {
	if s.Cache == nil {
		return
	}
	ctx := context.Background()
	keys := []string{listCacheKey}
	if id != "" {
		keys = append(keys, spaCachePrefix+id)
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("spa cache invalidation failed", zap.Error(err))
	}
}
