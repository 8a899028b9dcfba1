package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/DhavalSuthar-24/acecourt/internal/cache"
	"github.com/DhavalSuthar-24/acecourt/internal/models"
	"github.com/DhavalSuthar-24/acecourt/pkg/logger"
)

const DefaultDrillCacheTTL = 6 * time.Hour

// CachedDrills memoizes drill recommendations per normalized query and
// collapses concurrent identical queries into one upstream call. The shared
// call outlives any single caller and is bounded by timeout instead. Other
// operations pass straight through.
type CachedDrills struct {
	Advisor
	cache   cache.Cache
	ttl     time.Duration
	timeout time.Duration
	group   singleflight.Group
	log     *slog.Logger
}

func NewCachedDrills(next Advisor, c cache.Cache, ttl, timeout time.Duration, log *slog.Logger) *CachedDrills {
	if ttl <= 0 {
		ttl = DefaultDrillCacheTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &CachedDrills{Advisor: next, cache: c, ttl: ttl, timeout: timeout, log: log}
}

func drillKey(req DrillRequest) string {
	norm := strings.Join([]string{
		strings.ToLower(strings.Join(strings.Fields(req.Query), " ")),
		strings.ToLower(strings.TrimSpace(req.AgeGroup)),
		strings.ToLower(strings.TrimSpace(req.SkillLevel)),
	}, "\x00")
	sum := sha256.Sum256([]byte(norm))
	return "drills:" + hex.EncodeToString(sum[:16])
}

func (c *CachedDrills) RecommendDrills(ctx context.Context, req DrillRequest) ([]models.Drill, error) {
	key := drillKey(req)
	if raw, ok, err := c.cache.Get(ctx, key); err != nil {
		c.log.WarnContext(ctx, "drill cache read failed", logger.Err(err))
	} else if ok {
		var drills []models.Drill
		if err := json.Unmarshal([]byte(raw), &drills); err == nil {
			return drills, nil
		}
		c.log.WarnContext(ctx, "drill cache entry unreadable", slog.String("key", key))
	}

	ch := c.group.DoChan(key, func() (interface{}, error) {
		shared, cancel := WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		drills, err := c.Advisor.RecommendDrills(shared, req)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(drills)
		if err == nil {
			err = c.cache.Set(shared, key, string(raw), c.ttl)
		}
		if err != nil {
			c.log.WarnContext(ctx, "drill cache write failed", logger.Err(err))
		}
		return raw, nil
	})
	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if res.Err != nil {
		return nil, res.Err
	}
	// Each caller decodes its own copy of the shared result.
	var drills []models.Drill
	if err := json.Unmarshal(res.Val.([]byte), &drills); err != nil {
		return nil, err
	}
	return drills, nil
}
