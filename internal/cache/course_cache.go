package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/peerclass/peerclass-api/internal/models"
	"github.com/peerclass/peerclass-api/pkg/logger"
	"github.com/peerclass/peerclass-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	allCoursesKey    = "course:all"
	cacheCheckPeriod = 10 * time.Second
	cacheName        = "courses"
)

// CourseFetcher loads the full course list from the backing store.
type CourseFetcher func(ctx context.Context) ([]*models.Course, error)

// CourseCache is a read-through TTL cache for the public course list. Admin
// mutations and new proposals call Invalidate so stale entries never outlive
// a write from this instance; writes from other instances age out with the TTL.
type CourseCache struct {
	cache    *gocache.Cache
	fetchAll CourseFetcher
	ttl      time.Duration

	mu    sync.RWMutex
	ready bool
}

// NewCourseCache creates a course cache with the given TTL in seconds.
func NewCourseCache(fetchAll CourseFetcher, ttlSeconds int) *CourseCache {
	return &CourseCache{
		cache:    gocache.New(gocache.NoExpiration, cacheCheckPeriod),
		fetchAll: fetchAll,
		ttl:      time.Duration(ttlSeconds) * time.Second,
	}
}

// Initialize performs the initial cache population. Called during startup
// before the server accepts requests.
func (cc *CourseCache) Initialize(ctx context.Context) error {
	logger.Info("Initializing course cache...")
	start := time.Now()

	courses, err := cc.fetchAll(ctx)
	if err != nil {
		logger.Error("Failed to initialize course cache", zap.Error(err))
		return err
	}
	cc.cache.Set(allCoursesKey, courses, cc.ttl)

	cc.mu.Lock()
	cc.ready = true
	cc.mu.Unlock()

	logger.Info("Course cache initialized",
		zap.Int("count", len(courses)),
		zap.Duration("took", time.Since(start)))
	return nil
}

// GetAll returns the cached course list, refreshing from the store on a miss.
func (cc *CourseCache) GetAll(ctx context.Context) ([]*models.Course, error) {
	if cached, found := cc.cache.Get(allCoursesKey); found {
		metrics.CacheHits.WithLabelValues(cacheName).Inc()
		return cached.([]*models.Course), nil
	}

	metrics.CacheMisses.WithLabelValues(cacheName).Inc()
	courses, err := cc.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	cc.cache.Set(allCoursesKey, courses, cc.ttl)
	return courses, nil
}

// Invalidate drops the cached list after a course mutation.
func (cc *CourseCache) Invalidate() {
	cc.cache.Delete(allCoursesKey)
}

// IsReady reports whether the initial population completed.
func (cc *CourseCache) IsReady() bool {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.ready
}
