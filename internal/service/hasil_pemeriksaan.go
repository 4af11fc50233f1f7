package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error inspection
	"fmt"     // Error wrapping and cache keys
	"strings" // Case-insensitive category folding
	"time"    // Calendar periods

	"posyandu_system/internal/domain" // Importing domain models
	"posyandu_system/internal/utils"  // Cache and period helpers

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"gorm.io/gorm"               // GORM ORM library
)

const (
	DefaultLimit = 10  // Rows per page when limit is not supplied
	MaxLimit     = 100 // Upper bound for limit
	MaxPage      = 1_000_000
	cachePrefix  = "hasil:"
	cacheGenKey  = cachePrefix + "gen" // Bumped on every write
)

// ListParams selects a calendar month and a page. Zero values pick the
// defaults: current month/year, limit 10, page 1.
type ListParams struct {
	Month int
	Year  int
	Limit int
	Page  int
}

// ListResult is one page of records created in the selected month
type ListResult struct {
	TotalData   int64                     `json:"totalData"`
	TotalPages  int                       `json:"totalPages"`
	CurrentPage int                       `json:"currentPage"`
	Result      []domain.HasilPemeriksaan `json:"result"`
}

// statusCount is one row of the per-category aggregate
type statusCount struct {
	StatusGizi string
	Total      int64
}

// HasilPemeriksaanService manages measurement records
type HasilPemeriksaanService struct {
	db    *gorm.DB
	cache *utils.Cache
	now   func() time.Time
}

// NewHasilPemeriksaanService creates the service; cache may be nil
func NewHasilPemeriksaanService(db *gorm.DB, cache *utils.Cache) *HasilPemeriksaanService {
	return &HasilPemeriksaanService{db: db, cache: cache, now: time.Now}
}

// period resolves month/year, falling back to the current ones
func (s *HasilPemeriksaanService) period(month, year int) (time.Time, time.Time) {
	now := s.now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year <= 0 {
		year = now.Year()
	}
	return utils.MonthRange(year, time.Month(month), now.Location())
}

// List returns the records created in the selected month, paginated
func (s *HasilPemeriksaanService) List(ctx context.Context, p ListParams) (*ListResult, error) {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage // Keeps the offset in range
	}
	start, end := s.period(p.Month, p.Year)

	cacheKey, cacheable := s.cacheKey(ctx, fmt.Sprintf("list:%s:limit=%d:page=%d", start.Format("2006-01"), p.Limit, p.Page))
	var cached ListResult
	if cacheable && s.readCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	query := s.db.WithContext(ctx).Model(&domain.HasilPemeriksaan{}).
		Where("created_at >= ? AND created_at < ?", start, end).
		Session(&gorm.Session{}) // Reused for count and page
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count hasil pemeriksaan: %w", err)
	}
	records := []domain.HasilPemeriksaan{}
	offset := (p.Page - 1) * p.Limit
	if err := query.Order("id").Offset(offset).Limit(p.Limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list hasil pemeriksaan: %w", err)
	}

	res := &ListResult{
		TotalData:   total,
		TotalPages:  (int(total) + p.Limit - 1) / p.Limit, // ceil(total/limit)
		CurrentPage: p.Page,
		Result:      records,
	}
	if cacheable {
		s.writeCache(ctx, cacheKey, res)
	}
	return res, nil
}

// Create persists a new record. A status gizi naming a known category in
// any letter case is stored in its canonical spelling.
func (s *HasilPemeriksaanService) Create(ctx context.Context, rec *domain.HasilPemeriksaan) error {
	rec.StatusGizi, _ = domain.CanonicalStatusGizi(rec.StatusGizi)
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create hasil pemeriksaan: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// GetByID loads a record by primary key
func (s *HasilPemeriksaanService) GetByID(ctx context.Context, id uint) (*domain.HasilPemeriksaan, error) {
	var rec domain.HasilPemeriksaan
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	} else if err != nil {
		return nil, fmt.Errorf("get hasil pemeriksaan: %w", err)
	}
	return &rec, nil
}

// DeleteByID removes a record; ErrRecordNotFound when nothing matched
func (s *HasilPemeriksaanService) DeleteByID(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.HasilPemeriksaan{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete hasil pemeriksaan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	s.invalidate(ctx)
	return nil
}

// ChartData counts the records of each StatusGiziCategories entry created in
// the selected month, in category order, zero-filled. Stored values are
// matched case-insensitively.
func (s *HasilPemeriksaanService) ChartData(ctx context.Context, month, year int) ([]int64, error) {
	start, end := s.period(month, year)

	cacheKey, cacheable := s.cacheKey(ctx, "chart:"+start.Format("2006-01"))
	var cached []int64
	if cacheable && s.readCache(ctx, cacheKey, &cached) && len(cached) == len(domain.StatusGiziCategories) {
		return cached, nil
	}

	var rows []statusCount
	err := s.db.WithContext(ctx).Model(&domain.HasilPemeriksaan{}).
		Select("status_gizi, COUNT(*) AS total").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("status_gizi").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count status gizi: %w", err)
	}

	result := make([]int64, len(domain.StatusGiziCategories))
	for _, r := range rows {
		for i, category := range domain.StatusGiziCategories {
			if strings.EqualFold(category, strings.TrimSpace(r.StatusGizi)) {
				result[i] += r.Total
				break
			}
		}
	}

	if cacheable {
		s.writeCache(ctx, cacheKey, result)
	}
	return result, nil
}

// cacheKey prefixes name with the current cache generation. The generation is
// read before querying, so a result computed while a write lands is stored
// under a generation nobody reads anymore. false means skip the cache.
func (s *HasilPemeriksaanService) cacheKey(ctx context.Context, name string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, err := s.cache.Generation(ctx, cacheGenKey)
	if err != nil {
		logrus.WithError(err).Warn("Cache generation read failed")
		return "", false
	}
	return fmt.Sprintf("%sv%d:%s", cachePrefix, gen, name), true
}

func (s *HasilPemeriksaanService) readCache(ctx context.Context, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
		return false
	}
	return found
}

func (s *HasilPemeriksaanService) writeCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

// invalidate moves to a new cache generation and drops the previous one's
// entries after a write
func (s *HasilPemeriksaanService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	gen, err := s.cache.BumpGeneration(ctx, cacheGenKey)
	if err != nil {
		logrus.WithError(err).Warn("Cache invalidation failed")
		return
	}
	if err := s.cache.DeletePrefix(ctx, fmt.Sprintf("%sv%d:", cachePrefix, gen-1)); err != nil {
		logrus.WithError(err).Warn("Cache cleanup failed")
	}
}
