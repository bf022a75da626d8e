package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

const startTimeKey = "metrics:start_time"

// slowQueryThreshold 느린 쿼리 기준
const slowQueryThreshold = time.Second

var (
	// DB 쿼리 실행 시간
	dbQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cityexplorer_db_query_duration_seconds",
			Help:    "Database query execution time in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"operation", "table", "status"},
	)

	// DB 에러 횟수
	dbErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityexplorer_db_errors_total",
			Help: "Total number of database errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// 느린 쿼리 횟수 (>1초)
	dbSlowQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityexplorer_db_slow_queries_total",
			Help: "Total number of slow queries (>1 second)",
		},
		[]string{"operation", "table"},
	)

	// 비동기 캐시 쓰기 결과 (fire-and-forget)
	cacheWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cityexplorer_cache_writes_total",
			Help: "Total number of background cache writes",
		},
		[]string{"table", "status"},
	)

	// Connection Pool 사용 중 연결 수
	dbConnectionPoolInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cityexplorer_db_connection_pool_in_use",
			Help: "Number of database connections currently in use",
		},
	)

	// Connection Pool 유휴 연결 수
	dbConnectionPoolIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cityexplorer_db_connection_pool_idle",
			Help: "Number of idle database connections in the pool",
		},
	)
)

// MetricsPlugin records query latency and errors for the cache tables.
// The cache only ever selects and inserts, so only those callbacks are hooked.
type MetricsPlugin struct{}

func (p *MetricsPlugin) Name() string {
	return "metricsPlugin"
}

func (p *MetricsPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("gorm:query").Register("metrics:before_query", markStart); err != nil {
		return err
	}
	if err := db.Callback().Query().After("gorm:query").Register("metrics:after_query", observe("SELECT")); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("metrics:before_create", markStart); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Register("metrics:after_create", observe("INSERT")); err != nil {
		return err
	}
	if err := db.Callback().Raw().Before("gorm:raw").Register("metrics:before_raw", markStart); err != nil {
		return err
	}
	return db.Callback().Raw().After("gorm:raw").Register("metrics:after_raw", observe("RAW"))
}

func markStart(db *gorm.DB) {
	db.InstanceSet(startTimeKey, time.Now())
}

func observe(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		started, ok := db.InstanceGet(startTimeKey)
		if !ok {
			return
		}
		elapsed := time.Since(started.(time.Time))

		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}

		status := "success"
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			status = "error"
			dbErrorsTotal.WithLabelValues(operation, table, fmt.Sprintf("%T", db.Error)).Inc()
		}

		dbQueryDuration.WithLabelValues(operation, table, status).Observe(elapsed.Seconds())
		if elapsed > slowQueryThreshold {
			dbSlowQueriesTotal.WithLabelValues(operation, table).Inc()
		}
	}
}

// StartConnectionPoolMetricsCollector samples pool stats until ctx is done.
func StartConnectionPoolMetricsCollector(ctx context.Context, db *DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sqlDB, err := db.DB.DB()
			if err != nil {
				continue
			}
			stats := sqlDB.Stats()
			dbConnectionPoolInUse.Set(float64(stats.InUse))
			dbConnectionPoolIdle.Set(float64(stats.Idle))
		}
	}
}
