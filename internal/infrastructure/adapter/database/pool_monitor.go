package database

import (
	"sync"
	"time"

	coreport "github.com/tudorvana/expense-tracker-api/internal/domain/port/core"
)

// PoolStats is a snapshot of the database connection pool
type PoolStats struct {
	OpenConnections int
	InUse           int
	Idle            int
	WaitCount       int64
	WaitDuration    time.Duration
}

// PoolMonitor periodically samples the connection pool and logs its state,
// warning when the pool runs near its limit
type PoolMonitor struct {
	manager  *Manager
	logger   coreport.Logger
	mu       sync.RWMutex
	last     PoolStats
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewPoolMonitor creates a new connection pool monitor
func NewPoolMonitor(manager *Manager, logger coreport.Logger) *PoolMonitor {
	return &PoolMonitor{
		manager:  manager,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start begins sampling the pool at the given interval
func (m *PoolMonitor) Start(interval time.Duration) {
	m.sample()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.sample()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring
func (m *PoolMonitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
}

// Stats returns the most recent pool snapshot
func (m *PoolMonitor) Stats() PoolStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

// sample collects current pool statistics
func (m *PoolMonitor) sample() {
	sqlDB, err := m.manager.DB().DB()
	if err != nil {
		m.logger.Error("Failed to collect connection pool stats", map[string]any{
			"error": err.Error(),
		})
		return
	}

	stats := sqlDB.Stats()
	snapshot := PoolStats{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration,
	}

	m.mu.Lock()
	m.last = snapshot
	m.mu.Unlock()

	fields := map[string]any{
		"open":          snapshot.OpenConnections,
		"in_use":        snapshot.InUse,
		"idle":          snapshot.Idle,
		"wait_count":    snapshot.WaitCount,
		"wait_duration": snapshot.WaitDuration.String(),
	}

	if stats.MaxOpenConnections > 0 && stats.OpenConnections >= stats.MaxOpenConnections {
		m.logger.Warn("Connection pool exhausted", fields)
		return
	}
	m.logger.Debug("Connection pool stats", fields)
}
