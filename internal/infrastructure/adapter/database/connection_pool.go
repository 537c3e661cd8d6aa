package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
)

// poolWarnRatio is the share of MaxOpenConnections in use above which the monitor warns
const poolWarnRatio = 0.8

// StatsSource exposes connection pool statistics; *sql.DB satisfies it
type StatsSource interface {
	Stats() sql.DBStats
}

// ConnectionPoolMonitor periodically samples the connection pool and warns
// when it is close to exhaustion
type ConnectionPoolMonitor struct {
	source   StatsSource
	logger   coreport.Logger
	latest   sql.DBStats
	mutex    sync.RWMutex
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(source StatsSource, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		source:   source,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples the pool immediately and then every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collect()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collect()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring. Safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Latest returns the most recent pool sample
func (m *ConnectionPoolMonitor) Latest() sql.DBStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.latest
}

func (m *ConnectionPoolMonitor) collect() {
	stats := m.source.Stats()

	m.mutex.Lock()
	m.latest = stats
	m.mutex.Unlock()

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*poolWarnRatio {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
