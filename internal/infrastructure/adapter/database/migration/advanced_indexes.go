package migration

import (
	"context"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes for the history queries
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexDefinition struct {
	name string
	sql  string
}

var historyIndexes = []indexDefinition{
	{
		// Deposits and withdrawals of one user, newest first
		name: "idx_transactions_owner_history",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_owner_history
			ON transactions (user_id, created_at DESC)
			WHERE type IN ('DEPOSIT', 'WITHDRAW')`,
	},
	{
		name: "idx_transactions_outgoing_transfers",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_outgoing_transfers
			ON transactions (source_wallet_id, created_at DESC)
			WHERE type = 'TRANSFER'`,
	},
	{
		name: "idx_transactions_incoming_transfers",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_incoming_transfers
			ON transactions (target_wallet_id, created_at DESC)
			WHERE type = 'TRANSFER'`,
	},
	{
		// BRIN suits the append-only, time ordered ledger
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_users_name",
		sql:  `CREATE INDEX IF NOT EXISTS idx_users_name ON users (name, id)`,
	},
}

// CreateAdvancedIndexes creates the partial and BRIN indexes used by history queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, index := range historyIndexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage tweaks. Failures are not fatal.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// Wallet rows are updated in place on every operation; leave room for HOT updates
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE wallets SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for wallets table", map[string]any{
			"error": err.Error(),
		})
	}

	// The ledger is insert-only
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions SET (fillfactor = 100)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}
}
