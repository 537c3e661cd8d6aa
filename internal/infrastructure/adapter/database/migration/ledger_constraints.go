package migration

import (
	"context"
	"fmt"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"gorm.io/gorm"
)

// checkConstraint is a named CHECK constraint on one table
type checkConstraint struct {
	table      string
	name       string
	expression string
}

// ledgerChecks mirror the entity invariants so that no code path can store
// a negative balance or a malformed ledger record
var ledgerChecks = []checkConstraint{
	{"wallets", "chk_wallets_balance_non_negative", "balance >= 0"},
	{"transactions", "chk_transactions_amount_positive", "amount > 0"},
	{"transactions", "chk_transactions_type", "type IN ('DEPOSIT', 'WITHDRAW', 'TRANSFER')"},
	{"transactions", "chk_transactions_transfer_wallets",
		"type <> 'TRANSFER' OR (source_wallet_id IS NOT NULL AND target_wallet_id IS NOT NULL AND source_wallet_id <> target_wallet_id)"},
	{"transactions", "chk_transactions_bank_wallets",
		"type = 'TRANSFER' OR (source_wallet_id IS NULL AND target_wallet_id IS NULL)"},
}

// LedgerConstraints adds CHECK constraints and the append-only trigger on the ledger
type LedgerConstraints struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLedgerConstraints creates a new migration instance
func NewLedgerConstraints(db *gorm.DB, logger coreport.Logger) *LedgerConstraints {
	return &LedgerConstraints{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *LedgerConstraints) Run(ctx context.Context) error {
	m.logger.Info("Adding ledger constraints", nil)

	existing, err := m.existingConstraints(ctx)
	if err != nil {
		return err
	}

	for _, check := range ledgerChecks {
		if existing[check.name] {
			continue
		}

		stmt := fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s)", check.table, check.name, check.expression)
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to add check constraint", map[string]any{
				"constraint": check.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	if err := m.protectLedger(ctx); err != nil {
		return err
	}

	m.logger.Info("Successfully added ledger constraints", nil)
	return nil
}

// protectLedger rejects UPDATE and DELETE on ledger rows
func (m *LedgerConstraints) protectLedger(ctx context.Context) error {
	statements := []string{
		`CREATE OR REPLACE FUNCTION reject_ledger_mutation() RETURNS trigger AS $$
		BEGIN
			RAISE EXCEPTION 'ledger records are immutable';
		END;
		$$ LANGUAGE plpgsql`,
		`DROP TRIGGER IF EXISTS trg_transactions_immutable ON transactions`,
		`CREATE TRIGGER trg_transactions_immutable
		BEFORE UPDATE OR DELETE ON transactions
		FOR EACH ROW EXECUTE FUNCTION reject_ledger_mutation()`,
	}

	for _, stmt := range statements {
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to install ledger trigger", map[string]any{"error": err.Error()})
			return err
		}
	}

	return nil
}

// existingConstraints returns the names of the ledger checks already present
func (m *LedgerConstraints) existingConstraints(ctx context.Context) (map[string]bool, error) {
	names := make([]string, 0, len(ledgerChecks))
	for _, check := range ledgerChecks {
		names = append(names, check.name)
	}

	var rows []struct {
		Conname string `gorm:"column:conname"`
	}
	err := m.db.WithContext(ctx).Raw(`SELECT conname FROM pg_constraint WHERE conname IN ?`, names).Scan(&rows).Error
	if err != nil {
		m.logger.Error("Failed to check constraint existence", map[string]any{"error": err.Error()})
		return nil, err
	}

	existing := make(map[string]bool, len(rows))
	for _, row := range rows {
		existing[row.Conname] = true
	}
	return existing, nil
}
