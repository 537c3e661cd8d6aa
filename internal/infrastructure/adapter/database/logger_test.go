package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/requestid"
	coremocks "github.com/kunalPisolkar24/payflow/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm/logger"
)

func TestExtractQueryTypeAndTable(t *testing.T) {
	testCases := []struct {
		sql, queryType, table string
	}{
		{`SELECT * FROM "wallets" WHERE user_id = 1`, "SELECT", "wallets"},
		{`INSERT INTO "transactions" ("reference") VALUES ('x')`, "INSERT", "transactions"},
		{`UPDATE "wallets" SET "balance"=balance - 10`, "UPDATE", "wallets"},
		{`DELETE FROM users`, "DELETE", "users"},
		{`SET TRANSACTION ISOLATION LEVEL SERIALIZABLE`, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.queryType, extractQueryType(tc.sql))
			assert.Equal(t, tc.table, extractTableName(tc.sql))
		})
	}
}

func TestDatabaseLogger_Trace(t *testing.T) {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := requestid.WithRequestID(context.Background(), "req-1")
	query := func() (string, int64) { return `SELECT * FROM "users"`, 1 }

	t.Run("Slow query is a warning", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Second)
		mockLogger.EXPECT().Warn("Slow SQL Query", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["request_id"] == "req-1" && fields["table"] == "users"
		})).Once()

		NewDatabaseLogger(mockLogger, mockTime, "info", 200*time.Millisecond).Trace(ctx, begin, query, nil)
	})

	t.Run("Errors are logged with the message", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Millisecond)
		mockLogger.EXPECT().Error("SQL Error", mock.MatchedBy(func(fields map[string]any) bool {
			return fields["error"] == "boom"
		})).Once()

		NewDatabaseLogger(mockLogger, mockTime, "info", time.Second).Trace(ctx, begin, query, errors.New("boom"))
	})

	t.Run("Record not found is a regular query", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Since(begin).Return(time.Millisecond)
		mockLogger.EXPECT().Debug("SQL Query", mock.Anything).Once()

		NewDatabaseLogger(mockLogger, mockTime, "info", time.Second).Trace(ctx, begin, query, errors.New("record not found"))
	})

	t.Run("Silent logs nothing", func(t *testing.T) {
		mockLogger := coremocks.NewMockLogger(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		NewDatabaseLogger(mockLogger, mockTime, "info", time.Second).LogMode(logger.Silent).Trace(ctx, begin, query, nil)
	})
}
