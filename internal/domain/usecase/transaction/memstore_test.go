package transaction

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	"github.com/kunalPisolkar24/payflow/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory storage engine whose transactions are fully serialized
type memStore struct {
	mu sync.Mutex

	users    map[uint64]*entity.User
	balances map[uint64]decimal.Decimal // walletID -> balance
	walletOf map[uint64]uint64          // userID -> walletID
	records  []*entity.Transaction

	saved     map[uint64]decimal.Decimal
	savedRecs int

	failLedgerInsert bool
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uint64]*entity.User{},
		balances: map[uint64]decimal.Decimal{},
		walletOf: map[uint64]uint64{},
	}
}

func (m *memStore) addUser(id uint64, email string, balance string) {
	m.users[id] = &entity.User{ID: id, Name: email, Email: email}
	walletID := id * 10
	m.walletOf[id] = walletID
	m.balances[walletID] = decimal.RequireFromString(balance)
}

func (m *memStore) balanceOf(userID uint64) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[m.walletOf[userID]]
}

func (m *memStore) Begin(ctx context.Context) (context.Context, error) {
	m.mu.Lock()
	m.saved = make(map[uint64]decimal.Decimal, len(m.balances))
	for k, v := range m.balances {
		m.saved[k] = v
	}
	m.savedRecs = len(m.records)
	return ctx, nil
}

func (m *memStore) Commit(context.Context) error {
	m.saved = nil
	m.mu.Unlock()
	return nil
}

func (m *memStore) Rollback(context.Context) error {
	m.balances = m.saved
	m.records = m.records[:m.savedRecs]
	m.saved = nil
	m.mu.Unlock()
	return nil
}

func (m *memStore) GetUserRepository(context.Context) persistence.UserRepository {
	return memUsers{m}
}

func (m *memStore) GetWalletRepository(context.Context) persistence.WalletRepository {
	return memWallets{m}
}

func (m *memStore) GetTransactionRepository(context.Context) persistence.TransactionRepository {
	return memLedger{m}
}

type memUsers struct{ m *memStore }

func (r memUsers) GetByID(_ context.Context, id uint64) (*entity.User, error) {
	if u, ok := r.m.users[id]; ok {
		return u, nil
	}
	return nil, errs.ErrUserNotFound
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (r memUsers) Create(context.Context, *entity.User) error { return nil }

func (r memUsers) ListExcept(_ context.Context, excludeID uint64) ([]*entity.User, error) {
	var users []*entity.User
	for id, u := range r.m.users {
		if id != excludeID {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r memUsers) NamesByWalletIDs(_ context.Context, walletIDs []uint64) (map[uint64]string, error) {
	names := map[uint64]string{}
	for userID, walletID := range r.m.walletOf {
		for _, id := range walletIDs {
			if id == walletID {
				names[walletID] = r.m.users[userID].Name
			}
		}
	}
	return names, nil
}

type memWallets struct{ m *memStore }

func (r memWallets) wallet(walletID uint64) (*entity.Wallet, error) {
	for userID, id := range r.m.walletOf {
		if id == walletID {
			return entity.RestoreWallet(id, userID, r.m.balances[id], time.Time{}, time.Time{})
		}
	}
	return nil, errs.ErrWalletNotFound
}

func (r memWallets) Create(context.Context, *entity.Wallet) error { return nil }

func (r memWallets) GetByUserID(_ context.Context, userID uint64) (*entity.Wallet, error) {
	walletID, ok := r.m.walletOf[userID]
	if !ok {
		return nil, errs.ErrWalletNotFound
	}
	return r.wallet(walletID)
}

// Credit and Debit apply the entity's own balance rules, so the in-memory
// engine rejects the same amounts the SQL guard does.
func (r memWallets) Credit(_ context.Context, walletID uint64, amount decimal.Decimal) (*entity.Wallet, error) {
	wallet, err := r.wallet(walletID)
	if err != nil {
		return nil, err
	}
	if err := wallet.Credit(amount, storeClock{}); err != nil {
		return nil, err
	}
	r.m.balances[walletID] = wallet.Balance()
	return wallet, nil
}

func (r memWallets) Debit(_ context.Context, walletID uint64, amount decimal.Decimal) (*entity.Wallet, error) {
	wallet, err := r.wallet(walletID)
	if err != nil {
		return nil, err
	}
	if err := wallet.Debit(amount, storeClock{}); err != nil {
		return nil, err
	}
	r.m.balances[walletID] = wallet.Balance()
	return wallet, nil
}

type storeClock struct{}

func (storeClock) Now() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func (c storeClock) Since(t time.Time) time.Duration {
	return c.Now().Sub(t)
}

type memLedger struct{ m *memStore }

func (r memLedger) Create(_ context.Context, tx *entity.Transaction) error {
	if r.m.failLedgerInsert {
		return errs.ErrDatabaseConnection
	}
	tx.ID = uint64(len(r.m.records) + 1)
	r.m.records = append(r.m.records, tx)
	return nil
}

func (r memLedger) ListForUser(context.Context, uint64, uint64) ([]*entity.Transaction, error) {
	return r.m.records, nil
}
