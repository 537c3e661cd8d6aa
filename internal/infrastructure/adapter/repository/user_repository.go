package repository

import (
	"context"

	"github.com/kunalPisolkar24/payflow/internal/domain/entity"
	errs "github.com/kunalPisolkar24/payflow/internal/domain/error"
	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/kunalPisolkar24/payflow/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// handleDatabaseError logs and maps a database error
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.MapError(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	if errs.IsNotFoundError(mapped) {
		return mapped
	}

	fields["operation"] = operation
	fields["error"] = err.Error()
	r.logger.Error("User repository error", fields)
	return mapped
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_id", err, map[string]any{"user_id": id})
	}
	return userToEntity(&userModel), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_email", err, map[string]any{})
	}
	return userToEntity(&userModel), nil
}

// Create stores a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("create", err, map[string]any{})
	}

	user.ID = userModel.ID
	r.logger.Debug("User stored", map[string]any{
		"user_id": user.ID,
	})
	return nil
}

// ListExcept returns every user other than excludeID, ordered by name
func (r *UserRepository) ListExcept(ctx context.Context, excludeID uint64) ([]*entity.User, error) {
	var userModels []model.User
	err := r.db.WithContext(ctx).
		Where("id <> ?", excludeID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "name"}}).
		Order("id").
		Find(&userModels).Error
	if err != nil {
		return nil, r.handleDatabaseError("list_except", err, map[string]any{"user_id": excludeID})
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, nil
}

// walletOwner is one row of the wallet to owner name projection
type walletOwner struct {
	WalletID uint64
	Name     string
}

// NamesByWalletIDs maps each wallet ID to the name of its owner
func (r *UserRepository) NamesByWalletIDs(ctx context.Context, walletIDs []uint64) (map[uint64]string, error) {
	names := make(map[uint64]string, len(walletIDs))
	if len(walletIDs) == 0 {
		return names, nil
	}

	var rows []walletOwner
	err := r.db.WithContext(ctx).
		Model(&model.Wallet{}).
		Select("wallets.id AS wallet_id, users.name AS name").
		Joins("JOIN users ON users.id = wallets.user_id").
		Where("wallets.id IN ?", walletIDs).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("names_by_wallet_ids", err, map[string]any{"wallet_ids": walletIDs})
	}

	for _, row := range rows {
		names[row.WalletID] = row.Name
	}
	return names, nil
}
