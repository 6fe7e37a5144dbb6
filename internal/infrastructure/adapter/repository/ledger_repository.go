package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pkulak/moneybot/internal/domain/entity"
	errs "github.com/pkulak/moneybot/internal/domain/error"
	"github.com/pkulak/moneybot/internal/domain/identity"
	coreport "github.com/pkulak/moneybot/internal/domain/port/core"
	"github.com/pkulak/moneybot/internal/infrastructure/adapter/model"
)

// LedgerRepository implements the LedgerRepository port on a single sqlite
// file. Every call is serialized through one mutex: the store is one logical
// connection and no two read-modify-write sequences may interleave on it.
type LedgerRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	mu           sync.Mutex
}

// Open connects to the sqlite database at path, migrates the schema, and, if
// the file did not exist before this process started, writes the two seed
// transactions. The existence check happens before gorm touches the file, so
// reopening an already-initialized store never re-seeds.
func Open(path string, timeProvider coreport.TimeProvider, logger coreport.Logger) (*LedgerRepository, error) {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	if err := db.AutoMigrate(&model.Transaction{}, &model.MinimumBalance{}); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	repo := &LedgerRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}

	if !existed {
		if err := repo.seed(context.Background()); err != nil {
			return nil, err
		}
		logger.Info("initialized new ledger database", map[string]any{
			"path": path,
		})
	}

	return repo, nil
}

// seed mints the fixed starting balances for the two seed accounts.
func (r *LedgerRepository) seed(ctx context.Context) error {
	for _, account := range []string{identity.AccountGwen, identity.AccountPhil} {
		transaction, err := entity.NewTransaction(
			entity.MintedSender, account, entity.SeedAmount, entity.SeedMemo, r.timeProvider)
		if err != nil {
			return err
		}

		if _, err := r.Append(ctx, transaction); err != nil {
			return err
		}
	}
	return nil
}

// modelToEntity converts a database row to a transaction entity.
func modelToEntity(m *model.Transaction) entity.Transaction {
	return entity.Transaction{
		ID:       m.ID,
		Sender:   m.Sender,
		Receiver: m.Receiver,
		Amount:   m.Amount,
		Date:     m.Date,
		Memo:     m.Memo,
	}
}

// Append durably persists a new transaction and returns its assigned id.
func (r *LedgerRepository) Append(ctx context.Context, transaction *entity.Transaction) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := model.Transaction{
		Sender:   transaction.Sender,
		Receiver: transaction.Receiver,
		Amount:   transaction.Amount,
		Date:     transaction.Date,
		Memo:     transaction.Memo,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.logger.Error("failed to append transaction", map[string]any{
			"receiver": transaction.Receiver,
			"error":    err.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	r.logger.Debug("transaction appended", map[string]any{
		"id":       row.ID,
		"sender":   row.Sender,
		"receiver": row.Receiver,
		"amount":   row.Amount,
	})

	return row.ID, nil
}

// SumSent returns the total amount the account has sent, 0 if none.
func (r *LedgerRepository) SumSent(ctx context.Context, account string) (int64, error) {
	return r.sum(ctx, "sender", account)
}

// SumReceived returns the total amount the account has received, 0 if none.
func (r *LedgerRepository) SumReceived(ctx context.Context, account string) (int64, error) {
	return r.sum(ctx, "receiver", account)
}

func (r *LedgerRepository) sum(ctx context.Context, column, account string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where(column+" = ?", account).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	return total, nil
}

// MinimumBalance returns the account's floor, defaulting to 0.
func (r *LedgerRepository) MinimumBalance(ctx context.Context, account string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var row model.MinimumBalance
	err := r.db.WithContext(ctx).First(&row, "account = ?", account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	return row.Floor, nil
}

// SetMinimumBalance upserts the account's floor; idempotent.
func (r *LedgerRepository) SetMinimumBalance(ctx context.Context, account string, floor int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row := model.MinimumBalance{Account: account, Floor: floor}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "account"}},
			DoUpdates: clause.AssignmentColumns([]string{"floor"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	return nil
}

// RecentTransactions returns the most recent transactions touching the
// account, newest first, ordered by date with ties broken by id.
func (r *LedgerRepository) RecentTransactions(ctx context.Context, account string, limit int) ([]entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Where("sender = ? OR receiver = ?", account, account).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	transactions := make([]entity.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, modelToEntity(&rows[i]))
	}

	return transactions, nil
}

// AccountKnown reports whether the account appears in at least one
// transaction.
func (r *LedgerRepository) AccountKnown(ctx context.Context, account string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Where("sender = ? OR receiver = ?", account, account).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
	}

	return count > 0, nil
}
