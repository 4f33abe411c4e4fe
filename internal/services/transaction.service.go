package services

import (
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionService scopes a unit of work to a single GORM transaction.
// Repositories pick the transaction up from the context, so a lifecycle
// operation's reads and writes either all commit or all roll back.
type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("TransactionService"),
	}
}

// Execute runs fn inside a transaction. Nested calls reuse the transaction
// already carried by the context.
func (s *TransactionService) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	log := s.log.Function("Execute")

	if _, ok := GetTransaction(ctx); ok {
		return fn(ctx)
	}

	return s.db.SQLWithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txContextKey{}, tx)
		if err := fn(txCtx); err != nil {
			log.Debug("rolling back transaction", "error", err)
			return err
		}
		return nil
	})
}

// GetTransaction returns the transaction stored in the context, if any.
func GetTransaction(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx, ok
}
