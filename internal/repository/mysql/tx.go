package mysql

import (
	"context"

	"marketplace-backend/internal/repository"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager opens a gorm transaction and threads the transactional handle
// through the context, so repositories called inside fn share it. There is
// no package-level session; every data access resolves its handle from the
// request context.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) repository.TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFrom returns the in-flight transaction if ctx carries one, otherwise the
// repository's base handle bound to ctx.
func dbFrom(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return base.WithContext(ctx)
}
