package repository

import "context"

// TxManager runs fn inside a database transaction. The transactional handle
// travels in the context, so repository calls made with the ctx passed to fn
// join the same transaction. An error from fn rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
