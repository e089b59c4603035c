package mocks

import (
	"context"

	"dronline/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithinTransaction implements postgres.Transactor. The callback runs with a
// nil transaction handle; pair it with repository mocks that ignore the handle.
func (t *transactorImpl) WithinTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
