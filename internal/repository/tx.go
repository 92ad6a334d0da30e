package repository

import (
	"context"
	"database/sql"
	"log"

	"gorm.io/gorm"
)

const maxTxAttempts = 3

// transact runs fn in one transaction, serializable on PostgreSQL, retrying
// serialization failures.
func transact(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var opts []*sql.TxOptions
	if isPostgres(db) {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.WithContext(ctx).Transaction(fn, opts...)
		if !isSerializationFailure(err) {
			return err
		}
		log.Printf("tx_retry attempt=%d error=%q", attempt, err.Error())
	}
	return err
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}
