package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const tableName = "kv_entries"

// PostgresStore keeps values in the kv_entries table.
type PostgresStore struct {
	exec bob.Executor
}

// Ensure PostgresStore implements IStore at compile time.
var _ IStore = (*PostgresStore)(nil)

// NewPostgresStore creates a PostgresStore for the given database.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{exec: bob.NewDB(db)}
}

// Set inserts the value or replaces the existing one.
func (p *PostgresStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := psql.Insert(
		im.Into(tableName, "key", "value", "updated_at"),
		im.Values(psql.Arg(key), psql.Arg(string(value)), psql.Raw("now()")),
		im.OnConflict("key").DoUpdate(
			im.SetExcluded("value", "updated_at"),
		),
	)
	_, err := bob.Exec(ctx, p.exec, query)
	return err
}

// Get returns the stored value, or false when the key is absent.
func (p *PostgresStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	query := psql.Select(
		sm.Columns("value"),
		sm.From(tableName),
		sm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)
	value, err := bob.One(ctx, p.exec, query, scan.SingleColumnMapper[[]byte])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(value), true, nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (p *PostgresStore) Remove(ctx context.Context, key string) error {
	query := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)
	_, err := bob.Exec(ctx, p.exec, query)
	return err
}
