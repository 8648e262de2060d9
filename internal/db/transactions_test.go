package db

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	value int64
	err   error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.value
	return nil
}

type fakeDBTX struct {
	sql  string
	args []interface{}
	row  fakeRow
	err  error
}

func (f *fakeDBTX) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func (f *fakeDBTX) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, f.err
}

func (f *fakeDBTX) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	f.sql, f.args = sql, args
	return f.row
}

func TestQueries_InsertTransaction(t *testing.T) {
	conn := &fakeDBTX{}
	q := New(conn)

	err := q.InsertTransaction(context.Background(), InsertTransactionParams{TxHash: "0xhash", UserAddress: "0xuser"})
	require.NoError(t, err)
	assert.Contains(t, conn.sql, "INSERT INTO transactions")
	assert.Equal(t, []interface{}{"0xhash", "0xuser"}, conn.args)

	conn.err = errors.New("duplicate key")
	assert.Error(t, q.InsertTransaction(context.Background(), InsertTransactionParams{TxHash: "0xhash"}))
}

func TestQueries_CountTransactionsSince(t *testing.T) {
	since := pgtype.Timestamptz{Time: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), Valid: true}
	conn := &fakeDBTX{row: fakeRow{value: 2}}

	count, err := New(conn).CountTransactionsSince(context.Background(), CountTransactionsSinceParams{UserAddress: "0xuser", CreatedAt: since})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Equal(t, []interface{}{"0xuser", since}, conn.args)

	conn.row = fakeRow{err: pgx.ErrNoRows}
	_, err = New(conn).CountTransactionsSince(context.Background(), CountTransactionsSinceParams{UserAddress: "0xuser"})
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestQueries_ListTransactionsByUserAddress_QueryError(t *testing.T) {
	conn := &fakeDBTX{err: errors.New("connection reset")}
	_, err := New(conn).ListTransactionsByUserAddress(context.Background(), "0xuser")
	assert.Error(t, err)
}

func TestMigrationNames(t *testing.T) {
	names, err := migrationNames()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, []string{"0001_create_transactions.sql", "0002_created_at_timestamptz.sql"}, names)
}

// Runs against a real database when TEST_DATABASE_URL is set.
func TestLedger_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if testing.Short() || dsn == "" {
		t.Skip("Skipping database test: TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := Connect(ctx, dsn, 5*time.Second)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, Migrate(ctx, pool))
	require.NoError(t, Migrate(ctx, pool))

	user := "0x" + time.Now().Format("20060102150405.000000")
	q := New(pool)
	require.NoError(t, q.InsertTransaction(ctx, InsertTransactionParams{TxHash: user + "-a", UserAddress: user}))
	require.NoError(t, q.InsertTransaction(ctx, InsertTransactionParams{TxHash: user + "-b", UserAddress: user}))

	count, err := q.CountTransactionsSince(ctx, CountTransactionsSinceParams{
		UserAddress: user,
		CreatedAt:   pgtype.Timestamptz{Time: time.Now().Add(-time.Hour).UTC(), Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	rows, err := q.ListTransactionsByUserAddress(ctx, user)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	t.Run("session time zone does not shift created_at", func(t *testing.T) {
		conn, err := pool.Acquire(ctx)
		require.NoError(t, err)
		defer conn.Release()
		_, err = conn.Exec(ctx, "SET TIME ZONE 'America/New_York'")
		require.NoError(t, err)
		defer func() { _, _ = conn.Exec(ctx, "RESET TIME ZONE") }()

		zoned := user + "-ny"
		before := time.Now().Add(-time.Minute)
		local := New(conn)
		require.NoError(t, local.InsertTransaction(ctx, InsertTransactionParams{TxHash: zoned, UserAddress: zoned}))

		count, err := local.CountTransactionsSince(ctx, CountTransactionsSinceParams{
			UserAddress: zoned,
			CreatedAt:   pgtype.Timestamptz{Time: before.UTC(), Valid: true},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		rows, err := local.ListTransactionsByUserAddress(ctx, zoned)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.WithinDuration(t, time.Now(), rows[0].CreatedAt.Time, time.Minute)
	})
}
