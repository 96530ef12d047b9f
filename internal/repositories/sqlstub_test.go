package repositories

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// recConn is a minimal database/sql driver connection that records every
// statement a repository runs, so tests can check the emitted SQL and
// transaction boundaries without a live database.
type recConn struct {
	queries   []string
	begins    int
	commits   int
	rollbacks int
}

type recDriver struct{ conn *recConn }

func (d *recDriver) Open(string) (driver.Conn, error) { return d.conn, nil }

func (c *recConn) Prepare(query string) (driver.Stmt, error) {
	return &recStmt{conn: c, query: query}, nil
}

func (c *recConn) Close() error { return nil }

func (c *recConn) Begin() (driver.Tx, error) {
	c.begins++
	return &recTx{conn: c}, nil
}

type recStmt struct {
	conn  *recConn
	query string
}

func (s *recStmt) Close() error  { return nil }
func (s *recStmt) NumInput() int { return -1 }

func (s *recStmt) Exec([]driver.Value) (driver.Result, error) {
	s.conn.queries = append(s.conn.queries, s.query)
	return driver.RowsAffected(1), nil
}

func (s *recStmt) Query([]driver.Value) (driver.Rows, error) {
	s.conn.queries = append(s.conn.queries, s.query)
	return &recRows{}, nil
}

type recTx struct{ conn *recConn }

func (t *recTx) Commit() error   { t.conn.commits++; return nil }
func (t *recTx) Rollback() error { t.conn.rollbacks++; return nil }

// recRows yields no rows; the statements themselves are what the tests
// look at.
type recRows struct{}

func (r *recRows) Columns() []string         { return nil }
func (r *recRows) Close() error              { return nil }
func (r *recRows) Next([]driver.Value) error { return io.EOF }

var stubConn = &recConn{}

func init() { sql.Register("recording", &recDriver{conn: stubConn}) }

func newRecordingDB(t *testing.T) (*sql.DB, *recConn) {
	t.Helper()
	stubConn.queries = nil
	stubConn.begins, stubConn.commits, stubConn.rollbacks = 0, 0, 0
	db, err := sql.Open("recording", "")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, stubConn
}
