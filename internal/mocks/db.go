package mocks

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
)

// fakeDriver is a no-op database/sql driver. It exists so tests can hand a
// real *sql.DB to code that runs store.RunInTransaction without a database:
// transactions begin, commit, and roll back successfully, while any attempt
// to actually prepare a statement fails loudly.
type fakeDriver struct{}

func (fakeDriver) Open(name string) (driver.Conn, error) { return fakeConn{}, nil }

type fakeConn struct{}

func (fakeConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("fakedb does not support statements")
}
func (fakeConn) Close() error              { return nil }
func (fakeConn) Begin() (driver.Tx, error) { return fakeTx{}, nil }

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

var registerFakeDriver sync.Once

// NewFakeDB returns a *sql.DB backed by the no-op driver. Transactions
// succeed; queries do not. Suitable only for exercising transaction plumbing
// against in-memory stores whose WithTx returns the store itself.
func NewFakeDB() *sql.DB {
	registerFakeDriver.Do(func() {
		sql.Register("fakedb", fakeDriver{})
	})

	db, err := sql.Open("fakedb", "")
	if err != nil {
		// sql.Open with a registered driver only fails on a bad DSN,
		// which cannot happen here.
		panic(err)
	}
	return db
}
