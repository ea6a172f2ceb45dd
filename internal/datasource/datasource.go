// Package datasource provides the embedded database handle every
// registration style wires into the bean container.
package datasource

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/km-arc/go-beans/framework/database"
)

// DataSource is a handle to a private in-memory SQLite database. It is owned
// by whichever bean definition created it.
type DataSource struct {
	name string
	db   *sql.DB
}

// NewEmbedded opens a fresh in-memory database with a unique generated name.
func NewEmbedded(ctx context.Context) (*DataSource, error) {
	name := "testdb-" + uuid.NewString()
	db, err := database.Open(ctx, database.DriverName, database.MemoryDSN(name))
	if err != nil {
		return nil, fmt.Errorf("embedded datasource %s: %w", name, err)
	}
	return &DataSource{name: name, db: db}, nil
}

// Name returns the generated database name.
func (d *DataSource) Name() string { return d.name }

// DB returns the underlying connection pool.
func (d *DataSource) DB() *sql.DB { return d.db }

func (d *DataSource) String() string {
	return fmt.Sprintf("EmbeddedDataSource[name=%s, driver=%s]", d.name, database.DriverName)
}

// Close releases the database. The in-memory contents are lost.
func (d *DataSource) Close() error { return d.db.Close() }
