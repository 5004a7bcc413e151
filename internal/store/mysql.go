package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"demo/storefront/internal/model"
)

// SQLIface is the part of *sql.DB the repository needs.
type SQLIface interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type MySQLRepo struct {
	DB  SQLIface
	log zerolog.Logger
	t   quotedTables
}

func NewMySQL(db SQLIface, tables Tables, log zerolog.Logger) (*MySQLRepo, error) {
	t, err := tables.quote(mysqlQuote)
	if err != nil {
		return nil, err
	}
	return &MySQLRepo{DB: db, log: log, t: t}, nil
}

func (r *MySQLRepo) Select(ctx context.Context, table, column string, value any) (model.ResultSet, error) {
	tbl, err := quoteIdent(table, mysqlQuote)
	if err != nil {
		return model.ResultSet{}, err
	}
	col, err := quoteIdent(column, mysqlQuote)
	if err != nil {
		return model.ResultSet{}, err
	}

	q := fmt.Sprintf("SELECT * FROM %s WHERE %s = ?", tbl, col)
	r.echo(q, value)
	rows, err := r.DB.QueryContext(ctx, q, value)
	if err != nil {
		return model.ResultSet{}, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return model.ResultSet{}, fmt.Errorf("select %s: %w", table, err)
	}
	rs := model.ResultSet{Columns: cols}
	vals := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range vals {
		dest[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return model.ResultSet{}, fmt.Errorf("select %s: %w", table, err)
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = formatCell(nil)
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return model.ResultSet{}, fmt.Errorf("select %s: %w", table, err)
	}
	return rs, nil
}

func (r *MySQLRepo) InsertOrderWithDetails(ctx context.Context, orderDate time.Time, items []string) (model.Order, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Order{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	o := model.Order{OrderDate: orderDate}

	q := fmt.Sprintf("INSERT INTO %s (order_date) VALUES (?)", r.t.orders)
	r.echo(q, orderDate)
	res, err := tx.ExecContext(ctx, q, orderDate)
	if err != nil {
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Order{}, fmt.Errorf("%w: %v", ErrNoGeneratedKey, err)
	}
	if id <= 0 {
		return model.Order{}, ErrNoGeneratedKey
	}
	o.ID = id

	q = fmt.Sprintf("INSERT INTO %s (item_description, order_id) VALUES (?, ?)", r.t.details)
	for i, it := range items {
		r.echo(q, it, o.ID)
		res, err := tx.ExecContext(ctx, q, it, o.ID)
		if err != nil {
			return model.Order{}, fmt.Errorf("insert order detail %d: %w", i, err)
		}
		r.logRows(res)
		o.Details = append(o.Details, model.OrderDetail{ItemDescription: it, OrderID: o.ID})
	}

	if err := tx.Commit(); err != nil {
		return model.Order{}, fmt.Errorf("commit: %w", err)
	}
	return o, nil
}

func (r *MySQLRepo) DeleteOrdersByDate(ctx context.Context, orderDate time.Time) (int64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	q := fmt.Sprintf("DELETE FROM %s WHERE order_date = ?", r.t.orders)
	r.echo(q, orderDate)
	res, err := tx.ExecContext(ctx, q, orderDate)
	if err != nil {
		return 0, fmt.Errorf("delete orders: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete orders: %w", err)
	}
	r.log.Info().Int64("rows", n).Msg("row count for DML")

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return n, nil
}

func (r *MySQLRepo) echo(q string, args ...any) {
	r.log.Info().Str("sql", q).Interface("args", args).Msg("exec")
}

func (r *MySQLRepo) logRows(res sql.Result) {
	if n, err := res.RowsAffected(); err == nil {
		r.log.Debug().Int64("rows", n).Msg("row count for DML")
	}
}

func mysqlQuote(parts []string) string {
	q := make([]string, len(parts))
	for i, p := range parts {
		q[i] = "`" + p + "`"
	}
	return strings.Join(q, ".")
}
