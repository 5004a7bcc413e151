package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"demo/storefront/internal/model"
)

// PgxIface is the part of *pgx.Conn the repository needs.
type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PgRepo struct {
	Conn PgxIface
	log  zerolog.Logger
	t    quotedTables
}

func NewPg(conn PgxIface, tables Tables, log zerolog.Logger) (*PgRepo, error) {
	t, err := tables.quote(pgQuote)
	if err != nil {
		return nil, err
	}
	return &PgRepo{Conn: conn, log: log, t: t}, nil
}

func (r *PgRepo) Select(ctx context.Context, table, column string, value any) (model.ResultSet, error) {
	tbl, err := quoteIdent(table, pgQuote)
	if err != nil {
		return model.ResultSet{}, err
	}
	col, err := quoteIdent(column, pgQuote)
	if err != nil {
		return model.ResultSet{}, err
	}

	q := fmt.Sprintf(`SELECT * FROM %s WHERE %s = $1`, tbl, col)
	r.echo(q, value)
	rows, err := r.Conn.Query(ctx, q, value)
	if err != nil {
		return model.ResultSet{}, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	var rs model.ResultSet
	for _, fd := range rows.FieldDescriptions() {
		rs.Columns = append(rs.Columns, fd.Name)
	}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return model.ResultSet{}, fmt.Errorf("select %s: %w", table, err)
		}
		row := make([]string, len(vals))
		for i, v := range vals {
			row[i] = formatCell(v)
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return model.ResultSet{}, fmt.Errorf("select %s: %w", table, err)
	}
	return rs, nil
}

func (r *PgRepo) InsertOrderWithDetails(ctx context.Context, orderDate time.Time, items []string) (model.Order, error) {
	tx, err := r.Conn.Begin(ctx)
	if err != nil {
		return model.Order{}, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	o := model.Order{OrderDate: orderDate}

	q := fmt.Sprintf(`INSERT INTO %s (order_date) VALUES ($1) RETURNING id`, r.t.orders)
	r.echo(q, orderDate)
	if err := tx.QueryRow(ctx, q, orderDate).Scan(&o.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Order{}, ErrNoGeneratedKey
		}
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}

	q = fmt.Sprintf(`INSERT INTO %s (item_description, order_id) VALUES ($1, $2)`, r.t.details)
	for i, it := range items {
		r.echo(q, it, o.ID)
		tag, err := tx.Exec(ctx, q, it, o.ID)
		if err != nil {
			return model.Order{}, fmt.Errorf("insert order detail %d: %w", i, err)
		}
		r.log.Debug().Int64("rows", tag.RowsAffected()).Msg("row count for DML")
		o.Details = append(o.Details, model.OrderDetail{ItemDescription: it, OrderID: o.ID})
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Order{}, fmt.Errorf("commit: %w", err)
	}
	return o, nil
}

func (r *PgRepo) DeleteOrdersByDate(ctx context.Context, orderDate time.Time) (int64, error) {
	tx, err := r.Conn.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	q := fmt.Sprintf(`DELETE FROM %s WHERE order_date = $1`, r.t.orders)
	r.echo(q, orderDate)
	tag, err := tx.Exec(ctx, q, orderDate)
	if err != nil {
		return 0, fmt.Errorf("delete orders: %w", err)
	}
	r.log.Info().Int64("rows", tag.RowsAffected()).Msg("row count for DML")

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgRepo) echo(q string, args ...any) {
	r.log.Info().Str("sql", q).Interface("args", args).Msg("exec")
}

func pgQuote(parts []string) string { return pgx.Identifier(parts).Sanitize() }
