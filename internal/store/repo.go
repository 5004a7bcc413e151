package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"demo/storefront/internal/model"
	"demo/storefront/internal/validate"
)

//go:generate mockgen -destination=storemock/mock_repository.go -package=storemock demo/storefront/internal/store Repository

// ErrNoGeneratedKey is returned when the store did not hand back a surrogate
// key for a freshly inserted order. The insert transaction is rolled back.
var ErrNoGeneratedKey = errors.New("no generated key returned for order")

type Repository interface {
	// Select returns every row of table where column equals value.
	Select(ctx context.Context, table, column string, value any) (model.ResultSet, error)
	// InsertOrderWithDetails inserts one order and one detail row per item in a
	// single transaction and returns the order with its generated key.
	InsertOrderWithDetails(ctx context.Context, orderDate time.Time, items []string) (model.Order, error)
	// DeleteOrdersByDate deletes every order with orderDate in a single
	// transaction. Details go with them through ON DELETE CASCADE.
	DeleteOrdersByDate(ctx context.Context, orderDate time.Time) (int64, error)
}

// Tables names the order header and line-item tables, optionally
// schema-qualified.
type Tables struct {
	Orders  string
	Details string
}

type quoteFunc func(parts []string) string

type quotedTables struct {
	orders  string
	details string
}

func (t Tables) quote(q quoteFunc) (quotedTables, error) {
	o, err := quoteIdent(t.Orders, q)
	if err != nil {
		return quotedTables{}, fmt.Errorf("orders table: %w", err)
	}
	d, err := quoteIdent(t.Details, q)
	if err != nil {
		return quotedTables{}, fmt.Errorf("details table: %w", err)
	}
	return quotedTables{orders: o, details: d}, nil
}

func quoteIdent(name string, q quoteFunc) (string, error) {
	parts, err := validate.Identifier(name)
	if err != nil {
		return "", err
	}
	return q(parts), nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case time.Time:
		return x.Format(model.OrderDateLayout)
	case []byte:
		return string(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
