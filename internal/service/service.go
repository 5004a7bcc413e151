package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"demo/storefront/internal/events"
	"demo/storefront/internal/model"
	"demo/storefront/internal/store"
	"demo/storefront/internal/validate"
)

const orderDateColumn = "order_date"

// ErrMutationFailed is returned by Run when the insert or delete was rolled back.
var ErrMutationFailed = errors.New("order mutation rolled back")

// Presenter renders a result set and reports whether it had rows.
type Presenter interface {
	Present(rs model.ResultSet) (bool, error)
}

type Op string

const (
	OpInsert Op = "insert"
	OpDelete Op = "delete"
)

// Result is the outcome of one mutating transaction. A non-nil Err means the
// transaction was rolled back and the store is as it was before.
type Result struct {
	Op    Op
	Order model.Order
	// Rows is the number of orders inserted or deleted.
	Rows int64
	Err  error
}

func (r Result) OK() bool { return r.Err == nil }

// Service toggles an order: it deletes the order for a date when one exists
// and creates it with its details otherwise.
type Service struct {
	repo       store.Repository
	out        Presenter
	events     events.Publisher
	orderTable string
	log        zerolog.Logger
}

func New(repo store.Repository, out Presenter, pub events.Publisher, orderTable string, log zerolog.Logger) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{repo: repo, out: out, events: pub, orderTable: orderTable, log: log}
}

// RecordExists selects the rows of table where column equals value, renders
// them and reports whether there were any.
func (s *Service) RecordExists(ctx context.Context, table, column string, value any) (bool, error) {
	rs, err := s.repo.Select(ctx, table, column, value)
	if err != nil {
		return false, err
	}
	return s.out.Present(rs)
}

// InsertOrderWithDetails does not check that the date is free; Run does.
func (s *Service) InsertOrderWithDetails(ctx context.Context, orderDate time.Time, items []string) Result {
	res := Result{Op: OpInsert}
	log := s.log.With().Str("op", string(OpInsert)).Str("order_date", orderDate.Format(model.OrderDateLayout)).Logger()

	if err := validate.ValidateInsert(orderDate, items); err != nil {
		log.Error().Err(err).Msg("insert rejected")
		res.Err = err
		return res
	}

	o, err := s.repo.InsertOrderWithDetails(ctx, orderDate, items)
	if err != nil {
		log.Error().Err(err).Msg("insert rolled back")
		res.Err = err
		return res
	}
	res.Order = o
	res.Rows = 1
	log.Info().Int64("order_id", o.ID).Int("details", len(o.Details)).Msg("order inserted")

	s.publish(ctx, model.Event{
		Type:      model.EventOrderCreated,
		OrderID:   o.ID,
		OrderDate: orderDate.Format(model.OrderDateLayout),
		Items:     items,
		Rows:      res.Rows,
	})
	return res
}

// DeleteOrderWithDetails removes every order with orderDate. order_date is not
// unique, so this may remove more than one order.
func (s *Service) DeleteOrderWithDetails(ctx context.Context, orderDate time.Time) Result {
	res := Result{Op: OpDelete, Order: model.Order{OrderDate: orderDate}}
	log := s.log.With().Str("op", string(OpDelete)).Str("order_date", orderDate.Format(model.OrderDateLayout)).Logger()

	n, err := s.repo.DeleteOrdersByDate(ctx, orderDate)
	if err != nil {
		log.Error().Err(err).Msg("delete rolled back")
		res.Err = err
		return res
	}
	res.Rows = n
	switch {
	case n == 0:
		log.Info().Msg("nothing to delete")
		return res
	case n > 1:
		log.Warn().Int64("rows", n).Msg("deleted more than one order sharing the date")
	}

	s.publish(ctx, model.Event{
		Type:      model.EventOrderDeleted,
		OrderDate: orderDate.Format(model.OrderDateLayout),
		Rows:      n,
	})
	return res
}

// Run performs exactly one transition for orderDate. Errors from the existence
// check are returned as is; a rolled back mutation is returned as a Result
// together with an error wrapping ErrMutationFailed.
func (s *Service) Run(ctx context.Context, orderDate time.Time, items []string) (Result, error) {
	exists, err := s.RecordExists(ctx, s.orderTable, orderDateColumn, orderDate)
	if err != nil {
		return Result{}, fmt.Errorf("check order: %w", err)
	}

	var res Result
	if !exists {
		s.log.Info().Msg("record does not exist")
		res = s.InsertOrderWithDetails(ctx, orderDate, items)
		if _, err := s.RecordExists(ctx, s.orderTable, orderDateColumn, orderDate); err != nil {
			return res, fmt.Errorf("confirm order: %w", err)
		}
	} else {
		s.log.Info().Msg("order exists, attempting delete")
		res = s.DeleteOrderWithDetails(ctx, orderDate)
		if res.OK() {
			s.log.Info().Int64("rows", res.Rows).Msg("order deleted")
		}
	}

	if !res.OK() {
		return res, fmt.Errorf("%w: %s: %w", ErrMutationFailed, res.Op, res.Err)
	}
	return res, nil
}

// publish runs after commit; a failure cannot undo the change, so it is only logged.
func (s *Service) publish(ctx context.Context, ev model.Event) {
	ev.At = time.Now().UTC()
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("type", string(ev.Type)).Msg("publish order event")
	}
}
