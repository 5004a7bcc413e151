package model

import "time"

// OrderDateLayout is the textual form of order_date used on the command line
// and in rendered result sets.
const OrderDateLayout = "2006-01-02 15:04:05"

type Order struct {
	ID        int64         `json:"id"`
	OrderDate time.Time     `json:"order_date"`
	Details   []OrderDetail `json:"details,omitempty"`
}

type OrderDetail struct {
	ID              int64  `json:"id,omitempty"`
	ItemDescription string `json:"item_description"`
	OrderID         int64  `json:"order_id"`
}

// ResultSet is a query result with every cell already rendered as text.
type ResultSet struct {
	Columns []string
	Rows    [][]string
}

func (r ResultSet) Empty() bool { return len(r.Rows) == 0 }

type EventType string

const (
	EventOrderCreated EventType = "order.created"
	EventOrderDeleted EventType = "order.deleted"
)

type Event struct {
	Type      EventType `json:"type"`
	OrderID   int64     `json:"order_id,omitempty"`
	OrderDate string    `json:"order_date"`
	Items     []string  `json:"items,omitempty"`
	Rows      int64     `json:"rows"`
	At        time.Time `json:"at"`
}
