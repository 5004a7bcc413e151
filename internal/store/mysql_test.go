package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newMySQLMock(t *testing.T) (*MySQLRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewMySQL(db, Tables{Orders: "storefront.order", Details: "storefront.order_details"}, zerolog.Nop())
	require.NoError(t, err)
	return repo, mock
}

func TestMySQLRepo_Select(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `storefront`.`order` WHERE `order_date` = ?")).
		WithArgs(orderDate).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_date", "note"}).
			AddRow(42, "2025-01-28 01:01:01", nil))

	rs, err := repo.Select(context.Background(), "storefront.order", "order_date", orderDate)
	require.NoError(t, err)
	require.Equal(t, []string{"id", "order_date", "note"}, rs.Columns)
	require.Equal(t, [][]string{{"42", "2025-01-28 01:01:01", "null"}}, rs.Rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepo_SelectError(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `storefront`.`order` WHERE `order_date` = ?")).
		WillReturnError(errors.New("Table 'storefront.order' doesn't exist"))

	_, err := repo.Select(context.Background(), "storefront.order", "order_date", orderDate)
	require.ErrorContains(t, err, "doesn't exist")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepo_InsertOrderWithDetails(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `storefront`.`order` (order_date) VALUES (?)")).
		WithArgs(orderDate).
		WillReturnResult(sqlmock.NewResult(42, 1))
	detail := regexp.QuoteMeta("INSERT INTO `storefront`.`order_details` (item_description, order_id) VALUES (?, ?)")
	mock.ExpectExec(detail).WithArgs("description1", int64(42)).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(detail).WithArgs("description2", int64(42)).WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	o, err := repo.InsertOrderWithDetails(context.Background(), orderDate, []string{"description1", "description2"})
	require.NoError(t, err)
	require.Equal(t, int64(42), o.ID)
	require.Equal(t, orderDate, o.OrderDate)
	require.Len(t, o.Details, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepo_InsertRollsBackOnDetailFailure(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `storefront`.`order` (order_date) VALUES (?)")).
		WithArgs(orderDate).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `storefront`.`order_details`")).
		WillReturnError(errors.New("Error 1452: Cannot add or update a child row"))
	mock.ExpectRollback()

	_, err := repo.InsertOrderWithDetails(context.Background(), orderDate, []string{"description1", "description2"})
	require.ErrorContains(t, err, "insert order detail 0")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepo_InsertWithoutGeneratedKey(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `storefront`.`order` (order_date) VALUES (?)")).
		WithArgs(orderDate).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	_, err := repo.InsertOrderWithDetails(context.Background(), orderDate, []string{"description1"})
	require.ErrorIs(t, err, ErrNoGeneratedKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepo_DeleteOrdersByDate(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `storefront`.`order` WHERE order_date = ?")).
		WithArgs(orderDate).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := repo.DeleteOrdersByDate(context.Background(), orderDate)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepo_DeleteCommitFailure(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `storefront`.`order` WHERE order_date = ?")).
		WithArgs(orderDate).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	_, err := repo.DeleteOrdersByDate(context.Background(), orderDate)
	require.ErrorContains(t, err, "commit: connection reset")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLRepo_DeleteRollsBack(t *testing.T) {
	repo, mock := newMySQLMock(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `storefront`.`order` WHERE order_date = ?")).
		WithArgs(orderDate).
		WillReturnError(errors.New("Error 1205: Lock wait timeout exceeded"))
	mock.ExpectRollback()

	_, err := repo.DeleteOrdersByDate(context.Background(), orderDate)
	require.ErrorContains(t, err, "delete orders: Error 1205")
	require.NoError(t, mock.ExpectationsWereMet())
}
