package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

func paymentRow(id uint64, ref any) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "tenant_id", "amount", "paid_on", "method", "status",
		"notes", "provider_ref", "created_at", "updated_at"}).
		AddRow(id, 5, 1200.0, now, "credit_card", "pending", nil, ref, now, now)
}

func TestPaymentRepoManagerScope(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentRepo(db)

	// manager scope goes through the tenants join, not a payment column
	mock.ExpectQuery("JOIN tenants t ON t.id = p.tenant_id").
		WithArgs(uint64(9), uint64(7)).
		WillReturnRows(paymentRow(9, "12345"))

	p, err := repo.GetByIDAndManager(context.Background(), 9, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(5), p.TenantID)
	require.NotNil(t, p.ProviderRef)
	require.Equal(t, "12345", *p.ProviderRef)
	require.Equal(t, "", p.Notes) // NULL notes read back as empty string
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentRepo(db)

	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("SELECT .+ FROM payments p WHERE p.id = \\?").
		WithArgs(uint64(9)).
		WillReturnRows(paymentRow(9, nil))

	p := &model.Payment{TenantID: 5, Amount: 1200, PaidOn: time.Now().UTC(),
		Method: "credit_card", Status: "pending"}
	require.NoError(t, repo.Create(context.Background(), p))
	require.Equal(t, uint64(9), p.ID)
	require.False(t, p.CreatedAt.IsZero()) // re-read fills in stored defaults
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepoUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	repo := NewPaymentRepo(db)

	mock.ExpectExec("UPDATE payments SET status=\\?").
		WithArgs("completed", uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(context.Background(), 9, "completed"))

	mock.ExpectExec("UPDATE payments SET status=\\?").
		WithArgs("completed", uint64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.Error(t, repo.UpdateStatus(context.Background(), 10, "completed"))

	require.NoError(t, mock.ExpectationsWereMet())
}
