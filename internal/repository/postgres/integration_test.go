//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/acmedash/invoicer-server/internal/config"
	"github.com/acmedash/invoicer-server/internal/model"
	repo "github.com/acmedash/invoicer-server/internal/repository/postgres"
	"github.com/acmedash/invoicer-server/internal/testutil"
)

var dbConfig config.Database

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "invoicer_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dbConfig = config.Database{
		DSN:       fmt.Sprintf("postgres://postgres:password@%s:%s/invoicer_test?sslmode=disable", host, port.Port()),
		Transport: config.TransportSecure,
		TLS:       false,
	}

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestInvoiceRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	log := testutil.MakeNoopLogger()
	invoices := repo.NewInvoiceRepository(conn, log)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, invoices.Create(ctx, model.CreateInvoiceParams{
		CustomerID:  "cust-1",
		AmountCents: 1250,
		Status:      model.InvoiceStatusPending,
		Date:        date,
	}))

	var (
		id          uuid.UUID
		amountCents int64
		status      string
		storedDate  time.Time
	)
	row := conn.QueryRow(ctx, `SELECT id, amount, status, date FROM invoices WHERE customer_id = $1`, "cust-1")
	require.NoError(t, row.Scan(&id, &amountCents, &status, &storedDate))
	assert.Equal(t, int64(1250), amountCents)
	assert.Equal(t, "pending", status)
	assert.Equal(t, date.Format("2006-01-02"), storedDate.Format("2006-01-02"))

	// Full-field replace leaves the date column untouched.
	require.NoError(t, invoices.Update(ctx, model.UpdateInvoiceParams{
		ID:          id,
		CustomerID:  "cust-2",
		AmountCents: 9900,
		Status:      model.InvoiceStatusPaid,
	}))

	row = conn.QueryRow(ctx, `SELECT customer_id, amount, status, date FROM invoices WHERE id = $1`, id)
	var customerID string
	require.NoError(t, row.Scan(&customerID, &amountCents, &status, &storedDate))
	assert.Equal(t, "cust-2", customerID)
	assert.Equal(t, int64(9900), amountCents)
	assert.Equal(t, "paid", status)
	assert.Equal(t, date.Format("2006-01-02"), storedDate.Format("2006-01-02"))

	require.NoError(t, invoices.Delete(ctx, id))

	var count int
	require.NoError(t, conn.QueryRow(ctx, `SELECT count(*) FROM invoices WHERE id = $1`, id).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestInvoiceRepository_DeleteMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	invoices := repo.NewInvoiceRepository(conn, testutil.MakeNoopLogger())

	require.NoError(t, invoices.Delete(ctx, uuid.New()))
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dbConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := repo.NewUserRepository(conn, testutil.MakeNoopLogger())

	_, err = users.GetByEmail(ctx, "missing@example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))

	_, err = conn.Exec(ctx, `INSERT INTO users (name, email, password) VALUES ($1, $2, $3)`,
		"Ada", "ada@example.com", "$2a$10$hashhashhashhashhashha")
	require.NoError(t, err)

	user, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEmpty(t, user.Password)
	assert.NotEqual(t, uuid.Nil, user.ID)
}
