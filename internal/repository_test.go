package internal

import (
	"os"
	"testing"
	"time"

	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) InvoiceRepository {
	tmpFile, err := os.CreateTemp("", "paypal_invoices_test-*.db")
	require.NoError(t, err)
	dbPath := tmpFile.Name()
	_ = tmpFile.Close()

	t.Cleanup(func() {
		_ = os.Remove(dbPath)
	})

	db, err := Connect(dbPath)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	err = Migrate("../migrations", dbPath)
	require.NoError(t, err)

	repo := NewInvoiceRepository(db)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	return repo
}

func testInvoice(id, number string, status models.InvoiceStatus, currency models.Currency, value, due, date string) models.Invoice {
	updated := time.Date(2024, 2, 11, 9, 30, 0, 0, time.UTC)
	invoice := models.Invoice{
		Id:     id,
		Status: status,
		Detail: models.InvoiceDetail{
			InvoiceNumber: number,
			CurrencyCode:  currency,
			InvoiceDate:   date,
			Metadata:      &models.Metadata{LastUpdateTime: &updated},
		},
		PrimaryRecipients: []models.RecipientInfo{
			{BillingInfo: &models.BillingInfo{EmailAddress: "bill-me@example.com"}},
		},
		Amount: models.InvoiceAmount{CurrencyCode: currency, Value: value},
	}
	if due != "" {
		invoice.DueAmount = &models.Money{CurrencyCode: currency, Value: due}
	}
	return invoice
}

func TestInvoiceRepository(t *testing.T) {
	repo := setupTestDB(t)

	lastSynced, err := repo.LastSynced()
	require.NoError(t, err)
	assert.Nil(t, lastSynced)

	n, err := repo.UpsertInvoices(nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.UpsertInvoices([]models.Invoice{
		testInvoice("INV2-0001", "0001", models.InvoiceStatusSent, models.USD, "74.21", "74.21", "2024-02-10"),
		testInvoice("INV2-0002", "0002", models.InvoiceStatusPaid, models.USD, "25.79", "0.00", "2024-02-12"),
		testInvoice("INV2-0003", "0003", models.InvoiceStatusDraft, models.JPY, "1500", "", "2024-02-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	t.Run("all statuses newest first", func(t *testing.T) {
		results, err := repo.Search("", 10)
		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "INV2-0003", results[0].Id)
		assert.Equal(t, "INV2-0002", results[1].Id)
		assert.Equal(t, "INV2-0001", results[2].Id)

		first := results[2]
		assert.Equal(t, "0001", first.InvoiceNumber)
		assert.Equal(t, models.InvoiceStatusSent, first.Status)
		assert.Equal(t, models.USD, first.CurrencyCode)
		assert.Equal(t, "74.21", first.Amount)
		assert.Equal(t, "74.21", first.DueAmount)
		assert.Equal(t, "bill-me@example.com", first.Recipient)
		require.NotNil(t, first.UpdatedAt)
		assert.True(t, first.UpdatedAt.Equal(time.Date(2024, 2, 11, 9, 30, 0, 0, time.UTC)))
	})

	t.Run("filter by status", func(t *testing.T) {
		results, err := repo.Search(models.InvoiceStatusPaid, 10)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "INV2-0002", results[0].Id)
	})

	t.Run("limit", func(t *testing.T) {
		results, err := repo.Search("", 2)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("upsert replaces existing rows", func(t *testing.T) {
		_, err := repo.UpsertInvoices([]models.Invoice{
			testInvoice("INV2-0001", "0001", models.InvoiceStatusPaid, models.USD, "74.21", "0.00", "2024-02-10"),
		})
		require.NoError(t, err)

		results, err := repo.Search(models.InvoiceStatusPaid, 10)
		require.NoError(t, err)
		assert.Len(t, results, 2)

		results, err = repo.Search(models.InvoiceStatusSent, 10)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("last synced", func(t *testing.T) {
		lastSynced, err := repo.LastSynced()
		require.NoError(t, err)
		require.NotNil(t, lastSynced)
		assert.WithinDuration(t, time.Now(), *lastSynced, time.Minute)
	})

	t.Run("health check", func(t *testing.T) {
		check := repo.Check()
		assert.Equal(t, "sqlite", check.Name())
		assert.True(t, check.Pass())
	})
}
