package internal

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/rm-hull/paypal-api/internal/models"
	"github.com/tavsec/gin-healthcheck/checks"
)

//go:embed sql/upsert_invoice.sql
var upsertInvoiceSQL string

//go:embed sql/search_invoices.sql
var searchInvoicesSQL string

//go:embed sql/last_synced.sql
var lastSyncedSQL string

type InvoiceRepository interface {
	UpsertInvoices(batch []models.Invoice) (int, error)
	Search(status models.InvoiceStatus, limit int) ([]models.InvoiceSummary, error)
	LastSynced() (*time.Time, error)
	Check() checks.Check
	Close() error
}

type sqliteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewInvoiceRepository(db *sql.DB) InvoiceRepository {
	return &sqliteRepository{
		db:  db,
		now: time.Now,
	}
}

func (repo *sqliteRepository) UpsertInvoices(batch []models.Invoice) (n int, err error) {
	if len(batch) == 0 {
		return 0, nil
	}

	tx, err := repo.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("error rolling back transaction: %v", rbErr)
			}
		}
	}()

	stmt, err := tx.Prepare(upsertInvoiceSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Printf("failed to close statement: %v", err)
		}
	}()

	syncedAt := repo.now().UTC()
	for _, invoice := range batch {
		args := append(invoice.ToTuple(), syncedAt)
		if _, err = stmt.Exec(args...); err != nil {
			return 0, fmt.Errorf("failed to upsert invoice %s: %w", invoice.Id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(batch), nil
}

func (repo *sqliteRepository) Search(status models.InvoiceStatus, limit int) ([]models.InvoiceSummary, error) {
	rows, err := repo.db.Query(searchInvoicesSQL, string(status), string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	results := make([]models.InvoiceSummary, 0, limit)
	for rows.Next() {
		var result models.InvoiceSummary
		var updatedAt sql.NullTime
		if err := rows.Scan(
			&result.Id, &result.InvoiceNumber, &result.Status, &result.CurrencyCode,
			&result.Amount, &result.DueAmount, &result.InvoiceDate, &result.Recipient,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		if updatedAt.Valid {
			result.UpdatedAt = &updatedAt.Time
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over rows: %w", err)
	}

	return results, nil
}

func (repo *sqliteRepository) LastSynced() (*time.Time, error) {
	var syncedAt sql.NullTime
	err := repo.db.QueryRow(lastSyncedSQL).Scan(&syncedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query last sync time: %w", err)
	}
	if !syncedAt.Valid {
		return nil, nil
	}
	return &syncedAt.Time, nil
}

func (repo *sqliteRepository) Check() checks.Check {
	return &sqliteCheck{db: repo.db}
}

func (repo *sqliteRepository) Close() error {
	return repo.db.Close()
}

type sqliteCheck struct {
	db *sql.DB
}

func (check *sqliteCheck) Pass() bool {
	return check.db.Ping() == nil
}

func (check *sqliteCheck) Name() string {
	return "sqlite"
}
