package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"transaction-monitoring-api/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const transactionColumns = `id, card_number, amount, currency, timestamp, merchant_name,
		country, region, city, transaction_type, is_fraudulent, is_error, error_message`

// TransactionRepo implements ports.TransactionRepository.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// Create inserts t and sets its store-assigned ID.
func (r *TransactionRepo) Create(ctx context.Context, t *domain.Transaction) error {
	query := `INSERT INTO transactions (card_number, amount, currency, timestamp, merchant_name,
		country, region, city, transaction_type, is_fraudulent, is_error, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.pool.QueryRow(ctx, query,
		t.CardNumber, t.Amount, t.Currency, t.Timestamp, t.MerchantName,
		t.Country, t.Region, t.City, t.TransactionType,
		t.IsFraudulent, t.IsError, t.ErrorMessage,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID fetches a transaction by ID. It returns nil, nil when no row exists.
func (r *TransactionRepo) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	t := &domain.Transaction{}
	err := scanTransaction(r.pool.QueryRow(ctx, query, id), t)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// Delete removes a transaction by ID and reports whether a row was deleted.
func (r *TransactionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// maxPreallocRows caps the row buffer reserved up front; size is caller-controlled.
const maxPreallocRows = 100

// Find returns one page of transactions matching filter, ordered by the
// requested field with id as the tie-break.
func (r *TransactionRepo) Find(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) (*domain.Page, error) {
	column, ok := domain.SortColumn(page.SortField)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSortField, page.SortField)
	}
	direction := "DESC"
	if page.Direction == domain.SortAsc {
		direction = "ASC"
	}

	where, args := buildWhere(filter)

	countQuery := "SELECT COUNT(*) FROM transactions" + where
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	argIdx := len(args) + 1
	dataQuery := fmt.Sprintf(`SELECT %s FROM transactions%s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d`,
		transactionColumns, where, column, direction, direction, argIdx, argIdx+1)
	args = append(args, page.Size, page.Offset())

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Transaction, 0, min(page.Size, maxPreallocRows))
	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return &domain.Page{
		Items:      items,
		Number:     page.Page,
		Size:       page.Size,
		TotalItems: total,
	}, nil
}

// CountInWindow counts transactions with start <= timestamp < end.
func (r *TransactionRepo) CountInWindow(ctx context.Context, start, end time.Time) (*domain.WindowCounts, error) {
	query := `SELECT
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE is_fraudulent) AS fraudulent,
		COUNT(*) FILTER (WHERE is_error) AS errored
		FROM transactions WHERE timestamp >= $1 AND timestamp < $2`

	counts := &domain.WindowCounts{}
	err := r.pool.QueryRow(ctx, query, start, end).Scan(&counts.Total, &counts.Fraudulent, &counts.Errored)
	if err != nil {
		return nil, fmt.Errorf("count transactions in window: %w", err)
	}
	return counts, nil
}

// buildWhere renders the non-nil filter fields as a WHERE clause with
// positional arguments. It returns an empty clause for an empty filter.
func buildWhere(f domain.TransactionFilter) (string, []any) {
	var conditions []string
	var args []any
	add := func(expr string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if f.Country != nil {
		add("country = $%d", *f.Country)
	}
	if f.Region != nil {
		add("region = $%d", *f.Region)
	}
	if f.City != nil {
		add("city = $%d", *f.City)
	}
	if f.Amount != nil {
		add("amount >= $%d", f.Amount.Min)
		add("amount <= $%d", f.Amount.Max)
	}
	if f.Fraudulent != nil {
		add("is_fraudulent = $%d", *f.Fraudulent)
	}
	if f.Error != nil {
		add("is_error = $%d", *f.Error)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanTransaction(row pgx.Row, t *domain.Transaction) error {
	return row.Scan(
		&t.ID, &t.CardNumber, &t.Amount, &t.Currency, &t.Timestamp, &t.MerchantName,
		&t.Country, &t.Region, &t.City, &t.TransactionType,
		&t.IsFraudulent, &t.IsError, &t.ErrorMessage,
	)
}
