package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/siteworks/internal/db"
	"github.com/alexanderramin/siteworks/internal/domain"
)

// SQLitePaymentRepo implements PaymentRepo over a DB or a transaction.
type SQLitePaymentRepo struct {
	db db.DBTX
}

func NewSQLitePaymentRepo(conn db.DBTX) *SQLitePaymentRepo {
	return &SQLitePaymentRepo{db: conn}
}

func (r *SQLitePaymentRepo) ReplaceAll(ctx context.Context, payments []domain.Payment) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments`); err != nil {
		return fmt.Errorf("clearing payments: %w", err)
	}
	query := `INSERT INTO payments (id, position, project_id, task_id, vendor_id, status, request_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i, p := range payments {
		_, err := r.db.ExecContext(ctx, query,
			p.ID,
			i,
			p.ProjectID,
			p.TaskID,
			p.VendorID,
			string(p.Status),
			p.RequestDate.String(),
		)
		if err != nil {
			return fmt.Errorf("inserting payment %d: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLitePaymentRepo) List(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, project_id, task_id, vendor_id, status, request_date
		FROM payments ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		var status, requestDate string
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.TaskID, &p.VendorID, &status, &requestDate); err != nil {
			return nil, fmt.Errorf("scanning payment row: %w", err)
		}
		p.Status = domain.PaymentStatus(status)
		d, err := domain.ParseDate(requestDate)
		if err != nil {
			return nil, fmt.Errorf("payment %d: %w", p.ID, err)
		}
		p.RequestDate = d
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}
	return payments, nil
}
