package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/siteworks/internal/db"
	"github.com/alexanderramin/siteworks/internal/domain"
)

const taskColumns = `id, project_id, name, vendor_id, category, week_id, completed_percent,
		images_before, images_after, notes, status`

// SQLiteTaskRepo implements TaskRepo over a DB or a transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) ReplaceAll(ctx context.Context, tasks []domain.Task) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	query := `INSERT INTO tasks (position, ` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for i, t := range tasks {
		_, err := r.db.ExecContext(ctx, query,
			i,
			t.ID,
			t.ProjectID,
			t.Name,
			t.VendorID,
			t.Category,
			t.WeekID,
			t.CompletedPercent,
			nullableString(t.ImagesBefore),
			nullableString(t.ImagesAfter),
			nullableString(t.Notes),
			string(t.Status),
		)
		if err != nil {
			return fmt.Errorf("inserting task %d: %w", t.ID, err)
		}
	}
	return nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func scanTask(rows *sql.Rows) (domain.Task, error) {
	var t domain.Task
	var status string
	var before, after, notes sql.NullString

	err := rows.Scan(
		&t.ID, &t.ProjectID, &t.Name, &t.VendorID, &t.Category,
		&t.WeekID, &t.CompletedPercent,
		&before, &after, &notes,
		&status,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("scanning task row: %w", err)
	}
	t.Status = domain.TaskStatus(status)
	t.ImagesBefore = stringPtr(before)
	t.ImagesAfter = stringPtr(after)
	t.Notes = stringPtr(notes)
	return t, nil
}
