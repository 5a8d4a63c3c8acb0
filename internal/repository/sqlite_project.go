package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/siteworks/internal/db"
	"github.com/alexanderramin/siteworks/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo over a DB or a transaction.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

// ReplaceAll overwrites the table with projects, preserving their order.
// The delete cascades to tasks and payments, so projects go first.
func (r *SQLiteProjectRepo) ReplaceAll(ctx context.Context, projects []domain.Project) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("clearing projects: %w", err)
	}
	query := `INSERT INTO projects (id, position, name, user_id, site_manager_id, nweeks, total_cost, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, p := range projects {
		_, err := r.db.ExecContext(ctx, query,
			p.ID,
			i,
			p.Name,
			p.UserID,
			p.SiteManagerID,
			p.NWeeks,
			p.TotalCost,
			string(p.Status),
		)
		if err != nil {
			return fmt.Errorf("inserting project %d: %w", p.ID, err)
		}
	}
	return nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, user_id, site_manager_id, nweeks, total_cost, status
		FROM projects ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &p.UserID, &p.SiteManagerID, &p.NWeeks, &p.TotalCost, &status); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		p.Status = domain.ProjectStatus(status)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}
