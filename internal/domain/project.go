package domain

import "fmt"

// Project is created and owned outside the core; the core only reads it.
type Project struct {
	ID            int           `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	UserID        int           `json:"userId" yaml:"userId"`
	SiteManagerID int           `json:"siteManagerId" yaml:"siteManagerId"`
	NWeeks        int           `json:"nweeks" yaml:"nweeks"`
	TotalCost     float64       `json:"total_cost" yaml:"total_cost"`
	Status        ProjectStatus `json:"status" yaml:"status"`
}

// Validate checks the field-level constraints of a project record.
func (p *Project) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("project id must be positive, got %d", p.ID)
	}
	if p.TotalCost < 0 {
		return fmt.Errorf("project %d: total cost must be non-negative", p.ID)
	}
	if !ValidProjectStatuses[p.Status] {
		return fmt.Errorf("project %d: unknown status %q", p.ID, p.Status)
	}
	return nil
}

// IsCompleted reports whether the project has been closed out.
func (p *Project) IsCompleted() bool {
	return p.Status == ProjectCompleted
}
