package domain

import (
	"errors"
	"fmt"
)

// SnapshotVersion is the schema version written with every snapshot.
const SnapshotVersion = 1

// Snapshot is the complete serializable state of the three entity
// collections plus the current vendor id.
type Snapshot struct {
	Version  int       `json:"version" yaml:"version"`
	Projects []Project `json:"projects" yaml:"projects"`
	Tasks    []Task    `json:"tasks" yaml:"tasks"`
	Payments []Payment `json:"payments" yaml:"payments"`
	VendorID int       `json:"vendorId" yaml:"vendorId"`
}

// Clone returns a deep copy that shares no mutable state with s.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := &Snapshot{
		Version:  s.Version,
		VendorID: s.VendorID,
		Projects: make([]Project, len(s.Projects)),
		Tasks:    make([]Task, len(s.Tasks)),
		Payments: make([]Payment, len(s.Payments)),
	}
	copy(c.Projects, s.Projects)
	copy(c.Payments, s.Payments)
	for i, t := range s.Tasks {
		c.Tasks[i] = t.Clone()
	}
	return c
}

// Normalize folds blank optional strings to nil and fills nil collections
// so that encoded snapshots always carry three arrays.
func (s *Snapshot) Normalize() {
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Tasks == nil {
		s.Tasks = []Task{}
	}
	if s.Payments == nil {
		s.Payments = []Payment{}
	}
	if s.Version == 0 {
		s.Version = SnapshotVersion
	}
	for i := range s.Tasks {
		t := &s.Tasks[i]
		t.ImagesBefore = OptionalString(StringValue(t.ImagesBefore))
		t.ImagesAfter = OptionalString(StringValue(t.ImagesAfter))
		t.Notes = OptionalString(StringValue(t.Notes))
	}
}

// Validate checks every record plus referential consistency between
// projects, tasks and payments. All problems are joined into one error.
func (s *Snapshot) Validate() error {
	var errs []error

	if s.Version > SnapshotVersion {
		errs = append(errs, fmt.Errorf("snapshot version %d is newer than supported %d", s.Version, SnapshotVersion))
	}

	projects := make(map[int]bool, len(s.Projects))
	for i := range s.Projects {
		p := &s.Projects[i]
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
		if projects[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate project id %d", p.ID))
		}
		projects[p.ID] = true
	}

	tasks := make(map[int]*Task, len(s.Tasks))
	for i := range s.Tasks {
		t := &s.Tasks[i]
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, dup := tasks[t.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate task id %d", t.ID))
		}
		tasks[t.ID] = t
		if !projects[t.ProjectID] {
			errs = append(errs, fmt.Errorf("task %d references unknown project %d", t.ID, t.ProjectID))
		}
	}

	payments := make(map[int]bool, len(s.Payments))
	for i := range s.Payments {
		p := &s.Payments[i]
		if err := p.Validate(); err != nil {
			errs = append(errs, err)
		}
		if payments[p.ID] {
			errs = append(errs, fmt.Errorf("duplicate payment id %d", p.ID))
		}
		payments[p.ID] = true

		t, ok := tasks[p.TaskID]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("payment %d references unknown task %d", p.ID, p.TaskID))
		case t.ProjectID != p.ProjectID:
			errs = append(errs, fmt.Errorf("payment %d: task %d belongs to project %d, not %d", p.ID, t.ID, t.ProjectID, p.ProjectID))
		case t.VendorID != p.VendorID:
			errs = append(errs, fmt.Errorf("payment %d: vendor %d does not own task %d", p.ID, p.VendorID, t.ID))
		}
	}

	return errors.Join(errs...)
}
