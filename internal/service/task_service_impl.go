package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/siteworks/internal/domain"
	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/session"
)

type taskService struct {
	store    SnapshotStore
	sink     notify.Sink
	observer UseCaseObserver
}

func NewTaskService(store SnapshotStore, sink notify.Sink, observers ...UseCaseObserver) TaskService {
	return &taskService{
		store:    store,
		sink:     sinkOrDiscard(sink),
		observer: useCaseObserverOrNoop(observers),
	}
}

// CompleteTask records evidence against an active task and closes it. The
// transition happens at most once per task.
func (s *taskService) CompleteTask(ctx context.Context, sess session.Session, req CompleteTaskRequest) (task *domain.Task, err error) {
	startedAt := time.Now().UTC()
	fields := useCaseFields(sess)
	fields["task"] = req.TaskID
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "complete-task",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()
	defer func() {
		report(ctx, s.sink, fmt.Sprintf("Task %d marked completed", req.TaskID), err)
	}()

	if err = checkSession(sess); err != nil {
		return nil, err
	}

	err = s.store.Mutate(ctx, func(snap *domain.Snapshot) error {
		t := findTask(snap, req.TaskID, sess)
		if t == nil {
			return &domain.NotFoundError{Entity: "task", ID: req.TaskID}
		}
		if err := t.Complete(req.BeforeRef, req.AfterRef, req.Notes); err != nil {
			return err
		}
		done := t.Clone()
		task = &done
		return nil
	})
	if task != nil {
		fields["project"] = task.ProjectID
	}
	return task, err
}

// findTask returns a pointer into snap, or nil when the task is missing or
// belongs to another vendor.
func findTask(snap *domain.Snapshot, taskID int, sess session.Session) *domain.Task {
	for i := range snap.Tasks {
		t := &snap.Tasks[i]
		if t.ID == taskID {
			if !sess.Owns(t.VendorID) {
				return nil
			}
			return t
		}
	}
	return nil
}
