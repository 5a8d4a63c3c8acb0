package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/siteworks/internal/notify"
	"github.com/alexanderramin/siteworks/internal/repository"
	"github.com/alexanderramin/siteworks/internal/session"
	"github.com/alexanderramin/siteworks/internal/store"
	"github.com/alexanderramin/siteworks/internal/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 14, 16, 45, 0, 0, time.UTC)

type harness struct {
	store    *store.Store
	flaky    *testutil.FlakySnapshotRepo
	sink     *notify.Recorder
	observer *RecordingObserver
	ws       Workspace
}

// newHarness wires a workspace over a freshly seeded in-memory store.
func newHarness(t *testing.T) *harness {
	t.Helper()
	flaky := &testutil.FlakySnapshotRepo{Inner: repository.NewMemorySnapshotRepo(nil)}
	st := store.New(flaky)
	st.Load(context.Background())
	require.NoError(t, st.LastPersistError())

	sink := &notify.Recorder{}
	obs := &RecordingObserver{}
	clock := func() time.Time { return fixedNow }
	ws := NewWorkspace(st, sink,
		NewTaskService(st, sink, obs),
		NewPaymentService(st, sink, clock, obs),
	)
	return &harness{store: st, flaky: flaky, sink: sink, observer: obs, ws: ws}
}

func vendorSession(t *testing.T, vendorID int) session.Session {
	t.Helper()
	sess, err := session.New(vendorID)
	require.NoError(t, err)
	return sess
}
