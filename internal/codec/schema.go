package codec

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// snapshotSchema describes the structural shape of a persisted snapshot.
// Record definitions are left open so that fields added by newer writers
// do not invalidate a snapshot; the three collections must be lists.
const snapshotSchema = `
#Project: {
	id:            int & >0
	name:          string
	userId:        int
	siteManagerId: int
	nweeks:        int & >=0
	total_cost:    number & >=0
	status:        "active" | "completed"
	...
}

#Task: {
	id:                int & >0
	projectId:         int & >0
	name:              string
	vendorId:          int
	category:          string
	week_id:           int & >=1
	completed_percent: int & >=0 & <=100
	images_before?:    null | string
	images_after?:     null | string
	notes?:            null | string
	status:            "active" | "completed"
	...
}

#Payment: {
	id:          int & >0
	projectId:   int & >0
	taskId:      int & >0
	vendorId:    int
	status:      "pending" | "approved" | "paid"
	requestDate: =~"^[0-9]{4}-[0-9]{2}-[0-9]{2}$"
	...
}

#Snapshot: {
	version?: int & >=0
	projects: [...#Project]
	tasks:    [...#Task]
	payments: [...#Payment]
	vendorId: int
	...
}
`

var (
	schemaMu    sync.Mutex
	schemaOnce  sync.Once
	schemaCtx   *cue.Context
	schemaValue cue.Value
	schemaErr   error
)

func snapshotDefinition() (*cue.Context, cue.Value, error) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		v := schemaCtx.CompileString(snapshotSchema)
		if err := v.Err(); err != nil {
			schemaErr = fmt.Errorf("compiling snapshot schema: %w", err)
			return
		}
		schemaValue = v.LookupPath(cue.ParsePath("#Snapshot"))
		if err := schemaValue.Err(); err != nil {
			schemaErr = fmt.Errorf("looking up #Snapshot: %w", err)
		}
	})
	return schemaCtx, schemaValue, schemaErr
}

// ValidateJSON checks raw JSON against the snapshot schema.
func ValidateJSON(data []byte) error {
	// cue.Context is not safe for concurrent compilation.
	schemaMu.Lock()
	defer schemaMu.Unlock()

	ctx, def, err := snapshotDefinition()
	if err != nil {
		return err
	}
	doc := ctx.CompileBytes(data)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
