// Package session carries the identity of the vendor a caller acts for.
// Every query and workflow call receives a Session explicitly instead of
// reading process-wide state.
package session

import (
	"fmt"

	"github.com/alexanderramin/siteworks/internal/domain"
)

type Session struct {
	vendorID int
}

// New returns a session scoped to vendorID.
func New(vendorID int) (Session, error) {
	if vendorID <= 0 {
		return Session{}, domain.NewValidationError(domain.CodeInvalidSession,
			fmt.Sprintf("vendor id must be positive, got %d", vendorID))
	}
	return Session{vendorID: vendorID}, nil
}

// VendorID returns the vendor this session is scoped to.
func (s Session) VendorID() int { return s.vendorID }

// Valid reports whether the session was built through New.
func (s Session) Valid() bool { return s.vendorID > 0 }

// Owns reports whether a record owned by vendorID is visible to s.
func (s Session) Owns(vendorID int) bool {
	return s.Valid() && s.vendorID == vendorID
}
