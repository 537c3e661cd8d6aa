// Package idgen produces ledger references
package idgen

import (
	"crypto/rand"
	"io"
	"sync"

	coreport "github.com/kunalPisolkar24/payflow/internal/domain/port/core"
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator produces monotonic ULIDs. References created within the same
// millisecond still sort in creation order.
type ULIDGenerator struct {
	mu           sync.Mutex
	entropy      io.Reader
	timeProvider coreport.TimeProvider
}

// NewULIDGenerator creates a generator backed by crypto/rand
func NewULIDGenerator(timeProvider coreport.TimeProvider) *ULIDGenerator {
	return &ULIDGenerator{
		entropy:      ulid.Monotonic(rand.Reader, 0),
		timeProvider: timeProvider,
	}
}

var _ coreport.IDGenerator = (*ULIDGenerator)(nil)

// NewID returns a new 26 character reference
func (g *ULIDGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return ulid.MustNew(ulid.Timestamp(g.timeProvider.Now()), g.entropy).String()
}
