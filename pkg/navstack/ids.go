package navstack

import (
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// idAllocator hands out strictly increasing ids. Ids are never reused, even
// after the entry holding them is removed.
type idAllocator struct {
	last atomic.Int64
}

func (a *idAllocator) allocate() ID {
	return ID(a.last.Inc())
}

// ids is shared by every stack in the process so that an id names one entry
// no matter which stack it lives on.
var ids idAllocator

// identify attaches a fresh id and destination id to e.
func identify(e *Entry) {
	e.ID = ids.allocate()
	e.DestinationID = uuid.NewString()
}
