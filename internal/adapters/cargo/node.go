package cargo

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID identifies the Cargo adapter Graft node.
const NodeID graft.ID = "adapter.cargo"

func init() {
	graft.Register(graft.Node[*Cargo]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cargo, error) {
			return New(""), nil
		},
	})
}
