package codec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/scorebook/internal/core/domain"
	"go.trai.ch/scorebook/internal/core/ports"
)

// NodeID is the unique identifier for the run table codec Graft node.
const NodeID graft.ID = "adapter.codec"

func init() {
	graft.Register(graft.Node[ports.Codec[domain.RunTable]]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Codec[domain.RunTable], error) {
			return NewFramed[domain.RunTable](), nil
		},
	})
}
