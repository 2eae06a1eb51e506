package ai

import (
	"golang.org/x/net/context"

	"github.com/kestrelgames/isolator/isolation"
)

type Player interface {
	GetMove(ctx context.Context, g isolation.State) isolation.Move
}
