package llm

import (
	"context"
	"errors"
)

// ErrUpstream covers network, auth, and quota failures talking to the
// model provider. Handlers map it to 502.
var ErrUpstream = errors.New("upstream model error")

// ErrBadResponse means the provider answered but the payload was not the
// strict JSON shape we demanded. Also a 502.
var ErrBadResponse = errors.New("model response not parseable")

type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
