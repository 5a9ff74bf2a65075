package precis

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// builderPool hands out *strings.Builder instances for the profile
// pipeline to write into, adapted from automata.go's recognizerPool in
// the teacher repo (there pooling short-lived Recognizer values; here
// pooling the short-lived buffers a pipeline step needs only once it
// decides an input must actually be rewritten). Per spec.md §5, the
// common case — input already satisfies the profile — never touches the
// pool at all: pipeline steps borrow from the input string directly and
// only promote to a pooled builder on the first byte that must change.
type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &strings.Builder{}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // no cap; buffers are cheap and short-lived
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

// getBuilder borrows a reset *strings.Builder from the pool.
func getBuilder() *strings.Builder {
	o, err := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	if err != nil {
		return &strings.Builder{}
	}
	b := o.(*strings.Builder)
	b.Reset()
	return b
}

// putBuilder returns b to the pool.
func putBuilder(b *strings.Builder) {
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
