package cycle

import (
	"reflect"
	"sync"

	"tailscale.com/util/deephash"
)

// hashers caches one deephash hasher per type; building a hasher walks the
// type with reflection and is far more expensive than using it.
var hashers sync.Map // map[reflect.Type]any (func(*T) deephash.Sum)

// Hash returns a structural digest of *v suitable as a Detect key for states
// that are not themselves comparable (slices, maps, nested grids).
func Hash[T any](v *T) deephash.Sum {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[T]())
	}

	return h.(func(*T) deephash.Sum)(v)
}
