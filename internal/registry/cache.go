package registry

import (
	"reflect"
	"sync"

	"github.com/leibniz-ad/leibniz/internal/op"
	"github.com/leibniz-ad/leibniz/internal/scalar"
)

// tables memoizes one Table per numeric type. Each entry carries a
// sync.Once so exactly one goroutine runs the build while concurrent first
// users wait on it instead of racing or rebuilding.
var tables sync.Map // reflect.Type -> *tableEntry

type tableEntry struct {
	once  sync.Once
	table any
}

// For returns the dispatch table for T, building it on first use. The build
// runs once per type for the process lifetime; the returned pointer is
// shared and safe for concurrent use from any number of goroutines.
func For[T scalar.Value[T]]() *Table[T] {
	key := reflect.TypeFor[T]()
	e, _ := tables.LoadOrStore(key, new(tableEntry))
	entry := e.(*tableEntry)
	entry.once.Do(func() {
		entry.table = build[T]()
	})
	return entry.table.(*Table[T])
}

// Evaluate is shorthand for For[T]().Evaluate.
func Evaluate[T scalar.Value[T]](k op.Kind, x, y T) T {
	return For[T]().Evaluate(k, x, y)
}

// Partials is shorthand for For[T]().Partials.
func Partials[T scalar.Value[T]](k op.Kind, x, y, f T) (dx, dy T) {
	return For[T]().Partials(k, x, y, f)
}

// EvaluatePartials is shorthand for For[T]().EvaluatePartials.
func EvaluatePartials[T scalar.Value[T]](k op.Kind, x, y T) (f, dx, dy T) {
	return For[T]().EvaluatePartials(k, x, y)
}
