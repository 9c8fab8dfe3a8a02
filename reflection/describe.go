// Package reflection renders callables and values as short, deterministic
// descriptions for diagnostics (strategy String methods, error context).
package reflection

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Describe returns a human-readable description of v.
//
//   - fmt.Stringer values describe themselves (a nil pointer as "<nil>");
//   - named functions render as "pkg.Name";
//   - closures render as their enclosing function plus "func1", "func2" ...,
//     e.g. "mypkg.TestFilter.func1";
//   - nil renders as "nil"; anything else uses %#v.
//
// The result depends only on v, so it is safe to cache.
func Describe(v any) string {
	if v == nil {
		return "nil"
	}
	if _, ok := v.(fmt.Stringer); ok {
		// fmt renders nil receivers as "<nil>" and reports panics inline
		return fmt.Sprint(v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func {
		return fmt.Sprintf("%#v", v)
	}
	if rv.IsNil() {
		return "nil"
	}

	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return rv.Type().String()
	}

	return shortName(fn.Name())
}

// shortName strips the import path from a runtime function name and the
// "-fm" suffix that method values carry.
//
//	"github.com/x/y/pkg.(*T).Method-fm" -> "pkg.(*T).Method"
func shortName(full string) string {
	name := strings.TrimSuffix(full, "-fm")
	head := name
	if i := strings.IndexByte(name, '['); i >= 0 {
		// generic instantiations may carry import paths in their type list
		head = name[:i]
	}
	if i := strings.LastIndex(head, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
