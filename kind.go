package parsefloat

import "github.com/parsefloat/parsefloat/internal/fkind"

// Float is the set of target kinds this package converts into: binary32
// and binary64 (spec.md §3's "compile-time-selected target").
type Float = fkind.Float
