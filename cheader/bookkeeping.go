package cheader

import "sort"

// bookkeeping accumulates cross-cutting requirements discovered while
// declarations are emitted: library includes and slice element
// representations that need a synthesized wrapper. Insertion is
// idempotent; there is no removal. One instance lives for exactly one
// generation pass.
type bookkeeping struct {
	includes   map[string]struct{}
	sliceElems map[string]struct{}
}

func newBookkeeping() *bookkeeping {
	return &bookkeeping{
		includes:   make(map[string]struct{}),
		sliceElems: make(map[string]struct{}),
	}
}

// record notes the requirements of one mapped type.
func (b *bookkeeping) record(ct cType) {
	if ct.Include != "" {
		b.includes[ct.Include] = struct{}{}
	}
	if ct.ElemInclude != "" {
		b.includes[ct.ElemInclude] = struct{}{}
	}
	if ct.SliceElem != "" {
		b.sliceElems[ct.SliceElem] = struct{}{}
	}
}

// sortedIncludes returns the include tokens in lexicographic order.
// Map iteration order must never reach the generated artifact.
func (b *bookkeeping) sortedIncludes() []string {
	return sorted(b.includes)
}

// sortedSliceElems returns the slice element representations in
// lexicographic order.
func (b *bookkeeping) sortedSliceElems() []string {
	return sorted(b.sliceElems)
}

func sorted(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
