package builtins

// Registry is the process-wide builtin table (spec.md §4.5). It is built
// once, at evaluator construction, and never mutated afterward — callers
// only read it via Lookup.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

// Register binds every name in names to fn. Bilingual builtins (e.g.
// print/decir) register the same Func under both spellings, per spec.md
// §4.5 ("bilingual aliases share an entry; both names must resolve").
func (r *Registry) Register(fn Func, names ...string) {
	for _, n := range names {
		r.funcs[n] = fn
	}
}

// Lookup returns the builtin bound to name, if any.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Default constructs the Registry required by spec.md §4.5, plus the
// SPEC_FULL.md §4.8/§4.9 domain-stack and supplemented additions.
func Default() *Registry {
	r := NewRegistry()
	registerCore(r)
	registerMath(r)
	registerStrings(r)
	registerCollections(r)
	registerIO(r)
	registerSystem(r)
	registerJSON(r)
	registerYAML(r)
	return r
}
