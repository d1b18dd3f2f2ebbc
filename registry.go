package main

// Registry is the primitive library's single registration entry point
// (§6): register(names, arity, fn, needs_env). One descriptor can be
// registered under many names, to support aliases like equalp/equal?.
type Registry struct {
	env *Environment
}

// NewRegistry returns a Registry that installs primitives directly into
// env's global procedure table.
func NewRegistry(env *Environment) *Registry {
	return &Registry{env: env}
}

// Register installs fn under every name in names, as a primitive of the
// given fixed arity.
func (r *Registry) Register(names []string, arity int, fn NativeFunc, needsEnv bool) {
	params := defaultFormalParams(arity)
	for _, name := range names {
		r.env.DefineProcedure(name, &Procedure{
			Name:         name,
			ArgCount:     arity,
			IsPrimitive:  true,
			NeedsEnv:     needsEnv,
			FormalParams: params,
			Native:       fn,
		})
	}
}
