package main

import "github.com/dannynchang/logo-interpreter/internal/ierrors"

// Frame is one scope of local variable bindings.
type Frame map[string]Value

// Environment is a non-empty stack of Frames plus the global procedure
// table, per §4.4. Frame 0 is the global frame, created with the
// Environment and never popped (I1).
type Environment struct {
	frames []Frame
	procs  map[string]*Procedure
}

// NewEnvironment builds an environment with just the global frame and an
// empty procedure table.
func NewEnvironment() *Environment {
	return &Environment{
		frames: []Frame{Frame{}},
		procs:  map[string]*Procedure{},
	}
}

// PushFrame appends a new innermost frame. A nil bindings map is replaced
// with a fresh empty one.
func (e *Environment) PushFrame(bindings Frame) {
	if bindings == nil {
		bindings = Frame{}
	}
	e.frames = append(e.frames, bindings)
}

// PopFrame removes the innermost frame. It panics if asked to remove frame
// 0, which would violate I1; callers (the evaluator) are responsible for
// never popping more often than they pushed.
func (e *Environment) PopFrame() {
	if len(e.frames) <= 1 {
		panic(ierrors.New("cannot pop the global frame"))
	}
	e.frames = e.frames[:len(e.frames)-1]
}

// FrameDepth returns the number of frames currently on the stack, used by
// tests to check frame-stack balance across successful and failed lines.
func (e *Environment) FrameDepth() int { return len(e.frames) }

// LookupVariable searches from the innermost frame toward frame 0 and
// returns the first hit (I2).
func (e *Environment) LookupVariable(name string) (Value, error) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if v, ok := e.frames[i][name]; ok {
			return v, nil
		}
	}
	return Value{}, ierrors.New("%s has no value", name)
}

// SetVariableValue updates the innermost frame that already defines name;
// if none does, it creates the binding in the global frame (I3).
func (e *Environment) SetVariableValue(name string, v Value) {
	for i := len(e.frames) - 1; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = v
			return
		}
	}
	e.frames[0][name] = v
}

// DefineProcedure registers proc under name, overwriting any prior entry.
// Procedure bindings are global and do not participate in frame scoping.
func (e *Environment) DefineProcedure(name string, proc *Procedure) {
	e.procs[name] = proc
}

// LookupProcedure finds a registered procedure by name.
func (e *Environment) LookupProcedure(name string) (*Procedure, error) {
	p, ok := e.procs[name]
	if !ok {
		return nil, ierrors.New("I do not know how to %s.", name)
	}
	return p, nil
}
