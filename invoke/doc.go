// Package invoke runs a resolved chain.Chain. Context implements
// object.Invocation so a running MethodImpl can call back into Next
// without invoke importing object's MethodImpl definitions the other
// way around — object only ever sees the Invocation interface.
//
// Pinning mirrors Tcl_Preserve/Tcl_Release: every Method entry in the
// chain is pinned for the duration of the call so a method body that
// mutates its own declaring class mid-call (deleting or replacing the
// very method running it) cannot corrupt the chain currently executing.
// Go's garbage collector already keeps the Method record reachable
// through the Chain itself; PinCount exists purely so callers and tests
// can observe "this method is mid-call" and is not required
// for memory safety.
package invoke
