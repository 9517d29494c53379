package chain

import "github.com/katalvlaran/oodispatch/object"

// Entry is one step in a resolved call chain.
type Entry struct {
	// Target is the object the implementation is considered to belong
	// to for introspection purposes — usually the object the chain was
	// built for, but kept distinct in case forwarding ever needs it.
	Target *object.Object
	Method *object.Method
	// IsFilter marks an entry contributed by an active filter rather
	// than by ordinary method resolution.
	IsFilter bool
}

// Chain is a fully resolved, ready-to-invoke sequence of Entry values.
type Chain struct {
	Entries []Entry
	// Flags carries object.FlagUnknownMethod when no real implementation
	// was found and the chain falls back to the unknown handler; such a
	// chain must never be cached (see callcache).
	Flags object.Flags
	// SkippedArgs is the number of leading argument slots a method body
	// should not treat as its own positional arguments.
	SkippedArgs int
}

// sameSource reports whether two entries resolve to the same declared
// implementation, for the purposes of the late-as-possible dedup rule:
// a class-level method is identified by its declaring class, an
// instance-level method by the instance itself.
func sameSource(a, b Entry) bool {
	if a.Method == nil || b.Method == nil {
		return a.Method == b.Method
	}
	if a.Method.DeclaringClass != nil || b.Method.DeclaringClass != nil {
		return a.Method.DeclaringClass == b.Method.DeclaringClass
	}
	return a.Target == b.Target
}

// appendLate adds e to chain, first removing any earlier entry that
// resolves to the same source so the new occurrence moves to the end —
// "as late in the chain as possible".
func appendLate(entries []Entry, e Entry) []Entry {
	for i := range entries {
		if sameSource(entries[i], e) {
			entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	return append(entries, e)
}
