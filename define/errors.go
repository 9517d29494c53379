package define

import "errors"

var (
	// ErrRenameCollision indicates the destination name is already in use.
	ErrRenameCollision = errors.New("define: destination method name already in use")
	// ErrRenameToSelf indicates source and destination names are identical.
	ErrRenameToSelf = errors.New("define: cannot rename a method to its own name")
	// ErrNotAClass indicates an operation that requires a class was given
	// a plain object.
	ErrNotAClass = errors.New("define: object is not a class")
	// ErrClassnessImmutable indicates an attempt to change whether an
	// object is a class via ChangeObjectClass.
	ErrClassnessImmutable = errors.New("define: an object's class-ness cannot change")
	// ErrCircularSuperclass indicates the requested superclass list would
	// introduce a cycle.
	ErrCircularSuperclass = errors.New("define: superclass assignment would create a cycle")
	// ErrDuplicateSuperclass indicates the same class was named more than
	// once in a single SetSuperclasses call.
	ErrDuplicateSuperclass = errors.New("define: duplicate superclass in the same call")
	// ErrRootModification indicates an attempt to structurally change the
	// root object class or the class of classes.
	ErrRootModification = errors.New("define: root class and class of classes cannot be restructured")
	// ErrMethodNotFound indicates the named method does not exist at the
	// requested scope.
	ErrMethodNotFound = errors.New("define: method not found")
)
