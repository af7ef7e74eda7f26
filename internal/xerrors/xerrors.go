// Package xerrors defines the typed error kinds the core surfaces (§7
// ERROR HANDLING DESIGN). Fatal errors are wrapped with
// github.com/pkg/errors so a stack trace survives to the top-level log.
package xerrors

import "github.com/pkg/errors"

// SceneLoadError wraps an unreadable or malformed scene blob. Fatal to the
// invoking command.
type SceneLoadError struct {
	cause error
}

// NewSceneLoadError wraps cause, attaching a stack trace.
func NewSceneLoadError(cause error) *SceneLoadError {
	return &SceneLoadError{cause: errors.WithStack(cause)}
}

func (e *SceneLoadError) Error() string { return "scene load failed: " + e.cause.Error() }
func (e *SceneLoadError) Unwrap() error { return e.cause }

// BrokerError wraps a broker round-trip failure. Transient vs fatal is
// distinguished by the caller's retry policy (§7), not by this type.
type BrokerError struct {
	cause error
}

// NewBrokerError wraps cause, attaching a stack trace.
func NewBrokerError(cause error) *BrokerError {
	return &BrokerError{cause: errors.WithStack(cause)}
}

func (e *BrokerError) Error() string { return "broker error: " + e.cause.Error() }
func (e *BrokerError) Unwrap() error { return e.cause }

// SocketError signals the side-channel failed to connect; callers recover
// by falling back to the local multithreaded driver (§7 RenderError::Socket).
type SocketError struct {
	cause error
}

// NewSocketError wraps cause, attaching a stack trace.
func NewSocketError(cause error) *SocketError {
	return &SocketError{cause: errors.WithStack(cause)}
}

func (e *SocketError) Error() string { return "side-channel socket error: " + e.cause.Error() }
func (e *SocketError) Unwrap() error { return e.cause }

// MeshReferenceError signals a polygon object referenced a vertex/normal
// that is absent. Fatal during scene construction.
type MeshReferenceError struct {
	ObjectID int
	cause    error
}

// NewMeshReferenceError wraps cause for the given object id.
func NewMeshReferenceError(objectID int, cause error) *MeshReferenceError {
	return &MeshReferenceError{ObjectID: objectID, cause: errors.WithStack(cause)}
}

func (e *MeshReferenceError) Error() string {
	return errors.Wrapf(e.cause, "object %d has a dangling mesh reference", e.ObjectID).Error()
}
func (e *MeshReferenceError) Unwrap() error { return e.cause }
