package service

import "errors"

var (
	// ErrUnauthenticated means no caller identity was presented at all.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden covers both "namespace does not exist" and "caller is not
	// an active member". The two are deliberately indistinguishable so a
	// non-member cannot probe which namespaces exist.
	ErrForbidden = errors.New("cannot act on behalf of namespace")

	ErrUserNotFound       = errors.New("user not found")
	ErrNamespaceNotFound  = errors.New("namespace not found")
	ErrInvitationNotFound = errors.New("invitation not found")
)
