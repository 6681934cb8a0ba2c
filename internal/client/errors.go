package client

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Error categories reported by Category.
const (
	CategoryMisconfiguration = "misconfiguration"
	CategoryInvalidArgument  = "invalid_argument"
	CategoryTransient        = "transient"
	CategoryQuota            = "quota"
	CategoryUnknown          = "unknown"
)

// IsNotFound returns true if the error is a NotFound status.
// Used to remove resources from state when they no longer exist.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// IsPermissionDenied returns true if the caller lacks IAM permission on the project.
func IsPermissionDenied(err error) bool {
	return status.Code(err) == codes.PermissionDenied
}

// IsUnauthenticated returns true if no usable credentials were presented.
func IsUnauthenticated(err error) bool {
	return status.Code(err) == codes.Unauthenticated
}

// IsInvalidArgument returns true if the project or descriptor was rejected.
func IsInvalidArgument(err error) bool {
	return status.Code(err) == codes.InvalidArgument
}

// IsResourceExhausted returns true for quota and rate-limit failures.
func IsResourceExhausted(err error) bool {
	return status.Code(err) == codes.ResourceExhausted
}

// IsUnavailable returns true if the error is transient.
func IsUnavailable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	}
	return false
}

// Category maps an API error to a coarse failure class for logging.
// It never alters the error itself.
func Category(err error) string {
	switch {
	case err == nil:
		return ""
	case IsPermissionDenied(err), IsUnauthenticated(err):
		return CategoryMisconfiguration
	case IsInvalidArgument(err), IsNotFound(err):
		return CategoryInvalidArgument
	case IsResourceExhausted(err):
		return CategoryQuota
	case IsUnavailable(err):
		return CategoryTransient
	}
	return CategoryUnknown
}
