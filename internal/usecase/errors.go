package usecase

import "fmt"

// Error codes surfaced to the dashboard. Domain errors are
// user-correctable; technical errors mean the remote side or the
// transport misbehaved and the batch is left untouched for a retry.
const (
	CodeConfigMissing      = "CONFIG_MISSING"
	CodeBatchNotFound      = "BATCH_NOT_FOUND"
	CodeAlreadySent        = "ALREADY_SENT"
	CodeRemoteRejected     = "REMOTE_REJECTED"
	CodeNetworkUnreachable = "NETWORK_UNREACHABLE"
	CodeStoreFailure       = "STORE_FAILURE"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// ErrorCode extracts the taxonomy code, or "" for plain errors.
func ErrorCode(err error) string {
	switch e := err.(type) {
	case *DomainError:
		return e.Code
	case *TechnicalError:
		return e.Code
	default:
		return ""
	}
}

func NewConfigMissingError() *DomainError {
	return &DomainError{
		Code:    CodeConfigMissing,
		Message: "webhook URL missing, set it in settings",
	}
}

func NewBatchNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    CodeBatchNotFound,
		Message: fmt.Sprintf("batch %s not found", id),
	}
}

func NewAlreadySentError(name string) *DomainError {
	return &DomainError{
		Code:    CodeAlreadySent,
		Message: fmt.Sprintf("batch %s already transmitted", name),
	}
}

func NewRemoteRejectedError(statusText string) *TechnicalError {
	return &TechnicalError{
		Code:    CodeRemoteRejected,
		Message: fmt.Sprintf("automation gateway rejected the batch: %s", statusText),
	}
}

func NewNetworkUnreachableError(err error) *TechnicalError {
	return &TechnicalError{
		Code:    CodeNetworkUnreachable,
		Message: fmt.Sprintf("could not reach the automation gateway: %v", err),
	}
}
