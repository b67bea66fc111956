package service

import "github.com/ensdomains/ens-faucet-worker/pkg/models"

// FaucetError is a terminal, user-facing claim rejection. Handlers map it to
// a JSON-RPC error object with HTTP 400; every other error is an internal
// failure of a collaborator call.
type FaucetError struct {
	Code    int
	Message string
}

func (e *FaucetError) Error() string {
	return e.Message
}

var (
	ErrInvalidAddress = &FaucetError{Code: models.CodeFaucetError, Message: "Invalid address"}
	ErrAlreadyClaimed = &FaucetError{Code: models.CodeFaucetError, Message: "Address has already claimed"}
	ErrNoName         = &FaucetError{Code: models.CodeFaucetError, Message: "Address does not own a name on mainnet"}
	ErrTxFailed       = &FaucetError{Code: models.CodeFaucetError, Message: "Transaction failed"}
)

func unhealthyError(status string) *FaucetError {
	return &FaucetError{Code: models.CodeFaucetError, Message: "Faucet error: " + status}
}
