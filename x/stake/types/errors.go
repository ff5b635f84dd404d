package types

import (
	sdk "github.com/tessera-chain/tessera/types"
)

// Stake errors reserve codespace 3.
const (
	DefaultCodespace sdk.CodespaceType = 3

	CodeInvalidStakeAmount sdk.CodeType = 101
	CodeStakeNotFound      sdk.CodeType = 102
	CodeStakeOverflow      sdk.CodeType = 103
)

func ErrInvalidStakeAmount(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidStakeAmount, msg)
}

func ErrStakeNotFound(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeStakeNotFound, msg)
}

func ErrStakeOverflow(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeStakeOverflow, msg)
}
