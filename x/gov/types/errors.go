package types

import (
	sdk "github.com/tessera-chain/tessera/types"
)

// Gov errors reserve codespace 4. Config and overflow errors abort the
// whole maintenance tick; there is no recovery short of rejecting the block.
const (
	DefaultCodespace sdk.CodespaceType = 4

	CodeInvalidVestingConfig sdk.CodeType = 101
	CodeTallyOverflow        sdk.CodeType = 102
	CodeInvalidVoteSelection sdk.CodeType = 103
)

func ErrInvalidVestingConfig(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidVestingConfig, msg)
}

func ErrTallyOverflow(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeTallyOverflow, msg)
}

func ErrInvalidVoteSelection(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidVoteSelection, msg)
}
