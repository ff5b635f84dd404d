package types

import (
	sdk "github.com/tessera-chain/tessera/types"
)

const (
	DefaultCodespace sdk.CodespaceType = 5

	CodeInvalidDividendAsset sdk.CodeType = 101
	CodeAssetMisconfigured   sdk.CodeType = 102
	CodeDistributionOverflow sdk.CodeType = 103
	CodeUnauthorizedIssuer   sdk.CodeType = 104
)

func ErrInvalidDividendAsset(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInvalidDividendAsset, msg)
}

func ErrAssetMisconfigured(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeAssetMisconfigured, msg)
}

func ErrDistributionOverflow(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeDistributionOverflow, msg)
}

func ErrUnauthorizedIssuer(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeUnauthorizedIssuer, msg)
}
