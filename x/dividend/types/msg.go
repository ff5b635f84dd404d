package types

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
)

const MsgRoute = "dividend"

// MsgUpdateDividendOptions reschedules an asset's payouts. Only the asset's
// issuer may send it; that check needs store access and lives in the handler.
type MsgUpdateDividendOptions struct {
	Issuer  sdk.AccountID `json:"issuer"`
	Denom   string        `json:"denom"`
	Options Options       `json:"options"`
}

func NewMsgUpdateDividendOptions(issuer sdk.AccountID, denom string, options Options) MsgUpdateDividendOptions {
	return MsgUpdateDividendOptions{Issuer: issuer, Denom: denom, Options: options}
}

func (msg MsgUpdateDividendOptions) Route() string { return MsgRoute }
func (msg MsgUpdateDividendOptions) Type() string  { return "update_dividend_options" }

func (msg MsgUpdateDividendOptions) ValidateBasic() sdk.Error {
	if msg.Denom == "" {
		return ErrInvalidDividendAsset(DefaultCodespace, "denom must not be empty")
	}
	if msg.Issuer == 0 {
		return ErrUnauthorizedIssuer(DefaultCodespace, "issuer must be set")
	}
	if err := msg.Options.UpdateCheck(); err != nil {
		return ErrInvalidDividendAsset(DefaultCodespace,
			fmt.Sprintf("invalid options for %s: %v", msg.Denom, err))
	}
	return nil
}
