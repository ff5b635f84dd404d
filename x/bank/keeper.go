// Package bank is the ledger balance store. The governance engine only ever
// moves already-issued tokens between accounts; nothing here mints or burns.
package bank

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tessera-chain/tessera/codec"
	sdk "github.com/tessera-chain/tessera/types"
)

const DefaultCodespace sdk.CodespaceType = 2

// BalanceStoreKeyPrefix prefixes per-account balance entries, keyed by the
// big-endian account id.
var BalanceStoreKeyPrefix = []byte{0x01}

// Keeper reads and mutates account balances.
type Keeper struct {
	storeKey  sdk.StoreKey
	cdc       *codec.Codec
	codespace sdk.CodespaceType
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:  key,
		cdc:       cdc,
		codespace: codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/bank")
}

func getBalanceKey(id sdk.AccountID) []byte {
	return append(BalanceStoreKeyPrefix, id.Bytes()...)
}

// GetCoins returns the account's balances, empty if the account has none.
func (k Keeper) GetCoins(ctx sdk.Context, id sdk.AccountID) sdk.Coins {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(getBalanceKey(id))
	if bz == nil {
		return sdk.Coins{}
	}
	var coins sdk.Coins
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &coins)
	return coins
}

// SetCoins overwrites the account's balances.
func (k Keeper) SetCoins(ctx sdk.Context, id sdk.AccountID, coins sdk.Coins) {
	store := ctx.KVStore(k.storeKey)
	if len(coins) == 0 {
		store.Delete(getBalanceKey(id))
		return
	}
	bz := k.cdc.MustMarshalBinaryLengthPrefixed(coins)
	store.Set(getBalanceKey(id), bz)
}

// AddCoins credits the account, failing on balance overflow.
func (k Keeper) AddCoins(ctx sdk.Context, id sdk.AccountID, coin sdk.Coin) (sdk.Coins, sdk.Error) {
	if coin.Amount < 0 {
		return nil, sdk.ErrInvalidAmount("cannot add a negative amount")
	}
	coins, ok := k.GetCoins(ctx, id).Plus(coin)
	if !ok {
		return nil, sdk.ErrOverflow(
			"balance overflow of " + coin.Denom + " on " + id.String())
	}
	k.SetCoins(ctx, id, coins)
	return coins, nil
}

// SubtractCoins debits the account, failing if the balance is insufficient.
func (k Keeper) SubtractCoins(ctx sdk.Context, id sdk.AccountID, coin sdk.Coin) (sdk.Coins, sdk.Error) {
	if coin.Amount < 0 {
		return nil, sdk.ErrInvalidAmount("cannot subtract a negative amount")
	}
	coins, ok := k.GetCoins(ctx, id).Minus(coin)
	if !ok {
		return nil, sdk.ErrInsufficientFund(
			"insufficient balance of " + coin.Denom + " on " + id.String())
	}
	k.SetCoins(ctx, id, coins)
	return coins, nil
}

// SendCoins moves coins between two accounts, debiting first so a failed
// debit leaves both untouched.
func (k Keeper) SendCoins(ctx sdk.Context, from, to sdk.AccountID, coin sdk.Coin) sdk.Error {
	if _, err := k.SubtractCoins(ctx, from, coin); err != nil {
		return err
	}
	if _, err := k.AddCoins(ctx, to, coin); err != nil {
		return err
	}
	return nil
}
