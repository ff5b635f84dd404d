package types

import "fmt"

// Coin is an amount of one asset. Amounts are int64 and must never go
// negative; every mutation site checks before writing.
type Coin struct {
	Denom  string `json:"denom"`
	Amount int64  `json:"amount"`
}

func NewCoin(denom string, amount int64) Coin {
	if amount < 0 {
		panic(fmt.Sprintf("negative coin amount %d %s", amount, denom))
	}
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) IsZero() bool { return c.Amount == 0 }

func (c Coin) String() string {
	return fmt.Sprintf("%d%s", c.Amount, c.Denom)
}

// Coins is a set of coins, at most one entry per denom, sorted by denom.
type Coins []Coin

// AmountOf returns the amount of the given denom, zero if absent.
func (cs Coins) AmountOf(denom string) int64 {
	for _, c := range cs {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return 0
}

// Plus returns cs with the given coin added, keeping denom sort order.
// Returns false if the amount would overflow; overflow is never wrapped,
// since a silently negative balance would fork the chain.
func (cs Coins) Plus(other Coin) (Coins, bool) {
	if other.IsZero() {
		return cs, true
	}
	res := make(Coins, 0, len(cs)+1)
	inserted := false
	for _, c := range cs {
		switch {
		case c.Denom == other.Denom:
			sum, ok := Add64(c.Amount, other.Amount)
			if !ok {
				return nil, false
			}
			res = append(res, Coin{Denom: c.Denom, Amount: sum})
			inserted = true
		case !inserted && c.Denom > other.Denom:
			res = append(res, other, c)
			inserted = true
		default:
			res = append(res, c)
		}
	}
	if !inserted {
		res = append(res, other)
	}
	return res, true
}

// Minus subtracts the given coin, dropping the entry if it reaches zero.
// Returns false if the balance would go negative.
func (cs Coins) Minus(other Coin) (Coins, bool) {
	if other.IsZero() {
		return cs, true
	}
	res := make(Coins, 0, len(cs))
	found := false
	for _, c := range cs {
		if c.Denom == other.Denom {
			found = true
			if c.Amount < other.Amount {
				return nil, false
			}
			if c.Amount > other.Amount {
				res = append(res, Coin{Denom: c.Denom, Amount: c.Amount - other.Amount})
			}
			continue
		}
		res = append(res, c)
	}
	if !found {
		return nil, false
	}
	return res, true
}
