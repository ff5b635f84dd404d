package types

// Msg is a state-transition message routable to a module handler.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() Error
}

// Handler processes one message against the current state.
type Handler func(ctx Context, msg Msg) Result

// Querier answers a read-only state query addressed by path.
type Querier func(ctx Context, path []string, data []byte) ([]byte, Error)
