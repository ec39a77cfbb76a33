package types

// Coin is an amount of a single denomination. Amount is kept as the decimal
// string the chain returns, since on-chain integers exceed int64.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// String renders the coin the way the chain writes it in events, e.g.
// "1500usurg".
func (c Coin) String() string {
	return c.Amount + c.Denom
}

// IsZero reports whether the coin carries neither amount nor denom.
func (c Coin) IsZero() bool {
	return c.Amount == "" && c.Denom == ""
}
