package txdecode

import (
	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/pkg/types"
)

// DefaultDenom is used for the zero amount when a transaction moved no coins.
const DefaultDenom = "surg"

// Transfer is the sender, recipient and amount of a transaction's bank
// transfer.
type Transfer struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

// ExtractTransfer reads the first "transfer" event that has a sender,
// recipient or amount attribute. Without one it returns empty addresses
// and a zero amount in denom.
func ExtractTransfer(events []feed.Event, denom string) Transfer {
	transfer := Transfer{Amount: "0" + denom}

	for _, ev := range events {
		if ev.Type != "transfer" {
			continue
		}

		var (
			found bool
			seen  = types.NewSet[string]()
		)
		for _, attr := range ev.Attributes {
			if !seen.Insert(attr.Key) {
				continue
			}

			switch attr.Key {
			case "sender":
				transfer.Sender = attr.Value
			case "recipient":
				transfer.Recipient = attr.Value
			case "amount":
				transfer.Amount = attr.Value
			default:
				continue
			}
			found = true
		}

		if found {
			return transfer
		}
	}

	return transfer
}
