package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/chainscope/internal/explorer"
	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/pkg/format"
	"github.com/gabapcia/chainscope/internal/pkg/types"
	"github.com/gabapcia/chainscope/internal/txdecode"

	"github.com/pterm/pterm"
)

const hashChars = 6

func table(header []string, rows [][]string) string {
	data := pterm.TableData{header}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return ""
	}
	return out
}

func fields(rows [][]string) string {
	out, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		return ""
	}
	return out
}

// displayAmount renders an event amount such as "1000usurg" as a coin.
// Only the first coin of a comma separated list is shown.
func displayAmount(amount string) string {
	first, _, _ := strings.Cut(amount, ",")
	i := strings.IndexFunc(first, func(r rune) bool { return r < '0' || r > '9' })
	if i <= 0 {
		return amount
	}

	return format.DisplayCoin(types.Coin{Amount: first[:i], Denom: first[i:]})
}

func displayCoins(coins []types.Coin) string {
	if len(coins) == 0 {
		return "-"
	}

	out := make([]string, 0, len(coins))
	for _, c := range coins {
		out = append(out, format.DisplayCoin(c))
	}
	return strings.Join(out, ", ")
}

func displayResult(code uint32) string {
	if code == 0 {
		return pterm.FgGreen.Sprint("Success")
	}
	return pterm.FgRed.Sprint("Failed")
}

func renderWindow(w feed.Window, notice *feed.Notification, now time.Time) string {
	var b strings.Builder

	if notice != nil {
		b.WriteString(pterm.FgRed.Sprint(notice.Title+": "+notice.Description) + "\n\n")
	}

	if w.Loading() {
		b.WriteString("Waiting for transactions...")
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s\n\n", pterm.Bold.Sprint("Transactions:"), format.Number(w.TotalCount))

	rows := make([][]string, 0, len(w.Items))
	for _, tx := range w.Items {
		age := ""
		if t, err := time.Parse(time.RFC3339, tx.Timestamp); err == nil {
			age = format.TimeFromNow(t, now)
		}

		rows = append(rows, []string{
			format.TrimHash(tx.Hash, hashChars),
			displayResult(tx.ResultCode),
			tx.MessageSummary,
			strconv.FormatInt(tx.Height, 10),
			format.ShortenAddress(tx.SenderAddress, false, 0),
			format.ShortenAddress(tx.RecipientAddress, false, 0),
			displayAmount(tx.Amount),
			age,
		})
	}

	b.WriteString(table([]string{"Hash", "Result", "Type", "Height", "From", "To", "Amount", "Time"}, rows))
	return b.String()
}

func renderTx(tx explorer.TxDetail, now time.Time) string {
	var b strings.Builder

	b.WriteString(pterm.Bold.Sprint("Transaction") + "\n\n")
	b.WriteString(fields([][]string{
		{"Hash", tx.Hash.String()},
		{"Chain", tx.ChainID},
		{"Height", strconv.FormatInt(tx.Height, 10)},
		{"Time", format.DisplayDate(tx.Time) + " (" + format.TimeFromNow(tx.Time, now) + ")"},
		{"Result", displayResult(tx.Code)},
		{"From", tx.Sender},
		{"To", tx.Recipient},
		{"Amount", displayAmount(tx.Amount)},
		{"Fee", format.DisplayCoin(tx.Fee)},
		{"Gas (used / wanted)", strconv.FormatInt(tx.GasUsed, 10) + " / " + strconv.FormatInt(tx.GasWanted, 10)},
		{"Memo", tx.Memo},
	}))

	if !tx.Success && tx.RawLog != "" {
		b.WriteString("\n" + pterm.FgRed.Sprint(tx.RawLog) + "\n")
	}

	if len(tx.Messages) > 0 {
		rows := make([][]string, 0, len(tx.Messages))
		for i, m := range tx.Messages {
			rows = append(rows, []string{strconv.Itoa(i + 1), txdecode.TypeName(m.TypeURL), m.TypeURL})
		}

		b.WriteString("\n" + pterm.Bold.Sprint("Messages") + "\n\n")
		b.WriteString(table([]string{"#", "Type", "Type URL"}, rows))
	}

	return b.String()
}

func renderAccount(a explorer.AccountDetail) string {
	var b strings.Builder

	b.WriteString(pterm.Bold.Sprint("Account") + "\n\n")

	rows := [][]string{{"Address", a.Address}}
	if a.Account != nil {
		rows = append(rows,
			[]string{"Type", a.Account.Type},
			[]string{"Account number", a.Account.AccountNumber},
			[]string{"Sequence", a.Account.Sequence},
		)
	}
	rows = append(rows,
		[]string{"Balance", displayCoins(a.Balances)},
		[]string{"Staked", displayCoins(a.Staked)},
	)
	b.WriteString(fields(rows))

	fmt.Fprintf(&b, "\n%s %s\n\n", pterm.Bold.Sprint("Transactions:"), format.Number(a.TotalTxs))
	if len(a.Transactions) == 0 {
		b.WriteString("No transactions")
		return b.String()
	}

	txs := make([][]string, 0, len(a.Transactions))
	for _, tx := range a.Transactions {
		txs = append(txs, []string{
			format.TrimHash(tx.Hash, hashChars),
			displayResult(tx.Code),
			tx.Summary,
			strconv.FormatInt(tx.Height, 10),
			tx.Memo,
		})
	}
	b.WriteString(table([]string{"Hash", "Result", "Type", "Height", "Memo"}, txs))

	return b.String()
}

func renderBlock(blk explorer.BlockDetail, now time.Time) string {
	var b strings.Builder

	b.WriteString(pterm.Bold.Sprint("Block #"+strconv.FormatInt(blk.Height, 10)) + "\n\n")
	b.WriteString(fields([][]string{
		{"Hash", blk.Hash.String()},
		{"Chain", blk.ChainID},
		{"Time", format.DisplayDate(blk.Time) + " (" + format.TimeFromNow(blk.Time, now) + ")"},
		{"Proposer", blk.ProposerAddress.String()},
		{"Transactions", strconv.Itoa(blk.NumTxs)},
	}))

	if len(blk.TxHashes) > 0 {
		rows := make([][]string, 0, len(blk.TxHashes))
		for _, h := range blk.TxHashes {
			rows = append(rows, []string{h.String()})
		}

		b.WriteString("\n" + table([]string{"Transaction hash"}, rows))
	}

	return b.String()
}

func renderProposals(p explorer.ProposalsPage) string {
	var b strings.Builder

	if len(p.Proposals) == 0 {
		return "No proposals"
	}

	rows := make([][]string, 0, len(p.Proposals))
	for _, row := range p.Proposals {
		rows = append(rows, []string{row.ID, row.Title, row.Type, row.Status, row.VotingEnd})
	}

	b.WriteString(table([]string{"ID", "Title", "Type", "Status", "Voting End"}, rows))

	pages := int64(1)
	if p.PerPage > 0 {
		pages = max((p.Total+int64(p.PerPage)-1)/int64(p.PerPage), 1)
	}
	fmt.Fprintf(&b, "\nPage %d of %d (%s proposals)", p.Page, pages, format.Number(p.Total))

	return b.String()
}
