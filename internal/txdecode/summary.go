package txdecode

import (
	"strconv"
	"strings"
)

// TypeName shortens a message type URL to its action:
// "/cosmos.bank.v1beta1.MsgSend" becomes "Send".
func TypeName(typeURL string) string {
	name := typeURL
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}

	if trimmed, ok := strings.CutPrefix(name, "Msg"); ok {
		return trimmed
	}
	return strings.TrimSuffix(name, "Msg")
}

// Summary names the first message and counts the others: "Send",
// "Delegate +2". It is "" when there are no messages.
func Summary(typeURLs []string) string {
	if len(typeURLs) == 0 {
		return ""
	}

	summary := TypeName(typeURLs[0])
	if len(typeURLs) > 1 {
		summary += " +" + strconv.Itoa(len(typeURLs)-1)
	}
	return summary
}

// SanitizeMemo drops every byte outside printable ASCII.
func SanitizeMemo(memo string) string {
	var sb strings.Builder
	sb.Grow(len(memo))
	for i := 0; i < len(memo); i++ {
		if c := memo[i]; c >= 0x20 && c <= 0x7e {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
