// Package format renders chain values for people: shortened hashes and
// addresses, coin amounts, dates and relative durations. It also normalizes
// the endpoint URLs the explorer is configured with.
package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/chainscope/internal/pkg/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the layout used for every absolute date shown to users.
const DateLayout = "2006-01-02 15:04:05"

var printer = message.NewPrinter(language.English)

// TrimHash renders h as uppercase hex keeping the first and last n
// characters, e.g. "ABCDEF...123456".
func TrimHash(h types.HexBytes, n int) string {
	s := h.String()
	if n <= 0 || len(s) <= 2*n {
		return s
	}

	return s[:n] + "..." + s[len(s)-n:]
}

// ShortenAddress keeps n characters on each side when lengthier is set.
// Otherwise addresses longer than 20 characters keep 5 on each side.
func ShortenAddress(s string, lengthier bool, n int) string {
	switch {
	case s == "":
		return ""
	case lengthier:
		if len(s) <= 2*n {
			return s
		}
		return s[:n] + "..." + s[len(s)-n:]
	case len(s) > 20:
		return s[:5] + "..." + s[len(s)-5:]
	default:
		return s
	}
}

// DisplayCoin renders a coin with thousands separators. Micro denoms
// ("u" prefix) are converted to their base unit and the symbol is
// uppercased: {uatom, 2500000} becomes "3 ATOM".
func DisplayCoin(c types.Coin) string {
	amount, err := strconv.ParseFloat(c.Amount, 64)
	if err != nil {
		amount = 0
	}

	if strings.HasPrefix(c.Denom, "u") {
		return printer.Sprintf("%d %s", int64(math.Round(amount/1e6)), strings.ToUpper(c.Denom[1:]))
	}

	if amount == math.Trunc(amount) {
		return printer.Sprintf("%d %s", int64(amount), c.Denom)
	}

	return strings.TrimRight(strings.TrimRight(printer.Sprintf("%.3f", amount), "0"), ".") + " " + c.Denom
}

// Number renders n with thousands separators.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// ConvertVotingPower turns a token amount in micro units into whole units
// with thousands separators.
func ConvertVotingPower(tokens string) string {
	v, err := strconv.ParseFloat(tokens, 64)
	if err != nil {
		v = 0
	}

	return printer.Sprintf("%d", int64(math.Round(v/1e6)))
}

// ConvertRateToPercent turns an 18-decimal fixed-point rate into a
// percentage with two decimals. An empty rate renders as "".
func ConvertRateToPercent(rate string) string {
	if rate == "" {
		return ""
	}

	v, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return ""
	}

	return printer.Sprintf("%.2f", v/1e16)
}

// DisplayDate formats t in UTC with DateLayout. The zero time renders as "".
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(DateLayout)
}

// NormalizeTimestamp parses an RFC 3339 timestamp, with or without zone or
// fractional seconds, and returns it as RFC 3339 in UTC. Unparseable input
// is returned unchanged.
func NormalizeTimestamp(s string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(time.RFC3339Nano)
		}
	}

	return s
}

// DisplayDurationSeconds humanizes a number of seconds ("a few seconds",
// "3 hours"). Zero renders as "".
func DisplayDurationSeconds(seconds int64) string {
	if seconds == 0 {
		return ""
	}

	return humanize(time.Duration(seconds) * time.Second)
}

// TimeFromNow describes t relative to now, e.g. "5 minutes ago" or
// "in a day".
func TimeFromNow(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		return "in " + humanize(-d)
	}

	return humanize(d) + " ago"
}

// humanize follows the usual relative-time thresholds: 45s, 90s, 45m, 90m,
// 22h, 36h, 26d, 45d, 320d, 548d.
func humanize(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	var (
		seconds = d.Seconds()
		minutes = d.Minutes()
		hours   = d.Hours()
		days    = hours / 24
	)

	plural := func(n float64, unit string) string {
		return strconv.Itoa(int(math.Round(n))) + " " + unit
	}

	switch {
	case seconds < 45:
		return "a few seconds"
	case seconds < 90:
		return "a minute"
	case minutes < 45:
		return plural(minutes, "minutes")
	case minutes < 90:
		return "an hour"
	case hours < 22:
		return plural(hours, "hours")
	case hours < 36:
		return "a day"
	case days < 26:
		return plural(days, "days")
	case days < 45:
		return "a month"
	case days < 320:
		return plural(days/30.4, "months")
	case days < 548:
		return "a year"
	default:
		return plural(days/365, "years")
	}
}

var urlPattern = regexp.MustCompile(`(?i)^(https?://)?` +
	`((([a-z\d]([a-z\d-]*[a-z\d])*)\.)+[a-z]{2,}|((\d{1,3}\.){3}\d{1,3}))` +
	`(:\d+)?(/[-a-z\d%_.~+]*)*` +
	`(\?[;&a-z\d%_.~+=-]*)?` +
	`(#[-a-z\d_]*)?$`)

// IsValidURL reports whether s looks like an http(s) URL with a domain name
// or an IPv4 host. The scheme is optional.
func IsValidURL(s string) bool {
	return urlPattern.MatchString(s)
}

// NormalizeURL adds an https:// scheme when s has none.
func NormalizeURL(s string) string {
	if !strings.HasPrefix(s, "https://") && !strings.HasPrefix(s, "http://") {
		return "https://" + s
	}

	return s
}

// RemoveTrailingSlash drops one trailing "/".
func RemoveTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

// ReplaceHTTPToWebsocket swaps the first "http" for "ws", turning http://
// into ws:// and https:// into wss://.
func ReplaceHTTPToWebsocket(s string) string {
	return strings.Replace(s, "http", "ws", 1)
}
