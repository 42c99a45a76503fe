package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/statsbot-lab/guild-stats/internal/core/record"
)

const secondsPerDay = 86400

// DayBucket maps a timestamp to its UTC day number since the Unix epoch.
// Example: DayBucket(1970-01-02T10:00:00Z) → 1
func DayBucket(t time.Time) int64 {
	secs := t.Unix()
	bucket := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		bucket--
	}
	return bucket
}

// messagesPerDay is the mean message count over days that had at least one
// message. Days without traffic are not part of the denominator.
func messagesPerDay(messages []*record.Record) decimal.Decimal {
	if len(messages) == 0 {
		return decimal.Zero
	}

	buckets := make(map[int64]int64)
	for _, msg := range messages {
		buckets[DayBucket(msg.Timestamp)]++
	}

	total := decimal.Zero
	for _, n := range buckets {
		total = total.Add(decimal.NewFromInt(n))
	}
	return total.Div(decimal.NewFromInt(int64(len(buckets))))
}
