package stats

// UserStats is the message count of one author.
type UserStats struct {
	UserName      string `json:"userName"`
	MessagesCount int    `json:"messagesCount"`
}

// ChannelStats is the aggregate view of one channel's message history.
type ChannelStats struct {
	ChannelName    string      `json:"channelName"`
	MessagesCount  int         `json:"messagesCount"`
	MessagesPerDay float64     `json:"messagesPerDay"`
	TopUsers       []UserStats `json:"topUsers"`
}

// Options controls the stats computation.
type Options struct {
	TopUsers          int
	LookupConcurrency int
}

const (
	defaultTopUsers          = 10
	defaultLookupConcurrency = 8
)

func (o Options) normalized() Options {
	n := o
	if n.TopUsers <= 0 {
		n.TopUsers = defaultTopUsers
	}
	if n.LookupConcurrency <= 0 {
		n.LookupConcurrency = defaultLookupConcurrency
	}
	return n
}
