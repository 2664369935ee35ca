package kafka

import "time"

// Message is a broker-agnostic view of a consumed record.
type Message struct {
	Headers        map[string][]byte
	Timestamp      time.Time
	BlockTimestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

// Header returns the header value or "" when it is absent.
func (m Message) Header(key string) string {
	return string(m.Headers[key])
}
