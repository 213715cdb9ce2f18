package kafka

import "time"

const (
	HeaderContentType = "content-type"
	HeaderEventKind   = "event-kind"
	HeaderEventID     = "event-id"
)

// Message is one record on a topic. Producers fill Key, Value and Headers;
// consumers also get the broker coordinates.
type Message struct {
	Headers   map[string][]byte
	Timestamp time.Time

	Key       []byte
	Value     []byte
	Topic     string
	Partition int32
	Offset    int64
}

// Header returns the named header as a string, or "" when absent.
func (m Message) Header(name string) string {
	return string(m.Headers[name])
}

// WithHeader returns a copy of m with name set to value. The original
// header map is left untouched.
func (m Message) WithHeader(name, value string) Message {
	headers := make(map[string][]byte, len(m.Headers)+1)
	for k, v := range m.Headers {
		headers[k] = v
	}
	headers[name] = []byte(value)
	m.Headers = headers

	return m
}
