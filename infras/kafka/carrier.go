package kafka

import (
	kafkaGo "github.com/segmentio/kafka-go"
)

// HeaderCarrier lets trace context travel in message headers.
type HeaderCarrier struct {
	Message *kafkaGo.Message
}

func (c HeaderCarrier) Get(key string) string {
	for _, header := range c.Message.Headers {
		if header.Key == key {
			return string(header.Value)
		}
	}

	return ""
}

func (c HeaderCarrier) Set(key, value string) {
	for idx, header := range c.Message.Headers {
		if header.Key == key {
			c.Message.Headers[idx].Value = []byte(value)

			return
		}
	}

	c.Message.Headers = append(c.Message.Headers, kafkaGo.Header{Key: key, Value: []byte(value)})
}

func (c HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c.Message.Headers))
	for _, header := range c.Message.Headers {
		keys = append(keys, header.Key)
	}

	return keys
}
