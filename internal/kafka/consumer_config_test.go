package kafka_test

import (
	"slices"
	"strings"
	"testing"

	mykafka "github.com/Gunvolt24/oncall_routes/internal/kafka"
	kafkago "github.com/segmentio/kafka-go"
)

func TestConsumerConfig_StartOffset(t *testing.T) {
	t.Parallel()

	tests := map[string]int64{
		"first":      kafkago.FirstOffset,
		" FiRsT \n":  kafkago.FirstOffset,
		"\tfirst\t":  kafkago.FirstOffset,
		"":           kafkago.LastOffset,
		"LAST":       kafkago.LastOffset,
		"newest-one": kafkago.LastOffset,
	}
	for in, want := range tests {
		in, want := in, want
		t.Run(strings.TrimSpace(in), func(t *testing.T) {
			t.Parallel()
			cfg := mykafka.ConsumerConfig{StartOffset: in}
			if got := cfg.ReaderConfig().StartOffset; got != want {
				t.Fatalf("StartOffset(%q): want %d, got %d", in, want, got)
			}
		})
	}
}

func TestConsumerConfig_ReaderConfigManualCommit(t *testing.T) {
	cfg := mykafka.ConsumerConfig{
		Brokers: []string{"k1:9092", "k2:9092"},
		Topic:   "oncall.changes",
		GroupID: "oncall-console",
	}
	rc := cfg.ReaderConfig()
	if !slices.Equal(rc.Brokers, cfg.Brokers) || rc.Topic != cfg.Topic || rc.GroupID != cfg.GroupID {
		t.Fatalf("reader config lost fields: %+v", rc)
	}
	if rc.CommitInterval != 0 {
		t.Fatalf("offsets must be committed manually, CommitInterval=%v", rc.CommitInterval)
	}
}

func TestConsumerConfig_Validate(t *testing.T) {
	ok := mykafka.ConsumerConfig{Brokers: []string{"k:9092"}, Topic: "t", GroupID: "g"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid config: %v", err)
	}
	err := (&mykafka.ConsumerConfig{}).Validate()
	if err == nil {
		t.Fatalf("empty config must fail")
	}
	for _, part := range []string{"no brokers", "empty topic", "empty group id"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("error %q must mention %q", err, part)
		}
	}
}
