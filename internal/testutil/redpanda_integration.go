//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

const redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"

// KafkaEnv — Kafka-совместимый брокер для тестов шины изменений.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string // префикс для UniqueTopicAndGroup
}

// StartKafkaTC — Redpanda с автосозданием топиков.
func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, StopFunc, error) {
	rp, err := redpanda.Run(ctx, redpandaImage, lifecycle("redpanda"), redpanda.WithAutoCreateTopics())
	if err != nil {
		return nil, nil, fmt.Errorf("redpanda container: %w", err)
	}
	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("redpanda seed broker: %w", err)
	}
	env := &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}
	return env, func(context.Context) error { return tc.TerminateContainer(rp) }, nil
}

// UniqueTopicAndGroup — топик и группа с меткой времени, чтобы тесты не делили оффсеты.
func UniqueTopicAndGroup(base string) (topic, group string) {
	stamp := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	name := base + "-" + stamp
	return name, name + "-g"
}

// EnsureTopic — создаёт топик с одной партицией и ждёт его в метаданных.
// Уже существующий топик не ошибка. broker допускает схему "PLAINTEXT://".
func EnsureTopic(ctx context.Context, broker, topic string) error {
	addr := broker
	if i := strings.Index(addr, "://"); i >= 0 {
		addr = addr[i+3:]
	}
	client := &kafka.Client{Addr: kafka.TCP(addr), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	if terr := resp.Errors[topic]; terr != nil && !errors.Is(terr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", topic, terr)
	}

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()
	for {
		meta, err := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if err == nil && len(meta.Topics) == 1 && meta.Topics[0].Error == nil && len(meta.Topics[0].Partitions) > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("topic %s not ready: %w", topic, ctx.Err())
		case <-tick.C:
		}
	}
}
