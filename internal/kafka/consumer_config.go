package kafka

import (
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры потребителя событий изменений.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last, регистр и пробелы не важны

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// Validate — минимальный набор полей для подключения к группе.
func (c *ConsumerConfig) Validate() error {
	var errs []error
	if len(c.Brokers) == 0 {
		errs = append(errs, errors.New("kafka: no brokers"))
	}
	if c.Topic == "" {
		errs = append(errs, errors.New("kafka: empty topic"))
	}
	if c.GroupID == "" {
		errs = append(errs, errors.New("kafka: empty group id"))
	}
	return errors.Join(errs...)
}

// ReaderConfig — kafka.Reader с ручным коммитом; события мелкие и редкие,
// поэтому ожидание батча короткое.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	offset := kafka.LastOffset
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		offset = kafka.FirstOffset
	}
	return kafka.ReaderConfig{
		Brokers:     c.Brokers,
		GroupID:     c.GroupID,
		Topic:       c.Topic,
		StartOffset: offset,
		MaxWait:     500 * time.Millisecond,
	}
}
