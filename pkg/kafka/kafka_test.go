package kafka

import (
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestValidateProducerConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"no brokers", Config{Topic: "sommelier.events"}, ErrBrokersRequired},
		{"no topic", Config{Brokers: []string{"localhost:9092"}}, ErrTopicRequired},
		{"ok", Config{Brokers: []string{"localhost:9092"}, Topic: "sommelier.events"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateProducerConfig(tt.cfg); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPublish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"type":"preference.updated"}` {
			return errors.New("unexpected value " + string(val))
		}
		return nil
	})

	p := &producerImpl{producer: sp, topic: "sommelier.events"}
	if err := p.Publish([]byte("u1"), []byte(`{"type":"preference.updated"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPublish_Failure(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := &producerImpl{producer: sp, topic: "sommelier.events"}
	if err := p.Publish([]byte("u1"), []byte("{}")); !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}
	_ = p.Close()
}

func TestHealthCheck_NotInitialized(t *testing.T) {
	p := &producerImpl{}
	if err := p.HealthCheck(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}
