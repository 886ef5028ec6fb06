package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type fakeProducer struct {
	records []*kgo.Record
	err     error
	closed  bool
}

func (f *fakeProducer) ProduceSync(_ context.Context, rs ...*kgo.Record) kgo.ProduceResults {
	f.records = append(f.records, rs...)
	results := make(kgo.ProduceResults, 0, len(rs))
	for _, r := range rs {
		results = append(results, kgo.ProduceResult{Record: r, Err: f.err})
	}
	return results
}

func (f *fakeProducer) Close() { f.closed = true }

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func TestNew(t *testing.T) {
	e := New(CompanyRegistered, 42, map[string]string{"reg_code": "1234567"})

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, CompanyRegistered, e.Type)
	assert.Equal(t, "42", e.AggregateID)
	assert.False(t, e.OccurredAt.IsZero())
	assert.JSONEq(t, `{"reg_code":"1234567"}`, string(e.Payload))

	other := New(CompanyRegistered, 42, nil)
	assert.NotEqual(t, e.ID, other.ID)
	assert.Nil(t, other.Payload)
}

func TestKafkaPublisher(t *testing.T) {
	t.Run("produces keyed record with headers", func(t *testing.T) {
		fp := &fakeProducer{}
		p := &KafkaPublisher{client: fp, topic: "registry"}

		event := New(PersonCreated, 7, nil)
		require.NoError(t, p.Publish(context.Background(), event))

		require.Len(t, fp.records, 1)
		rec := fp.records[0]
		assert.Equal(t, "registry", rec.Topic)
		assert.Equal(t, "7", string(rec.Key))
		assert.Equal(t, PersonCreated, string(rec.Headers[0].Value))

		var decoded Event
		require.NoError(t, json.Unmarshal(rec.Value, &decoded))
		assert.Equal(t, event.ID, decoded.ID)
	})

	t.Run("returns produce errors", func(t *testing.T) {
		fp := &fakeProducer{err: errors.New("broker down")}
		p := &KafkaPublisher{client: fp, topic: "registry"}

		err := p.Publish(context.Background(), New(PersonCreated, 7, nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broker down")

		require.NoError(t, p.Close())
		assert.True(t, fp.closed)
	})
}

func TestRabbitMQPublisher(t *testing.T) {
	t.Run("publishes persistent json message to queue", func(t *testing.T) {
		fc := &fakeChannel{}
		p := &RabbitMQPublisher{ch: fc, queue: "registry-events"}

		event := New(CompanyCapitalUpdated, 3, nil)
		require.NoError(t, p.Publish(context.Background(), event))

		require.Len(t, fc.published, 1)
		msg := fc.published[0]
		assert.Equal(t, "registry-events", fc.keys[0])
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, "application/json", msg.ContentType)
		assert.Equal(t, event.ID, msg.MessageId)
		assert.Equal(t, CompanyCapitalUpdated, msg.Type)
	})

	t.Run("wraps channel errors", func(t *testing.T) {
		fc := &fakeChannel{err: amqp.ErrClosed}
		p := &RabbitMQPublisher{ch: fc, queue: "q"}

		err := p.Publish(context.Background(), New(CompanyDeleted, 1, nil))
		assert.ErrorIs(t, err, amqp.ErrClosed)
		assert.NoError(t, p.Close())
	})
}

func TestNoop(t *testing.T) {
	var p Publisher = Noop{}
	assert.NoError(t, p.Publish(context.Background(), New(PersonDeleted, 1, nil)))
	assert.NoError(t, p.Close())
}
