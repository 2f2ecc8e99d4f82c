package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	name    string
	err     error
	notices []Notice
	closed  bool
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Publish(_ context.Context, n Notice) error {
	f.notices = append(f.notices, n)
	return f.err
}

func (f *fakeSink) Close() error {
	f.closed = true
	return f.err
}

func TestNotifyFansOutAndSurvivesSinkErrors(t *testing.T) {
	broken := &fakeSink{name: "broken", err: errors.New("down")}
	healthy := &fakeSink{name: "healthy"}
	svc := NewService(broken, healthy)

	svc.Notify(context.Background(), TypeVenueCreated, 3, map[string]interface{}{"venue_name": "Main Hall"})

	require.Len(t, broken.notices, 1)
	require.Len(t, healthy.notices, 1)

	n := healthy.notices[0]
	assert.Equal(t, TypeVenueCreated, n.Type)
	assert.Equal(t, int64(3), n.RecordID)
	assert.NotEmpty(t, n.ID)
	assert.JSONEq(t, `{"venue_name":"Main Hall"}`, string(n.Payload))

	err := svc.Close()
	assert.Error(t, err)
	assert.True(t, broken.closed)
	assert.True(t, healthy.closed)
}

func TestNotifyWithoutSinksIsNoop(t *testing.T) {
	svc := NewService()
	svc.Notify(context.Background(), TypeEventCreated, 1, make(chan int)) // unencodable payload is never touched
	assert.NoError(t, svc.Close())
}

func TestNotifyCancelledRequestStillPublishes(t *testing.T) {
	sink := &fakeSink{name: "sink"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewService(sink).Notify(ctx, TypeAttendeeDeleted, 9, nil)

	assert.Len(t, sink.notices, 1)
}

func TestRedisPublisher(t *testing.T) {
	client, mock := redismock.NewClientMock()
	pub := NewRedisPublisher(client, "changes")

	n, err := NewNotice(TypeAttendeeCreated, 5, map[string]string{"name": "Ada"})
	require.NoError(t, err)
	body, err := json.Marshal(n)
	require.NoError(t, err)

	mock.ExpectPublish("changes", string(body)).SetVal(1)

	require.NoError(t, pub.Publish(context.Background(), n))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisPublisherError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	pub := NewRedisPublisher(client, "changes")

	n, err := NewNotice(TypeAttendeeCreated, 5, nil)
	require.NoError(t, err)
	body, _ := json.Marshal(n)
	mock.ExpectPublish("changes", string(body)).SetErr(errors.New("connection refused"))

	assert.Error(t, pub.Publish(context.Background(), n))
}

func TestKafkaMessage(t *testing.T) {
	n, err := NewNotice(TypeEventCreated, 42, map[string]int{"venue_id": 1})
	require.NoError(t, err)

	msg, err := kafkaMessage(n)
	require.NoError(t, err)

	assert.Equal(t, "42", string(msg.Key))
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "type", msg.Headers[0].Key)
	assert.Equal(t, TypeEventCreated, string(msg.Headers[0].Value))

	var decoded Notice
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, n.ID, decoded.ID)
	assert.Equal(t, int64(42), decoded.RecordID)
}

func TestKafkaPublisherFlushesPromptly(t *testing.T) {
	pub := NewKafkaPublisher([]string{"localhost:9092"}, "eventhub.notifications")
	defer pub.Close()

	assert.Equal(t, "eventhub.notifications", pub.writer.Topic)
	assert.LessOrEqual(t, pub.writer.BatchTimeout, 50*time.Millisecond)
	assert.Positive(t, pub.writer.BatchTimeout)
}
