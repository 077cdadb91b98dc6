package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/test/helpers"
)

type fakeChannel struct {
	declared   []string
	published  []amqp.Publishing
	keys       []string
	publishErr error
	closed     int
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _ string, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed++
	return nil
}

func testEvent() domain.MovementEvent {
	to := uuid.New()
	return domain.MovementEvent{
		Movement: domain.Movement{
			ID:            uuid.New(),
			ItemID:        uuid.New(),
			Action:        domain.ActionMove,
			ToContainerID: &to,
			CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		ItemName: "Winter coat",
	}
}

func TestRabbitPublisher_PublishMovement(t *testing.T) {
	ch := &fakeChannel{}
	dials := 0
	p := newRabbitPublisher("amqp://test", "stowage.events", func(string) (channel, func() error, error) {
		dials++
		return ch, nil, nil
	}, helpers.TestLogger())

	ev := testEvent()
	require.NoError(t, p.PublishMovement(context.Background(), ev))
	require.NoError(t, p.PublishMovement(context.Background(), ev))

	assert.Equal(t, 1, dials)
	assert.Equal(t, []string{"stowage.events:topic"}, ch.declared)
	require.Len(t, ch.published, 2)
	assert.Equal(t, RoutingKeyMovementRecorded, ch.keys[0])
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &msg))
	assert.Equal(t, "move", msg["action"])
	assert.Equal(t, "Winter coat", msg["item_name"])
	assert.Equal(t, ev.Movement.ToContainerID.String(), msg["to_container_id"])
	assert.NotContains(t, msg, "from_container_id")
}

func TestRabbitPublisher_ReconnectsAfterFailure(t *testing.T) {
	broken := &fakeChannel{publishErr: errors.New("channel closed")}
	healthy := &fakeChannel{}
	channels := []*fakeChannel{broken, healthy}

	p := newRabbitPublisher("amqp://test", "stowage.events", func(string) (channel, func() error, error) {
		next := channels[0]
		channels = channels[1:]
		return next, nil, nil
	}, helpers.TestLogger())

	err := p.PublishMovement(context.Background(), testEvent())
	require.Error(t, err)
	assert.Equal(t, 1, broken.closed)

	require.NoError(t, p.PublishMovement(context.Background(), testEvent()))
	assert.Len(t, healthy.published, 1)
}

func TestRabbitPublisher_DialError(t *testing.T) {
	p := newRabbitPublisher("amqp://test", "x", func(string) (channel, func() error, error) {
		return nil, nil, errors.New("connection refused")
	}, helpers.TestLogger())

	err := p.PublishMovement(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, p.Close())
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.PublishMovement(context.Background(), testEvent()))
	assert.NoError(t, p.Close())
}
