package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairTopic(t *testing.T) {
	// 主题与收发方向无关
	assert.Equal(t, PairTopic(1, 2), PairTopic(2, 1))
	assert.Equal(t, "pair:1:2", PairTopic(2, 1))
	assert.NotEqual(t, PairTopic(1, 2), PairTopic(1, 3))
}

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewNotifyHub(nil)
	sub := hub.Subscribe(PairTopic(1, 2))
	defer sub.Cancel()

	hub.Publish(PairTopic(2, 1), Event{SenderID: 2, MessageID: "msg-1", SentAt: time.Now()})

	select {
	case ev := <-sub.C:
		assert.Equal(t, uint(2), ev.SenderID)
		assert.Equal(t, "msg-1", ev.MessageID)
		assert.Equal(t, PairTopic(1, 2), ev.Topic)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestPublish_OnlyMatchingTopic(t *testing.T) {
	hub := NewNotifyHub(nil)
	sub := hub.Subscribe(PairTopic(1, 2))
	other := hub.Subscribe(PairTopic(3, 4))
	defer sub.Cancel()
	defer other.Cancel()

	hub.Publish(PairTopic(1, 2), Event{SenderID: 1, MessageID: "msg-1"})

	select {
	case <-sub.C:
	case <-time.After(time.Second):
		t.Fatal("subscriber on the topic should receive the event")
	}
	select {
	case ev := <-other.C:
		t.Fatalf("unrelated subscriber received event %+v", ev)
	default:
	}
}

func TestMultipleSubscribersSameTopic(t *testing.T) {
	hub := NewNotifyHub(nil)
	a := hub.Subscribe(PairTopic(1, 2))
	b := hub.Subscribe(PairTopic(1, 2))
	defer a.Cancel()
	defer b.Cancel()

	hub.Publish(PairTopic(1, 2), Event{MessageID: "msg-1"})

	for _, sub := range []*Subscription{a, b} {
		select {
		case ev := <-sub.C:
			assert.Equal(t, "msg-1", ev.MessageID)
		case <-time.After(time.Second):
			t.Fatal("every subscriber on the topic should receive the event")
		}
	}
}

func TestCancel_Idempotent(t *testing.T) {
	hub := NewNotifyHub(nil)
	sub := hub.Subscribe(PairTopic(1, 2))

	sub.Cancel()
	assert.NotPanics(t, func() { sub.Cancel() })

	// 取消后通道关闭，发布也不会触达
	_, open := <-sub.C
	assert.False(t, open)
	assert.NotPanics(t, func() {
		hub.Publish(PairTopic(1, 2), Event{MessageID: "after-cancel"})
	})
}

func TestPublish_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewNotifyHub(nil)
	sub := hub.Subscribe(PairTopic(1, 2))
	defer sub.Cancel()

	// 订阅者不消费时，超出缓冲的事件直接丢弃而不是阻塞发布方
	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			hub.Publish(PairTopic(1, 2), Event{MessageID: "flood"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestStop_ClosesAllSubscriptions(t *testing.T) {
	hub := NewNotifyHub(nil)
	a := hub.Subscribe(PairTopic(1, 2))
	b := hub.Subscribe(PairTopic(3, 4))

	hub.Stop()

	for _, sub := range []*Subscription{a, b} {
		_, open := <-sub.C
		require.False(t, open)
	}
	// 关停后再取消订阅句柄也安全
	assert.NotPanics(t, func() { a.Cancel() })
}
