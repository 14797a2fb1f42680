package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"edu_hub_backend/pkg/logger"
	"edu_hub_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const notifyChannel = "messages:events"

// Event 新消息通知。事件只是提示订阅者回读 history 的信号，
// 载荷仅供参考——跨订阅者的投递顺序不保证，消息存储的顺序才是权威。
type Event struct {
	Topic     string    `json:"topic"`
	SenderID  uint      `json:"senderId"`
	MessageID string    `json:"messageId"`
	SentAt    time.Time `json:"sentAt"`
}

// PairTopic 每对账号一个主题，与收发方向无关
func PairTopic(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("pair:%d:%d", a, b)
}

// Subscription 订阅句柄。Cancel 幂等，重复调用或话题已废弃后调用都安全。
type Subscription struct {
	C     <-chan Event
	topic string
	id    uint64
	hub   *NotifyHub
}

func (s *Subscription) Cancel() {
	s.hub.cancel(s.topic, s.id)
}

// NotifyHub 会话通知的发布/订阅中枢。本地订阅者挂在内存表上；
// 配置了 Redis 时事件经 Redis 频道广播，多实例部署下各实例各自分发。
type NotifyHub struct {
	mu     sync.RWMutex
	topics map[string]map[uint64]chan Event
	nextID uint64

	redis  *redis.Client
	ctx    context.Context
	stop   context.CancelFunc
	pubsub *redis.PubSub
}

func NewNotifyHub(rdb *redis.Client) *NotifyHub {
	ctx, stop := context.WithCancel(context.Background())
	return &NotifyHub{
		topics: make(map[string]map[uint64]chan Event),
		redis:  rdb,
		ctx:    ctx,
		stop:   stop,
	}
}

// Run 启动 Redis 频道消费。未配置 Redis 时无事可做，Publish 会直接本地分发。
func (h *NotifyHub) Run() {
	if h.redis == nil {
		return
	}
	h.pubsub = h.redis.Subscribe(h.ctx, notifyChannel)
	go func() {
		for msg := range h.pubsub.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				logger.Log.Error("notify event unmarshal error", zap.Error(err))
				continue
			}
			h.deliverLocal(ev)
		}
	}()
}

// Subscribe 在主题上登记一个订阅者，返回事件通道和可取消的句柄。
// 通道带缓冲；订阅者消费不过来时事件会被丢弃，反正事件只是回读信号。
func (h *NotifyHub) Subscribe(topic string) *Subscription {
	ch := make(chan Event, 16)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	subs, ok := h.topics[topic]
	if !ok {
		subs = make(map[uint64]chan Event)
		h.topics[topic] = subs
	}
	subs[id] = ch
	h.mu.Unlock()

	monitoring.ActiveSubscribers.Inc()
	return &Subscription{C: ch, topic: topic, id: id, hub: h}
}

// Publish 在消息成功落库后调用，向主题的所有在册订阅者做 at-least-once 投递
func (h *NotifyHub) Publish(topic string, ev Event) {
	ev.Topic = topic
	monitoring.MessageEventCounter.WithLabelValues("published").Inc()

	if h.redis != nil {
		payload, _ := json.Marshal(ev)
		if err := h.redis.Publish(h.ctx, notifyChannel, payload).Err(); err != nil {
			logger.Log.Error("notify publish error", zap.Error(err), zap.String("topic", topic))
			// Redis 不可用时退化为本地分发，本实例的订阅者仍能收到
			h.deliverLocal(ev)
		}
		return
	}
	h.deliverLocal(ev)
}

func (h *NotifyHub) deliverLocal(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.topics[ev.Topic] {
		select {
		case ch <- ev:
			monitoring.MessageEventCounter.WithLabelValues("delivered").Inc()
		default:
		}
	}
}

func (h *NotifyHub) cancel(topic string, id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[topic]
	if !ok {
		return
	}
	ch, ok := subs[id]
	if !ok {
		return
	}
	delete(subs, id)
	if len(subs) == 0 {
		delete(h.topics, topic)
	}
	close(ch)
	monitoring.ActiveSubscribers.Dec()
}

// Stop 关停 Redis 消费并注销所有订阅者
func (h *NotifyHub) Stop() {
	h.stop()
	if h.pubsub != nil {
		h.pubsub.Close()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	count := 0
	for topic, subs := range h.topics {
		for _, ch := range subs {
			close(ch)
			count++
		}
		delete(h.topics, topic)
	}
	monitoring.ActiveSubscribers.Set(0)
	logger.Log.Info("NotifyHub stopped", zap.Int("cancelledSubscriptions", count))
}
