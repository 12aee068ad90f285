package stream

import "sync"

const (
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// Change announces a persisted row change on one entity stream.
type Change struct {
	Entity string
	UserID string
	Op     string
}

const (
	EntityUser           = "user"
	EntityScore          = "score"
	EntityFoodPreference = "food_preference"
	EntityTimePreference = "time_preference"
	EntityChatMessage    = "chat_message"
)

// Subscription is one consumer's handle on a broker. The consumer reads from
// C and must call Unsubscribe when its lifetime ends; after Unsubscribe
// returns, C is closed and no further sends happen.
type Subscription struct {
	C      <-chan Change
	broker *Broker
	ch     chan Change
}

func (subscription *Subscription) Unsubscribe() {
	subscription.broker.remove(subscription.ch)
}

// Broker is an in-process publish/subscribe registry for entity change
// events. Publish never blocks: a subscriber whose buffer is full misses the
// event rather than stalling the writer.
type Broker struct {
	mutex       sync.Mutex
	subscribers map[chan Change]struct{}
}

func NewBroker() *Broker {
	return &Broker{subscribers: make(map[chan Change]struct{})}
}

func (broker *Broker) Subscribe(buffer int) *Subscription {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Change, buffer)

	broker.mutex.Lock()
	broker.subscribers[ch] = struct{}{}
	broker.mutex.Unlock()

	return &Subscription{C: ch, broker: broker, ch: ch}
}

func (broker *Broker) Publish(change Change) {
	broker.mutex.Lock()
	defer broker.mutex.Unlock()

	for ch := range broker.subscribers {
		select {
		case ch <- change:
		default:
		}
	}
}

func (broker *Broker) remove(ch chan Change) {
	broker.mutex.Lock()
	defer broker.mutex.Unlock()

	if _, subscribed := broker.subscribers[ch]; subscribed {
		delete(broker.subscribers, ch)
		close(ch)
	}
}

// SubscriberCount reports how many subscriptions are currently registered.
func (broker *Broker) SubscriberCount() int {
	broker.mutex.Lock()
	defer broker.mutex.Unlock()
	return len(broker.subscribers)
}
