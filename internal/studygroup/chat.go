package studygroup

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var (
	ErrBlankMessage = errors.New("message is blank")
	ErrSlowDown     = errors.New("sending too fast, slow down")
)

type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}

// Stamp renders the timestamp as an RFC 3339 instant.
func (m Message) Stamp() string {
	return m.Timestamp.UTC().Format(time.RFC3339)
}

// Config limits how fast the local user can post.
type Config struct {
	Rate  float64 `mapstructure:"rate"`
	Burst int     `mapstructure:"burst"`
}

func DefaultConfig() Config {
	return Config{Rate: 5, Burst: 10}
}

// Chat is an append-only message log.
type Chat struct {
	mu       sync.Mutex
	messages []Message
	ids      map[string]struct{}
	limiter  *rate.Limiter
	now      func() time.Time
}

type ChatOption func(*Chat)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ChatOption {
	return func(c *Chat) { c.now = now }
}

// NewChat returns a chat seeded with the peers' opening messages.
func NewChat(cfg Config, opts ...ChatOption) *Chat {
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultConfig().Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultConfig().Burst
	}
	c := &Chat{
		ids:     make(map[string]struct{}),
		limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	start := c.now()
	peers := Peers()
	c.append(Message{
		ID:         "msg-1",
		SenderID:   peers[0].ID,
		SenderName: peers[0].Name,
		Content:    "Hey everyone! Glad to be here. How's week 3 going for you all?",
		Timestamp:  start.Add(-5 * time.Minute),
	})
	c.append(Message{
		ID:         "msg-2",
		SenderID:   peers[1].ID,
		SenderName: peers[1].Name,
		Content:    "A bit stuck on the project, but getting there. The resources on CSS Grid were super helpful!",
		Timestamp:  start.Add(-3 * time.Minute),
	})
	return c
}

// Send posts text as the given sender. Surrounding whitespace is dropped.
func (c *Chat) Send(senderID, senderName, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrBlankMessage
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if !c.limiter.AllowN(now, 1) {
		return Message{}, ErrSlowDown
	}

	id := fmt.Sprintf("msg-%d", now.UnixMilli())
	if _, taken := c.ids[id]; taken {
		id = id + "-" + uuid.NewString()[:8]
	}
	msg := Message{
		ID:         id,
		SenderID:   senderID,
		SenderName: senderName,
		Content:    text,
		Timestamp:  now,
	}
	c.append(msg)
	return msg, nil
}

func (c *Chat) append(m Message) {
	c.messages = append(c.messages, m)
	c.ids[m.ID] = struct{}{}
}

// Messages returns the log in send order.
func (c *Chat) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Message(nil), c.messages...)
}

func (c *Chat) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
