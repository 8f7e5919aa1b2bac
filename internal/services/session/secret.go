package session

import (
	"sync"

	"cipherchat/internal/domain"
)

// secretCell publishes the shared secret exactly once. Readers block until
// it is set and never see it change afterwards.
type secretCell struct {
	once  sync.Once
	ready chan struct{}
	val   domain.SharedSecret
}

func newSecretCell() *secretCell {
	return &secretCell{ready: make(chan struct{})}
}

func (c *secretCell) publish(v domain.SharedSecret) {
	c.once.Do(func() {
		c.val = v
		close(c.ready)
	})
}

func (c *secretCell) wait() domain.SharedSecret {
	<-c.ready
	return c.val
}

func (c *secretCell) peek() (domain.SharedSecret, bool) {
	select {
	case <-c.ready:
		return c.val, true
	default:
		return 0, false
	}
}
