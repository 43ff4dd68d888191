/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package events

import (
	"context"
	"sync"

	"github.com/carverauto/netwatch/pkg/models"
)

// LocalBus delivers events synchronously to in-process subscribers.
type LocalBus struct {
	mu       sync.RWMutex
	handlers map[uint64]Handler
	nextID   uint64
	closed   bool
}

// NewLocalBus creates an empty in-process bus.
func NewLocalBus() *LocalBus {
	return &LocalBus{handlers: make(map[uint64]Handler)}
}

// Publish wraps data in an Event and hands it to every current subscriber.
func (b *LocalBus) Publish(_ context.Context, msgType models.MessageType, data interface{}) error {
	event, err := NewEvent(msgType, data)
	if err != nil {
		return err
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}

	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}

	return nil
}

// Subscribe registers handler and returns a function that removes it.
func (b *LocalBus) Subscribe(handler Handler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	return func() {
		b.mu.Lock()
		delete(b.handlers, id)
		b.mu.Unlock()
	}, nil
}

// Close drops all subscribers. Further publishes fail with ErrBusClosed.
func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.handlers = make(map[uint64]Handler)

	return nil
}
