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

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/websocket"

	"github.com/carverauto/netwatch/pkg/logger"
	"github.com/carverauto/netwatch/pkg/models"
)

const (
	defaultReconnectDelay = 3 * time.Second
	handshakeTimeout      = 10 * time.Second
)

// Feed keeps one WebSocket subscription per channel open and hands every
// received envelope to a Dispatcher. Dropped connections are redialed after
// the reconnect delay until the context is cancelled.
type Feed struct {
	wsURL          *url.URL
	channels       []models.Channel
	dispatcher     *Dispatcher
	dialer         *websocket.Dialer
	reconnectDelay time.Duration
	clock          clock.Clock
	logger         logger.Logger

	mu        sync.RWMutex
	connected map[models.Channel]bool
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithChannels limits the subscribed channels.
func WithChannels(channels ...models.Channel) FeedOption {
	return func(f *Feed) {
		f.channels = channels
	}
}

// WithReconnectDelay sets the pause between redials.
func WithReconnectDelay(d time.Duration) FeedOption {
	return func(f *Feed) {
		if d > 0 {
			f.reconnectDelay = d
		}
	}
}

// WithFeedClock sets the clock used for redial pauses.
func WithFeedClock(c clock.Clock) FeedOption {
	return func(f *Feed) {
		f.clock = c
	}
}

// NewFeed derives the ws:// or wss:// endpoint from the core base URL.
func NewFeed(base *url.URL, dispatcher *Dispatcher, log logger.Logger, opts ...FeedOption) *Feed {
	f := &Feed{
		wsURL:          websocketURL(base),
		channels:       models.Channels(),
		dispatcher:     dispatcher,
		dialer:         &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
		reconnectDelay: defaultReconnectDelay,
		clock:          clock.New(),
		logger:         log,
		connected:      make(map[models.Channel]bool),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func websocketURL(base *url.URL) *url.URL {
	u := *base

	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}

	u.Path = "/ws"
	u.RawQuery = ""

	return &u
}

// URL returns the subscription endpoint for one channel.
func (f *Feed) URL(channel models.Channel) string {
	u := *f.wsURL
	u.RawQuery = url.Values{"channel": {string(channel)}}.Encode()

	return u.String()
}

// Connected reports whether the channel currently has an open connection.
func (f *Feed) Connected(channel models.Channel) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.connected[channel]
}

func (f *Feed) setConnected(channel models.Channel, v bool) {
	f.mu.Lock()
	f.connected[channel] = v
	f.mu.Unlock()
}

// Run subscribes to every configured channel and blocks until ctx is done.
func (f *Feed) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	for _, ch := range f.channels {
		wg.Add(1)

		go func(ch models.Channel) {
			defer wg.Done()

			f.runChannel(ctx, ch)
		}(ch)
	}

	wg.Wait()

	return ctx.Err()
}

func (f *Feed) runChannel(ctx context.Context, channel models.Channel) {
	for {
		err := f.consume(ctx, channel)
		if ctx.Err() != nil {
			return
		}

		f.logger.Warn().Err(err).Str("channel", string(channel)).
			Dur("retry_in", f.reconnectDelay).Msg("Channel subscription lost")

		timer := f.clock.Timer(f.reconnectDelay)

		select {
		case <-ctx.Done():
			timer.Stop()

			return
		case <-timer.C:
		}
	}
}

var errConnectionClosed = errors.New("connection closed")

// consume holds one connection until it fails or ctx is done.
func (f *Feed) consume(ctx context.Context, channel models.Channel) error {
	conn, resp, err := f.dialer.DialContext(ctx, f.URL(channel), nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	if err != nil {
		return fmt.Errorf("dial %s: %w", channel, err)
	}

	f.setConnected(channel, true)
	defer f.setConnected(channel, false)

	f.logger.Info().Str("channel", string(channel)).Msg("Subscribed to channel")

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		_ = conn.Close()
	})
	defer stop()
	defer func() { _ = conn.Close() }()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errConnectionClosed
			}

			return fmt.Errorf("read %s: %w", channel, err)
		}

		if err := f.dispatcher.Dispatch(payload); err != nil {
			f.logger.Debug().Err(err).Str("channel", string(channel)).Msg("Skipped message")
		}
	}
}
