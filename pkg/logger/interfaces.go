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

package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger is the logging surface injected into every netwatch component.
type Logger interface {
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Fatal() *zerolog.Event
	With() zerolog.Context
	WithComponent(component string) zerolog.Logger
	SetLevel(level zerolog.Level)
	SetDebug(debug bool)
}

// ZerologAdapter wraps a zerolog.Logger so it satisfies Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

func (a *ZerologAdapter) Trace() *zerolog.Event { return a.zl.Trace() }
func (a *ZerologAdapter) Debug() *zerolog.Event { return a.zl.Debug() }
func (a *ZerologAdapter) Info() *zerolog.Event  { return a.zl.Info() }
func (a *ZerologAdapter) Warn() *zerolog.Event  { return a.zl.Warn() }
func (a *ZerologAdapter) Error() *zerolog.Event { return a.zl.Error() }
func (a *ZerologAdapter) Fatal() *zerolog.Event { return a.zl.Fatal() }
func (a *ZerologAdapter) With() zerolog.Context { return a.zl.With() }

func (a *ZerologAdapter) WithComponent(component string) zerolog.Logger {
	return a.zl.With().Str("component", component).Logger()
}

func (a *ZerologAdapter) SetLevel(level zerolog.Level) { a.zl = a.zl.Level(level) }

func (a *ZerologAdapter) SetDebug(debug bool) {
	if debug {
		a.SetLevel(zerolog.DebugLevel)
	} else {
		a.SetLevel(zerolog.InfoLevel)
	}
}

// NewTestLogger creates a no-op logger for testing that discards all output
func NewTestLogger() Logger {
	return NewZerologAdapter(zerolog.New(io.Discard).Level(zerolog.Disabled))
}
