// Copyright 2019, GeoSpectra Labs, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"crypto/rand"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Severity mirrors the syslog severity levels used by audit messages
type Severity int

// Syslog severities, highest priority first
const (
	EMERGENCY Severity = iota
	ALERT
	CRITICAL
	ERROR
	WARNING
	NOTICE
	INFO
	DEBUG
)

// LogContext is the interface for log entry metadata about the
// operation in progress
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for operations that have no
// richer context of their own
type BasicLogContext struct {
	sessionID string
}

// AppName returns the name of this application
func (c *BasicLogContext) AppName() string {
	return "cdse-broker"
}

// SessionID returns a session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// LogAuditInput is the set of fields for a single audit log entry
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

// LogAudit writes an audit-format entry recording who did what to whom
func LogAudit(ctx LogContext, input LogAuditInput) {
	event(ctx, input.Severity).
		Str("actor", input.Actor).
		Str("action", input.Action).
		Str("actee", input.Actee).
		Msg(input.Message)
}

// LogInfo writes an informational message
func LogInfo(ctx LogContext, message string) {
	event(ctx, INFO).Msg(message)
}

// LogAlert writes a high-priority message that requires attention
func LogAlert(ctx LogContext, message string) {
	event(ctx, ALERT).Msg(message)
}

// LogSimpleErr logs a message plus its underlying error and returns an
// Error suitable for handing back to the caller
func LogSimpleErr(ctx LogContext, message string, err error) error {
	logMsg := message
	if err != nil {
		logMsg = message + " " + err.Error()
	}
	event(ctx, ERROR).Msg(logMsg)
	return Error{LogMsg: logMsg, SimpleMsg: message}
}

func event(ctx LogContext, severity Severity) *zerolog.Event {
	var e *zerolog.Event
	switch severity {
	case EMERGENCY, ALERT, CRITICAL:
		e = logger.Error().Str("severity", severityLabel(severity))
	case ERROR:
		e = logger.Error()
	case WARNING, NOTICE:
		e = logger.Warn()
	case DEBUG:
		e = logger.Debug()
	default:
		e = logger.Info()
	}
	if ctx != nil {
		e = e.Str("app", ctx.AppName()).Str("session", ctx.SessionID())
	}
	return e
}

func severityLabel(severity Severity) string {
	switch severity {
	case EMERGENCY:
		return "emergency"
	case ALERT:
		return "alert"
	case CRITICAL:
		return "critical"
	default:
		return "error"
	}
}

// PsuUUID makes a psuedo-UUID from crypto/rand; good enough for
// correlating log sessions
func PsuUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
