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
	"fmt"
	"net/http"
)

// Error is the standard error container. LogMsg is the full message
// intended for the logs; SimpleMsg is a shorter version safe to show
// to callers. Response, URL and HTTPStatus carry upstream diagnostics
// when the error came out of a remote call.
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
}

// Error implements the error interface
func (err Error) Error() string {
	if err.SimpleMsg != "" {
		return err.SimpleMsg
	}
	return err.LogMsg
}

// Log writes the error to the logs, prepending msgPrefix to the log
// message when given, and returns the error for handing to the caller.
func (err Error) Log(ctx LogContext, msgPrefix string) error {
	logMsg := err.LogMsg
	if msgPrefix != "" {
		logMsg = msgPrefix + ": " + logMsg
	}
	e := event(ctx, ERROR)
	if err.URL != "" {
		e = e.Str("url", err.URL)
	}
	if err.HTTPStatus != 0 {
		e = e.Int("status", err.HTTPStatus)
	}
	if err.Response != "" {
		e = e.Str("response", err.Response)
	}
	e.Msg(logMsg)
	return err
}

// HTTPErr represents a non-success response from a remote endpoint,
// keeping the status code available for callers to branch on
type HTTPErr struct {
	Status  int
	Message string
}

// Error implements the error interface
func (err HTTPErr) Error() string {
	return err.Message
}

// InvalidArgument indicates input the operation cannot use: an unknown
// satellite, an inverted date range, an incompatible filter combination
// or a scene name that resolves to nothing
type InvalidArgument struct {
	Message string
}

// Error implements the error interface
func (err InvalidArgument) Error() string {
	return err.Message
}

// EmptyResult indicates a catalog query that matched zero scenes
type EmptyResult struct {
	Filter string
}

// Error implements the error interface
func (err EmptyResult) Error() string {
	return fmt.Sprintf("no scenes matched filter: %s", err.Filter)
}

// NotFound indicates a post-condition that did not hold, such as an
// extracted archive missing its top-level directory
type NotFound struct {
	Message string
}

// Error implements the error interface
func (err NotFound) Error() string {
	return err.Message
}

// HTTPError writes an error response to the client and logs it
func HTTPError(r *http.Request, w http.ResponseWriter, ctx LogContext, message string, status int) {
	http.Error(w, message, status)
	LogAudit(ctx, LogAuditInput{
		Actor:    "cdse-broker",
		Action:   fmt.Sprintf("%v response %v", r.Method, status),
		Actee:    r.URL.String(),
		Message:  message,
		Severity: ERROR,
	})
}
