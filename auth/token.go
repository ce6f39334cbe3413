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

package auth

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/url"

	"github.com/geospectra/cdse-broker/util"
)

// The Data Space identity service's public client
const clientID = "cdse-public"

// Context is the context for a token exchange
type Context struct {
	TokenURL  string
	sessionID string
}

// AppName returns the name of this application
func (c *Context) AppName() string {
	return "cdse-broker"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// RequestAccessToken exchanges Data Space credentials for a bearer
// token. The token has a service-defined expiry that is not tracked
// here; fetch a fresh one per download.
func RequestAccessToken(username, password string, context *Context) (string, error) {
	form := url.Values{}
	form.Set("client_id", clientID)
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", "password")

	util.LogAudit(context, util.LogAuditInput{Actor: "auth/token", Action: "POST", Actee: context.TokenURL, Message: "Requesting an access token", Severity: util.INFO})
	response, err := util.HTTPClient().PostForm(context.TokenURL, form)
	if err != nil {
		return "", util.LogSimpleErr(context, "Failed to complete the token request.", err)
	}
	defer response.Body.Close()
	body, _ := ioutil.ReadAll(response.Body)

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		message := fmt.Sprintf("Failed to obtain an access token: %v. ", response.Status)
		util.Error{LogMsg: message, SimpleMsg: message, Response: string(body), URL: context.TokenURL, HTTPStatus: response.StatusCode}.Log(context, "")
		return "", util.HTTPErr{Status: response.StatusCode, Message: message + string(body)}
	}

	var token tokenResponse
	if err = json.Unmarshal(body, &token); err != nil {
		plErr := util.Error{LogMsg: "Failed to Unmarshal response from the token endpoint: " + err.Error(),
			SimpleMsg:  "The identity service returned an unexpected response. See log for further details.",
			Response:   string(body),
			URL:        context.TokenURL,
			HTTPStatus: response.StatusCode}
		return "", plErr.Log(context, "")
	}
	if token.AccessToken == "" {
		plErr := util.Error{LogMsg: "Token endpoint answered without an access_token field",
			SimpleMsg:  "The identity service returned no access token.",
			Response:   string(body),
			URL:        context.TokenURL,
			HTTPStatus: response.StatusCode}
		return "", plErr.Log(context, "")
	}

	return token.AccessToken, nil
}

// Token fetches an access token using credentials from the
// environment. Any failure is reported as a diagnostic and yields the
// explicit no-token outcome; callers must check ok before proceeding
// to any authenticated call.
func Token(context *Context) (token string, ok bool) {
	token, err := RequestAccessToken(util.GetUsername(), util.GetPassword(), context)
	if err != nil {
		util.LogAlert(context, "No access token available: "+err.Error())
		return "", false
	}
	return token, true
}
