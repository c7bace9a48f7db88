/*
Copyright 2024 The KodeRover Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/command"
	"github.com/koderover/snapin/pkg/setting"
	"github.com/koderover/snapin/pkg/tool/httpclient"
	"github.com/koderover/snapin/pkg/tool/log"
)

// CommandResult is the raw answer of a successful GitHub call.
type CommandResult struct {
	Command    command.Command
	StatusCode int
	Payload    []byte
}

// Dispatcher executes parsed commands against the GitHub Actions REST API.
type Dispatcher struct {
	client *httpclient.Client
	token  string
}

func NewDispatcher(baseURL, token string, timeout time.Duration) *Dispatcher {
	if baseURL == "" {
		baseURL = setting.DefaultGithubAPIBase
	}
	c := httpclient.New(
		httpclient.SetHostURL(strings.TrimSuffix(baseURL, "/")),
		httpclient.SetClientTimeout(timeout),
		httpclient.SetClientHeader("Accept", setting.GithubAcceptHeader),
	)

	return &Dispatcher{
		client: c,
		token:  token,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, cmd command.Command) (*CommandResult, error) {
	spec, ok := command.Lookup(cmd.Name())
	if !ok {
		log.DPanicf("no descriptor registered for command %q", cmd.Name())
		return nil, &UpstreamError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("no descriptor for command %q", cmd.Name()),
		}
	}

	path := buildPath(spec, cmd)
	rfs := []httpclient.RequestFunc{
		httpclient.SetContext(ctx),
		httpclient.SetAuthorization(setting.GithubTokenAuthScheme, d.token),
	}
	if spec.DefaultBody != nil {
		rfs = append(rfs, httpclient.SetBody(spec.DefaultBody))
	}

	log.Debugf("dispatching %s %s", spec.Method, path)
	res, err := d.client.Request(spec.Method, path, rfs...)
	if err != nil {
		return nil, classify(err)
	}
	if !res.IsSuccess() {
		return nil, &UpstreamError{
			StatusCode: res.StatusCode(),
			Message:    upstreamMessage(res.StatusCode(), res.Body()),
		}
	}

	return &CommandResult{
		Command:    cmd,
		StatusCode: res.StatusCode(),
		Payload:    res.Body(),
	}, nil
}

func buildPath(spec *command.Spec, cmd command.Command) string {
	params := cmd.Params()
	oldnew := make([]string, 0, 2*len(params))
	for k, v := range params {
		oldnew = append(oldnew, "{"+k+"}", url.PathEscape(v))
	}

	prefix := fmt.Sprintf("/repos/%s/%s/actions", url.PathEscape(params[command.ParamOwner]), url.PathEscape(params[command.ParamRepo]))
	return prefix + strings.NewReplacer(oldnew...).Replace(spec.Path)
}

func classify(err error) error {
	code := httpclient.StatusCode(err)
	if code == 0 {
		return &UpstreamError{Message: err.Error()}
	}

	var detail []byte
	var e *httpclient.Error
	if errors.As(err, &e) {
		detail = []byte(e.Detail)
	}
	if httpclient.IsUnauthorized(err) {
		return &AuthError{Message: upstreamMessage(code, detail)}
	}
	return &UpstreamError{
		StatusCode: code,
		Message:    upstreamMessage(code, detail),
	}
}

// upstreamMessage prefers the "message" field GitHub puts in error bodies.
func upstreamMessage(code int, body []byte) string {
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status code %d", code)
}
