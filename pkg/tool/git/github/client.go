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

package github

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v35/github"
	"golang.org/x/oauth2"

	"github.com/koderover/snapin/pkg/tool/httpclient"
)

type Config struct {
	// BaseURL overrides https://api.github.com/, mainly for GitHub Enterprise and tests.
	BaseURL string
	Token   string
	Timeout time.Duration
	// Cache is shared between clients to revalidate GET responses by ETag. Nil disables caching.
	Cache   *ResponseCache
}

type Client struct {
	*github.Client
}

func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	transport := http.DefaultTransport
	if cfg.Token != "" {
		transport = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})).Transport
	}
	if cfg.Cache != nil {
		transport = cfg.Cache.transport(cfg.Token, transport)
	}

	client := github.NewClient(&http.Client{Transport: transport, Timeout: cfg.Timeout})
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, err
		}
		client.BaseURL = baseURL
	}

	return &Client{Client: client}, nil
}

// wrap converts go-github failures into httpclient errors so callers classify them the same way
// as plain REST calls.
func wrap(obj interface{}, res *github.Response, err error) (interface{}, error) {
	if err != nil {
		if res != nil && res.Response != nil {
			return obj, httpclient.NewGenericServerResponse(res.StatusCode, res.Request.Method, err.Error())
		}
		return obj, err
	}

	return obj, nil
}
