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

package httpclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

type ClientFunc func(*Client)

type RequestFunc func(*resty.Request)

func SetHostURL(host string) ClientFunc {
	return func(c *Client) {
		c.Host = host
	}
}

func SetBaseURI(uri string) ClientFunc {
	return func(c *Client) {
		c.BaseURI = uri
	}
}

func SetClientTimeout(timeout time.Duration) ClientFunc {
	return func(c *Client) {
		c.SetTimeout(timeout)
	}
}

func SetClientHeader(header, value string) ClientFunc {
	return func(c *Client) {
		c.SetHeader(header, value)
	}
}

func SetContext(ctx context.Context) RequestFunc {
	return func(r *resty.Request) {
		r.SetContext(ctx)
	}
}

func SetBody(body interface{}) RequestFunc {
	return func(r *resty.Request) {
		r.SetBody(body)
	}
}

func SetResult(res interface{}) RequestFunc {
	return func(r *resty.Request) {
		r.SetResult(res)
	}
}

func SetHeader(header, value string) RequestFunc {
	return func(r *resty.Request) {
		r.SetHeader(header, value)
	}
}

// SetAuthorization sets "Authorization: <scheme> <token>".
func SetAuthorization(scheme, token string) RequestFunc {
	return func(r *resty.Request) {
		r.SetHeader("Authorization", fmt.Sprintf("%s %s", scheme, token))
	}
}
