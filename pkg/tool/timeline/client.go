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

package timeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/koderover/snapin/pkg/setting"
	"github.com/koderover/snapin/pkg/tool/httpclient"
	"github.com/koderover/snapin/pkg/tool/log"
)

// Client talks to the ticketing platform: timeline comments and work item updates.
type Client struct {
	*httpclient.Client

	token string
}

func NewClient(endpoint, token string, timeout time.Duration) *Client {
	c := httpclient.New(
		httpclient.SetHostURL(endpoint),
		httpclient.SetClientTimeout(timeout),
	)

	return &Client{
		Client: c,
		token:  token,
	}
}

type createTimelineEntryReq struct {
	Type       string `json:"type"`
	Object     string `json:"object"`
	Body       string `json:"body"`
	BodyType   string `json:"body_type,omitempty"`
	Visibility string `json:"visibility"`
}

// CreateTimelineComment posts body as a comment on the object's timeline.
func (c *Client) CreateTimelineComment(ctx context.Context, objectID, body, visibility string) error {
	url := "/timeline-entries.create"

	req := &createTimelineEntryReq{
		Type:       setting.TimelineEntryTypeComment,
		Object:     objectID,
		Body:       body,
		BodyType:   setting.TimelineBodyTypeText,
		Visibility: visibility,
	}
	_, err := c.Post(url,
		httpclient.SetContext(ctx),
		httpclient.SetAuthorization("Bearer", c.token),
		httpclient.SetBody(req),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to create timeline comment on %s", objectID)
	}

	log.Debugf("timeline comment created on %s", objectID)
	return nil
}

type updateWorkReq struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (c *Client) UpdateWork(ctx context.Context, id, title, body string) error {
	url := "/works.update"

	req := &updateWorkReq{
		ID:    id,
		Type:  setting.WorkTypeIssue,
		Title: title,
		Body:  body,
	}
	_, err := c.Post(url,
		httpclient.SetContext(ctx),
		httpclient.SetAuthorization("Bearer", c.token),
		httpclient.SetBody(req),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to update work %s", id)
	}

	return nil
}
