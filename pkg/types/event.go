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

package types

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Event is one invocation delivered to a function. A batch is a JSON array of events.
type Event struct {
	Payload           json.RawMessage   `json:"payload"`
	Context           EventContext      `json:"context"`
	ExecutionMetadata ExecutionMetadata `json:"execution_metadata"`
	InputData         InputData         `json:"input_data"`
}

type EventContext struct {
	Secrets map[string]string `json:"secrets"`
}

type ExecutionMetadata struct {
	Endpoint string `json:"devrev_endpoint"`
}

type InputData struct {
	Keyrings map[string]string `json:"keyrings"`
}

// SourceID is the object the event originated from, where replies are posted.
func (e *Event) SourceID() string {
	return gjson.GetBytes(e.Payload, "source_id").String()
}

// Parameters is the raw text typed after a slash command.
func (e *Event) Parameters() string {
	return gjson.GetBytes(e.Payload, "parameters").String()
}

// WebhookBody returns the first forwarded webhook body, which arrives as a JSON encoded string.
func (e *Event) WebhookBody() string {
	return gjson.GetBytes(e.Payload, "payload.0").String()
}

func (e *Event) Endpoint() string {
	return e.ExecutionMetadata.Endpoint
}

func (e *Event) Secret(name string) string {
	return e.Context.Secrets[name]
}

func (e *Event) Keyring(name string) string {
	return e.InputData.Keyrings[name]
}
