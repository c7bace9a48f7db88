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
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/command"
	"github.com/koderover/snapin/pkg/setting"
	"github.com/koderover/snapin/pkg/tool/log"
)

// Formatter renders command outcomes into the single message posted back to the user.
type Formatter struct {
	summarizer Summarizer
}

func NewFormatter(summarizer Summarizer) *Formatter {
	return &Formatter{summarizer: summarizer}
}

// Format renders a successful result, summarized when the command asked for it.
func (f *Formatter) Format(ctx context.Context, result *CommandResult) (string, error) {
	text := indentPayload(result.Payload)
	if !result.Command.Summary() {
		return setting.WorkflowResultPreamble + "\n```json\n" + text + "\n```", nil
	}

	if f.summarizer == nil {
		return "", &UpstreamError{Message: "summarizer is not configured"}
	}
	summary, err := f.summarizer.Summarize(ctx, text)
	if err != nil {
		return "", &UpstreamError{Message: err.Error()}
	}
	return summary, nil
}

// FormatError maps any failure of the parse, dispatch or format stages to its user message.
func (f *Formatter) FormatError(err error) string {
	var authErr *AuthError
	var upstreamErr *UpstreamError

	switch {
	case errors.Is(err, command.ErrHelpRequested):
		return command.Help()
	case errors.Is(err, command.ErrUnknownCommand), errors.Is(err, command.ErrMalformedInput):
		return setting.WorkflowInvalidInputMsg
	case errors.As(err, &authErr):
		return setting.WorkflowInvalidTokenMsg
	case errors.As(err, &upstreamErr):
		return setting.WorkflowExecuteErrPrefix + upstreamErr.Message
	default:
		log.Errorf("unclassified workflow error: %v", err)
		return setting.WorkflowExecuteErrPrefix + err.Error()
	}
}

// indentPayload pretty prints JSON payloads with two spaces. Anything else, empty bodies and
// log archives included, becomes a JSON string literal.
func indentPayload(payload []byte) string {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && json.Valid(trimmed) {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, trimmed, "", "  "); err == nil {
			return buf.String()
		}
	}

	b, _ := json.Marshal(string(payload))
	return string(b)
}
