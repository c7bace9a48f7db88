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
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/command"
)

type fakeSummarizer struct {
	input  string
	output string
	err    error
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (string, error) {
	f.input = text
	return f.output, f.err
}

func resultOf(input string, payload string) *CommandResult {
	cmd, err := command.Parse(input)
	Expect(err).ShouldNot(HaveOccurred())
	return &CommandResult{Command: cmd, StatusCode: http.StatusOK, Payload: []byte(payload)}
}

var _ = Describe("Testing Formatter", func() {

	It("pretty prints JSON results", func() {
		out, err := NewFormatter(nil).Format(context.Background(), resultOf("list r o", `{"total_count":0,"workflows":[]}`))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).To(Equal("Command Result:\n```json\n{\n  \"total_count\": 0,\n  \"workflows\": []\n}\n```"))
	})

	DescribeTable("rendering non-JSON payloads as a string",
		func(payload, expected string) {
			out, err := NewFormatter(nil).Format(context.Background(), resultOf("run-logs r o 1", payload))

			Expect(err).ShouldNot(HaveOccurred())
			Expect(out).To(Equal("Command Result:\n```json\n" + expected + "\n```"))
		},
		Entry("empty body", "", `""`),
		Entry("plain text", "2024-01-01 step one", `"2024-01-01 step one"`),
	)

	It("returns the summary verbatim", func() {
		summarizer := &fakeSummarizer{output: "Two workflows exist. Both pass. Nothing to do."}

		out, err := NewFormatter(summarizer).Format(context.Background(), resultOf("list r o --summary", `{"a":1}`))

		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).To(Equal(summarizer.output))
		Expect(summarizer.input).To(Equal("{\n  \"a\": 1\n}"))
	})

	It("turns summarizer failures into upstream errors", func() {
		summarizer := &fakeSummarizer{err: fmt.Errorf("quota exceeded")}

		_, err := NewFormatter(summarizer).Format(context.Background(), resultOf("list r o --summary", `{}`))

		Expect(IsUpstreamError(err)).To(BeTrue())
		Expect(err).To(MatchError("quota exceeded"))
	})

	DescribeTable("mapping failures to messages",
		func(err error, expected string) {
			Expect(NewFormatter(nil).FormatError(err)).To(Equal(expected))
		},
		Entry("help", command.ErrHelpRequested, command.Help()),
		Entry("unknown command", errors.Wrap(command.ErrUnknownCommand, "frobnicate"),
			"Invalid input format. Use '/workflow help' to see usage instructions."),
		Entry("malformed input", errors.Wrap(command.ErrMalformedInput, "usage"),
			"Invalid input format. Use '/workflow help' to see usage instructions."),
		Entry("auth", &AuthError{Message: "Bad credentials"}, "Error: Invalid or expired GitHub token"),
		Entry("upstream", &UpstreamError{StatusCode: 404, Message: "Not Found"}, "Error executing command: Not Found"),
		Entry("anything else", fmt.Errorf("boom"), "Error executing command: boom"),
	)
})
