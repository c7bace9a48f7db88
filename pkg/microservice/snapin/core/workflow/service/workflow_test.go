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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/command"
	"github.com/koderover/snapin/pkg/tool/log"
	"github.com/koderover/snapin/pkg/types"
)

type postedComment struct {
	Type       string `json:"type"`
	Object     string `json:"object"`
	Body       string `json:"body"`
	BodyType   string `json:"body_type"`
	Visibility string `json:"visibility"`
}

var _ = Describe("Testing workflow function", func() {
	var (
		server       *httptest.Server
		posted       []postedComment
		githubStatus int
		githubBody   string
		sinkStatus   int
		githubCalls  int
		sinkPath     string
		sinkAuth     string
		workflow     *Workflow
	)

	newEvent := func(parameters string) *types.Event {
		raw := fmt.Sprintf(`{
			"payload": {"source_id": "don:core:comment/1", "parameters": %q},
			"context": {"secrets": {"service_account_token": "sa-token"}},
			"execution_metadata": {"devrev_endpoint": %q},
			"input_data": {"keyrings": {"github_api_key": "ghp_test", "openai_api_key": "sk-test"}}
		}`, parameters, server.URL)
		event := &types.Event{}
		Expect(json.Unmarshal([]byte(raw), event)).To(Succeed())
		return event
	}

	BeforeEach(func() {
		posted = nil
		githubStatus = http.StatusOK
		githubBody = `{"total_count":0,"workflows":[]}`
		sinkStatus = http.StatusCreated
		githubCalls = 0

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if strings.HasPrefix(r.URL.Path, "/repos/") {
				githubCalls++
				w.WriteHeader(githubStatus)
				_, _ = w.Write([]byte(githubBody))
				return
			}

			comment := postedComment{}
			_ = json.NewDecoder(r.Body).Decode(&comment)
			posted = append(posted, comment)
			sinkPath = r.URL.Path
			sinkAuth = r.Header.Get("Authorization")
			w.WriteHeader(sinkStatus)
			_, _ = w.Write([]byte(`{}`))
		}))

		workflow = New(&Config{GithubAPIBase: server.URL, RequestTimeout: 5 * time.Second})
	})

	AfterEach(func() {
		server.Close()
	})

	It("posts the formatted result of a command", func() {
		err := workflow.Handle(context.Background(), newEvent("list react facebook"), log.SugaredLogger())

		Expect(err).ShouldNot(HaveOccurred())
		Expect(posted).To(HaveLen(1))
		Expect(sinkPath).To(Equal("/timeline-entries.create"))
		Expect(sinkAuth).To(Equal("Bearer sa-token"))
		Expect(posted[0].Object).To(Equal("don:core:comment/1"))
		Expect(posted[0].Type).To(Equal("timeline_comment"))
		Expect(posted[0].BodyType).To(Equal("text"))
		Expect(posted[0].Visibility).To(Equal("external"))
		Expect(posted[0].Body).To(Equal("Command Result:\n```json\n{\n  \"total_count\": 0,\n  \"workflows\": []\n}\n```"))
	})

	It("posts the token error on 401", func() {
		githubStatus = http.StatusUnauthorized
		githubBody = `{"message":"Bad credentials"}`

		err := workflow.Handle(context.Background(), newEvent("list react facebook"), log.SugaredLogger())

		Expect(err).ShouldNot(HaveOccurred())
		Expect(posted).To(HaveLen(1))
		Expect(posted[0].Body).To(Equal("Error: Invalid or expired GitHub token"))
	})

	DescribeTable("answering without calling GitHub",
		func(parameters, expected string) {
			err := workflow.Handle(context.Background(), newEvent(parameters), log.SugaredLogger())

			Expect(err).ShouldNot(HaveOccurred())
			Expect(githubCalls).To(Equal(0))
			Expect(posted).To(HaveLen(1))
			Expect(posted[0].Body).To(Equal(expected))
		},
		Entry("help", "help", command.Help()),
		Entry("empty", "", command.Help()),
		Entry("unknown command", "frobnicate a b", "Invalid input format. Use '/workflow help' to see usage instructions."),
		Entry("missing owner", "list react", "Invalid input format. Use '/workflow help' to see usage instructions."),
	)

	It("posts the summary when asked to", func() {
		summarizer := &fakeSummarizer{output: "No workflows are configured."}
		var usedToken string
		workflow.newSummarizer = func(token string) (Summarizer, error) {
			usedToken = token
			return summarizer, nil
		}

		err := workflow.Handle(context.Background(), newEvent("list react facebook --summary"), log.SugaredLogger())

		Expect(err).ShouldNot(HaveOccurred())
		Expect(usedToken).To(Equal("sk-test"))
		Expect(posted).To(HaveLen(1))
		Expect(posted[0].Body).To(Equal("No workflows are configured."))
	})

	It("returns an error when the reply cannot be posted", func() {
		sinkStatus = http.StatusInternalServerError

		err := workflow.Handle(context.Background(), newEvent("list react facebook"), log.SugaredLogger())

		Expect(err).Should(HaveOccurred())
		Expect(posted).To(HaveLen(1))
	})

	It("refuses events without a source", func() {
		event := &types.Event{}

		err := workflow.Handle(context.Background(), event, log.SugaredLogger())

		Expect(err).Should(HaveOccurred())
		Expect(posted).To(BeEmpty())
	})
})
