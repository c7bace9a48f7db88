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
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/command"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	accept string
	body   string
}

var _ = Describe("Testing Dispatcher", func() {
	var (
		server   *httptest.Server
		recorded *recordedRequest
		status   int
		response string
	)

	BeforeEach(func() {
		recorded = &recordedRequest{}
		status = http.StatusOK
		response = `{"total_count":1,"workflows":[{"id":1,"name":"CI"}]}`
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			recorded.method = r.Method
			recorded.path = r.URL.EscapedPath()
			recorded.auth = r.Header.Get("Authorization")
			recorded.accept = r.Header.Get("Accept")
			recorded.body = string(body)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(response))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	dispatch := func(input string) (*CommandResult, error) {
		cmd, err := command.Parse(input)
		Expect(err).ShouldNot(HaveOccurred())
		return NewDispatcher(server.URL, "ghp_test", 5*time.Second).Dispatch(context.Background(), cmd)
	}

	It("lists workflows with the GitHub headers", func() {
		result, err := dispatch("list react facebook")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.StatusCode).To(Equal(http.StatusOK))
		Expect(string(result.Payload)).To(Equal(response))
		Expect(result.Command.Name()).To(Equal("list"))
		Expect(recorded.method).To(Equal(http.MethodGet))
		Expect(recorded.path).To(Equal("/repos/facebook/react/actions/workflows"))
		Expect(recorded.auth).To(Equal("token ghp_test"))
		Expect(recorded.accept).To(Equal("application/vnd.github.v3+json"))
	})

	DescribeTable("building request paths",
		func(input, method, path string) {
			_, err := dispatch(input)

			Expect(err).ShouldNot(HaveOccurred())
			Expect(recorded.method).To(Equal(method))
			Expect(recorded.path).To(Equal(path))
		},
		Entry("job-get uses only the job id", "job-get r o 5 9", http.MethodGet, "/repos/o/r/actions/jobs/9"),
		Entry("jobs-attempt", "jobs-attempt r o 5 2", http.MethodGet, "/repos/o/r/actions/runs/5/attempts/2/jobs"),
		Entry("run-delete", "run-delete r o 5", http.MethodDelete, "/repos/o/r/actions/runs/5"),
		Entry("run-rerun-failed", "run-rerun-failed r o 5", http.MethodPost, "/repos/o/r/actions/runs/5/rerun-failed-jobs"),
		Entry("disable", "disable r o ci.yml", http.MethodPut, "/repos/o/r/actions/workflows/ci.yml/disable"),
		Entry("parameters are path escaped", "get r o a/b", http.MethodGet, "/repos/o/r/actions/workflows/a%2Fb"),
	)

	It("sends the default ref on dispatch", func() {
		status = http.StatusNoContent
		response = ""

		result, err := dispatch("dispatch react facebook main.yml")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(result.StatusCode).To(Equal(http.StatusNoContent))
		body := map[string]string{}
		Expect(json.Unmarshal([]byte(recorded.body), &body)).To(Succeed())
		Expect(body).To(Equal(map[string]string{"ref": "main"}))
	})

	It("sends an empty object on cancel", func() {
		status = http.StatusAccepted
		response = "{}"

		_, err := dispatch("run-cancel react facebook 42")

		Expect(err).ShouldNot(HaveOccurred())
		body := map[string]interface{}{}
		Expect(json.Unmarshal([]byte(recorded.body), &body)).To(Succeed())
		Expect(body).To(BeEmpty())
	})

	It("classifies 401 as an auth error", func() {
		status = http.StatusUnauthorized
		response = `{"message":"Bad credentials"}`

		_, err := dispatch("list react facebook")

		Expect(err).Should(HaveOccurred())
		Expect(IsAuthError(err)).To(BeTrue())
		Expect(IsUpstreamError(err)).To(BeFalse())
	})

	It("classifies other failures as upstream errors", func() {
		status = http.StatusNotFound
		response = `{"message":"Not Found","documentation_url":"https://docs.github.com"}`

		_, err := dispatch("run-get react facebook 1")

		var upstream *UpstreamError
		Expect(errors.As(err, &upstream)).To(BeTrue())
		Expect(upstream.StatusCode).To(Equal(http.StatusNotFound))
		Expect(upstream.Message).To(Equal("Not Found"))
	})

	It("falls back to the status code when the body has no message", func() {
		status = http.StatusBadGateway
		response = "bad gateway"

		_, err := dispatch("run-get react facebook 1")

		Expect(err).To(MatchError("request failed with status code 502"))
	})

	It("reports transport failures as upstream errors", func() {
		cmd, err := command.Parse("list react facebook")
		Expect(err).ShouldNot(HaveOccurred())

		_, err = NewDispatcher("http://127.0.0.1:1", "t", time.Second).Dispatch(context.Background(), cmd)

		Expect(IsUpstreamError(err)).To(BeTrue())
		Expect(err.(*UpstreamError).StatusCode).To(Equal(0))
	})

	It("rejects a command without a descriptor", func() {
		_, err := NewDispatcher(server.URL, "t", time.Second).Dispatch(context.Background(), command.Command{})

		Expect(IsUpstreamError(err)).To(BeTrue())
		Expect(recorded.path).To(BeEmpty())
	})
})
