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
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/koderover/snapin/pkg/tool/cache"
)

var _ = Describe("Testing LLM summarizer", func() {
	var (
		server   *httptest.Server
		calls    int32
		captured map[string]interface{}
		path     string
		auth     string
	)

	BeforeEach(func() {
		calls = 0
		captured = map[string]interface{}{}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			path = r.URL.Path
			auth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&captured)

			w.Header().Set("Content-Type", "application/json")
			if auth != "Bearer sk-test" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","created":1,"model":"gpt-3.5-turbo",
"choices":[{"index":0,"message":{"role":"assistant","content":"It is fine."},"finish_reason":"stop"}]}`))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	It("asks for a three sentence summary and caches it", func() {
		summarizer, err := NewLLMSummarizer(SummarizerConfig{
			Token:   "sk-test",
			BaseURL: server.URL + "/v1",
		}, cache.NewMemCache(false))
		Expect(err).ShouldNot(HaveOccurred())

		out, err := summarizer.Summarize(context.Background(), `{"a":1}`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).To(Equal("It is fine."))

		Expect(path).To(Equal("/v1/chat/completions"))
		Expect(auth).To(Equal("Bearer sk-test"))
		Expect(captured["model"]).To(Equal("gpt-3.5-turbo"))
		Expect(captured["max_tokens"]).To(BeNumerically("==", 150))
		messages := captured["messages"].([]interface{})
		Expect(messages).To(HaveLen(2))
		Expect(messages[0]).To(HaveKeyWithValue("role", "system"))
		Expect(messages[0]).To(HaveKeyWithValue("content", "You are a helpful assistant that summarizes text."))
		Expect(messages[1]).To(HaveKeyWithValue("content", "Please summarize the following content in 3 sentences:\n{\"a\":1}"))

		out, err = summarizer.Summarize(context.Background(), `{"a":1}`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).To(Equal("It is fine."))
		Expect(atomic.LoadInt32(&calls)).To(Equal(int32(1)))
	})

	It("does not serve a cached summary to another token", func() {
		shared := cache.NewMemCache(false)
		valid, err := NewLLMSummarizer(SummarizerConfig{Token: "sk-test", BaseURL: server.URL + "/v1"}, shared)
		Expect(err).ShouldNot(HaveOccurred())
		expired, err := NewLLMSummarizer(SummarizerConfig{Token: "sk-expired", BaseURL: server.URL + "/v1"}, shared)
		Expect(err).ShouldNot(HaveOccurred())

		out, err := valid.Summarize(context.Background(), `{"a":1}`)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).To(Equal("It is fine."))

		_, err = expired.Summarize(context.Background(), `{"a":1}`)
		Expect(err).Should(HaveOccurred())
		Expect(atomic.LoadInt32(&calls)).To(Equal(int32(2)))
	})
})
