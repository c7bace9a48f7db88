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

package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/function/service"
	"github.com/koderover/snapin/pkg/microservice/snapin/server/rest"
	"github.com/koderover/snapin/pkg/types"
)

type echoFunction struct {
	seen []string
}

func (f *echoFunction) Name() string {
	return "echo"
}

func (f *echoFunction) Handle(_ context.Context, event *types.Event, _ *zap.SugaredLogger) error {
	f.seen = append(f.seen, event.Parameters())
	if event.Parameters() == "fail" {
		return errors.New("failed on purpose")
	}
	return nil
}

var _ = Describe("Testing REST API", func() {
	var (
		fn      *echoFunction
		handler http.Handler
	)

	BeforeEach(func() {
		fn = &echoFunction{}
		handler = rest.NewEngine(service.NewRegistry(fn))
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	It("reports health", func() {
		w := do(http.MethodGet, "/api/health", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"message":"success"}`))
		Expect(w.Header().Get("X-Request-Id")).NotTo(BeEmpty())
	})

	It("lists functions", func() {
		w := do(http.MethodGet, "/api/v1/functions", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"functions":["echo"]}`))
	})

	It("runs a batch and reports failures", func() {
		w := do(http.MethodPost, "/api/v1/functions/echo",
			`[{"payload":{"parameters":"one"}},{"payload":{"parameters":"fail"}},{"payload":{"parameters":"two"}}]`)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(fn.seen).To(Equal([]string{"one", "fail", "two"}))
		report := &service.Report{}
		Expect(json.Unmarshal(w.Body.Bytes(), report)).To(Succeed())
		Expect(report.Processed).To(Equal(3))
		Expect(report.Failed).To(Equal(1))
		Expect(report.Errors).To(HaveLen(1))
		Expect(report.Errors[0].Index).To(Equal(1))
	})

	It("rejects unknown functions", func() {
		w := do(http.MethodPost, "/api/v1/functions/missing", `[]`)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("rejects a body that is not an event array", func() {
		w := do(http.MethodPost, "/api/v1/functions/echo", `{"payload":{}}`)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(fn.seen).To(BeEmpty())
	})

	It("exposes function metrics", func() {
		do(http.MethodPost, "/api/v1/functions/echo", `[{"payload":{"parameters":"fail"}}]`)

		w := do(http.MethodGet, "/metrics", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`snapin_function_events_total{function="echo",result="failure"}`))
	})

	It("serves the API doc", func() {
		w := do(http.MethodGet, "/api/apidocs/doc.json", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		doc := map[string]interface{}{}
		Expect(json.Unmarshal(w.Body.Bytes(), &doc)).To(Succeed())
		Expect(doc).To(HaveKey("paths"))
		Expect(doc["paths"]).To(HaveKey("/api/v1/functions/{name}"))
		Expect(doc["info"]).To(HaveKeyWithValue("title", "Snapin function service REST APIs"))
	})

	It("answers unknown paths with 404", func() {
		w := do(http.MethodGet, "/nope", "")

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
