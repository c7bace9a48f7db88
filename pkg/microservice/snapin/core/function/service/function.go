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
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	prreviewservice "github.com/koderover/snapin/pkg/microservice/snapin/core/prreview/service"
	repohealthservice "github.com/koderover/snapin/pkg/microservice/snapin/core/repohealth/service"
	workflowservice "github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/service"
	"github.com/koderover/snapin/pkg/tool/metrics"
	"github.com/koderover/snapin/pkg/types"
)

var ErrFunctionNotFound = errors.New("function not found")

// Function handles one event at a time.
type Function interface {
	Name() string
	Handle(ctx context.Context, event *types.Event, logger *zap.SugaredLogger) error
}

type Registry struct {
	functions map[string]Function
}

func NewRegistry(functions ...Function) *Registry {
	return &Registry{
		functions: lo.KeyBy(functions, func(f Function) string { return f.Name() }),
	}
}

// DefaultRegistry wires every function with configuration read from the environment.
func DefaultRegistry() *Registry {
	return NewRegistry(
		workflowservice.New(workflowservice.ConfigFromEnv()),
		repohealthservice.New(repohealthservice.ConfigFromEnv()),
		prreviewservice.New(prreviewservice.ConfigFromEnv()),
	)
}

func (r *Registry) Names() []string {
	names := lo.Keys(r.functions)
	sort.Strings(names)
	return names
}

func (r *Registry) Get(name string) (Function, error) {
	f, ok := r.functions[name]
	if !ok {
		return nil, errors.Wrapf(ErrFunctionNotFound, "%q", name)
	}
	return f, nil
}

type EventError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

type Report struct {
	Function  string        `json:"function"`
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Errors    []*EventError `json:"errors"`
}

// Run hands the events to the named function one after the other. A failed event is
// recorded in the report and does not stop the batch.
func (r *Registry) Run(ctx context.Context, name string, events []*types.Event, logger *zap.SugaredLogger) (*Report, error) {
	f, err := r.Get(name)
	if err != nil {
		return nil, err
	}

	report := &Report{Function: name, Errors: []*EventError{}}
	for i, event := range events {
		if event == nil {
			continue
		}
		report.Processed++

		err := f.Handle(ctx, event, logger.With("function", name, "event", i))
		metrics.RegisterFunctionEvent(name, err)
		if err != nil {
			logger.Errorf("function %s failed on event %d: %v", name, i, err)
			report.Failed++
			report.Errors = append(report.Errors, &EventError{Index: i, Error: err.Error()})
		}
	}

	logger.Infof("function %s processed %d events, %d failed", name, report.Processed, report.Failed)
	return report, nil
}
