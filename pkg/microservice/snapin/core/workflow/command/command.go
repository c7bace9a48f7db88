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

package command

// Group is the API family a command belongs to.
type Group string

const (
	GroupWorkflow Group = "workflow"
	GroupRun      Group = "run"
	GroupJob      Group = "job"
)

// parameter names
const (
	ParamRepo          = "repo"
	ParamOwner         = "owner"
	ParamWorkflowID    = "workflow_id"
	ParamRunID         = "run_id"
	ParamJobID         = "job_id"
	ParamAttemptNumber = "attempt_number"
)

// Command is a parsed workflow command. It is only built by Parse and never changes afterwards.
type Command struct {
	name    string
	params  map[string]string
	summary bool
}

func (c Command) Name() string {
	return c.name
}

func (c Command) Param(name string) string {
	return c.params[name]
}

// Params returns a copy of all parameters, repo and owner included.
func (c Command) Params() map[string]string {
	params := make(map[string]string, len(c.params))
	for k, v := range c.params {
		params[k] = v
	}
	return params
}

// Summary reports whether the result should be summarized instead of printed.
func (c Command) Summary() bool {
	return c.summary
}
