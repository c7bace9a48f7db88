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

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/koderover/snapin/pkg/setting"
)

// Spec describes how one command maps onto the GitHub Actions REST API.
type Spec struct {
	Name  string
	Group Group
	// Params lists the positional parameters following <repo> <owner>.
	Params []string
	Method string
	// Path is relative to /repos/{owner}/{repo}/actions, placeholders use {param}.
	Path string
	// DefaultBody is sent as JSON when not nil.
	DefaultBody interface{}
	Description string
}

var emptyBody = map[string]string{}

var specs = []*Spec{
	// workflows
	{Name: "list", Group: GroupWorkflow, Method: http.MethodGet, Path: "/workflows",
		Description: "List repository workflows"},
	{Name: "get", Group: GroupWorkflow, Params: []string{ParamWorkflowID}, Method: http.MethodGet, Path: "/workflows/{workflow_id}",
		Description: "Get workflow details"},
	{Name: "disable", Group: GroupWorkflow, Params: []string{ParamWorkflowID}, Method: http.MethodPut, Path: "/workflows/{workflow_id}/disable",
		DefaultBody: emptyBody, Description: "Disable a workflow"},
	{Name: "enable", Group: GroupWorkflow, Params: []string{ParamWorkflowID}, Method: http.MethodPut, Path: "/workflows/{workflow_id}/enable",
		DefaultBody: emptyBody, Description: "Enable a workflow"},
	{Name: "dispatch", Group: GroupWorkflow, Params: []string{ParamWorkflowID}, Method: http.MethodPost, Path: "/workflows/{workflow_id}/dispatches",
		DefaultBody: map[string]string{"ref": setting.GithubDefaultRef}, Description: "Trigger workflow dispatch event"},
	{Name: "usage", Group: GroupWorkflow, Params: []string{ParamWorkflowID}, Method: http.MethodGet, Path: "/workflows/{workflow_id}/timing",
		Description: "Get workflow usage"},

	// runs
	{Name: "runs-list", Group: GroupRun, Method: http.MethodGet, Path: "/runs",
		Description: "List workflow runs for a repository"},
	{Name: "run-get", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}",
		Description: "Get a workflow run"},
	{Name: "run-delete", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodDelete, Path: "/runs/{run_id}",
		Description: "Delete a workflow run"},
	{Name: "run-reviews", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}/reviews",
		Description: "Get review history"},
	{Name: "run-approve", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodPost, Path: "/runs/{run_id}/approve",
		DefaultBody: emptyBody, Description: "Approve a fork pull request"},
	{Name: "run-logs", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}/logs",
		Description: "Download run logs"},
	{Name: "run-cancel", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodPost, Path: "/runs/{run_id}/cancel",
		DefaultBody: emptyBody, Description: "Cancel a workflow run"},
	{Name: "run-force-cancel", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodPost, Path: "/runs/{run_id}/force-cancel",
		DefaultBody: emptyBody, Description: "Force cancel a workflow run"},
	{Name: "run-rerun", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodPost, Path: "/runs/{run_id}/rerun",
		DefaultBody: emptyBody, Description: "Re-run a workflow"},
	{Name: "run-rerun-failed", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodPost, Path: "/runs/{run_id}/rerun-failed-jobs",
		DefaultBody: emptyBody, Description: "Re-run failed jobs"},
	{Name: "run-usage", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}/timing",
		Description: "Get run usage"},
	{Name: "run-deployments", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}/pending_deployments",
		Description: "List pending deployments"},
	{Name: "run-deployment-rules", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}/deployment_protection_rules",
		Description: "Review custom deployment rules"},
	{Name: "run-review-deployments", Group: GroupRun, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}/pending_deployments",
		Description: "Review pending deployments"},

	// jobs
	{Name: "job-get", Group: GroupJob, Params: []string{ParamRunID, ParamJobID}, Method: http.MethodGet, Path: "/jobs/{job_id}",
		Description: "Get a job for a workflow run"},
	{Name: "job-logs", Group: GroupJob, Params: []string{ParamRunID, ParamJobID}, Method: http.MethodGet, Path: "/jobs/{job_id}/logs",
		Description: "Download job logs"},
	{Name: "jobs-list", Group: GroupJob, Params: []string{ParamRunID}, Method: http.MethodGet, Path: "/runs/{run_id}/jobs",
		Description: "List jobs for a workflow run"},
	{Name: "jobs-attempt", Group: GroupJob, Params: []string{ParamRunID, ParamAttemptNumber}, Method: http.MethodGet, Path: "/runs/{run_id}/attempts/{attempt_number}/jobs",
		Description: "List jobs for a workflow run attempt"},
}

var specsByName = lo.KeyBy(specs, func(s *Spec) string { return s.Name })

// Lookup returns the spec registered under name.
func Lookup(name string) (*Spec, bool) {
	s, ok := specsByName[name]
	return s, ok
}

// Specs returns every command spec in help order.
func Specs() []*Spec {
	return append([]*Spec(nil), specs...)
}

// Usage is the one-line synopsis of the command, e.g. "run-get <repo> <owner> <run_id>".
func (s *Spec) Usage() string {
	usage := s.Name + " <" + ParamRepo + "> <" + ParamOwner + ">"
	for _, p := range s.Params {
		usage += " <" + p + ">"
	}
	return usage
}
