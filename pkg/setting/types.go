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

package setting

// function names as registered in the runtime
const (
	FunctionWorkflow     = "workflow"
	FunctionRepoHealth   = "repo_health"
	FunctionOnPRCreation = "on_pr_creation"
)

type ServiceInfo struct {
	Name string
	Port int32
}

var SnapinService = &ServiceInfo{
	Name: "snapin",
	Port: 8080,
}
