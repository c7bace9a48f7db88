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
	"fmt"
	"strings"
)

var groupTitles = []struct {
	group Group
	title string
}{
	{GroupWorkflow, "WORKFLOWS"},
	{GroupRun, "WORKFLOW RUNS"},
	{GroupJob, "WORKFLOW JOBS"},
}

var examples = []string{
	"/workflow list react facebook",
	"/workflow run-get react facebook 12345",
	"/workflow dispatch react facebook main.yml",
	"/workflow job-logs react facebook 12345 67890",
	"/workflow runs-list react facebook --summary",
}

var helpText = renderHelp()

// Help returns the usage document listing every command in the table.
func Help() string {
	return helpText
}

func renderHelp() string {
	b := &strings.Builder{}
	b.WriteString("```\n")
	b.WriteString("Usage: /workflow <command> <repo> <owner> [additional parameters...] [--summary]\n")

	for _, g := range groupTitles {
		fmt.Fprintf(b, "\n%s:\n", g.title)
		for _, s := range specs {
			if s.Group != g.group {
				continue
			}
			fmt.Fprintf(b, "  %-58s - %s\n", s.Usage(), s.Description)
		}
	}

	b.WriteString("\nOptions:\n")
	b.WriteString("  --summary    Summarize the result instead of printing the raw JSON\n")

	b.WriteString("\nExamples:\n")
	for _, e := range examples {
		fmt.Fprintf(b, "  %s\n", e)
	}
	b.WriteString("\nUse '/workflow help' to see this message\n")
	b.WriteString("```")
	return b.String()
}
