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

package command_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/workflow/command"
)

type parseParams struct {
	input    string
	name     string
	params   map[string]string
	summary  bool
	expected error
}

var _ = Describe("Testing Parse", func() {

	DescribeTable("parsing valid commands",
		func(p parseParams) {
			cmd, err := command.Parse(p.input)

			Expect(err).ShouldNot(HaveOccurred())
			Expect(cmd.Name()).To(Equal(p.name))
			Expect(cmd.Params()).To(Equal(p.params))
			Expect(cmd.Summary()).To(Equal(p.summary))
		},
		Entry("list", parseParams{
			input:  "list react facebook",
			name:   "list",
			params: map[string]string{"repo": "react", "owner": "facebook"},
		}),
		Entry("job-get with two extra parameters", parseParams{
			input:  "job-get r o 5 9",
			name:   "job-get",
			params: map[string]string{"repo": "r", "owner": "o", "run_id": "5", "job_id": "9"},
		}),
		Entry("summary flag at the end", parseParams{
			input:   "run-get react facebook 42 --summary",
			name:    "run-get",
			params:  map[string]string{"repo": "react", "owner": "facebook", "run_id": "42"},
			summary: true,
		}),
		Entry("summary flag in the middle", parseParams{
			input:   "run-get react --summary facebook 42",
			name:    "run-get",
			params:  map[string]string{"repo": "react", "owner": "facebook", "run_id": "42"},
			summary: true,
		}),
		Entry("extra whitespace", parseParams{
			input:  "  jobs-list\treact   facebook  7 \n",
			name:   "jobs-list",
			params: map[string]string{"repo": "react", "owner": "facebook", "run_id": "7"},
		}),
		Entry("trailing tokens are ignored", parseParams{
			input:  "dispatch react facebook main.yml extra tokens",
			name:   "dispatch",
			params: map[string]string{"repo": "react", "owner": "facebook", "workflow_id": "main.yml"},
		}),
		Entry("jobs-attempt", parseParams{
			input:  "jobs-attempt r o 11 2",
			name:   "jobs-attempt",
			params: map[string]string{"repo": "r", "owner": "o", "run_id": "11", "attempt_number": "2"},
		}),
	)

	DescribeTable("rejecting invalid input",
		func(p parseParams) {
			_, err := command.Parse(p.input)

			Expect(err).Should(HaveOccurred())
			Expect(err).To(MatchError(p.expected))
		},
		Entry("empty input", parseParams{input: "", expected: command.ErrHelpRequested}),
		Entry("blank input", parseParams{input: "   \t ", expected: command.ErrHelpRequested}),
		Entry("help", parseParams{input: "help", expected: command.ErrHelpRequested}),
		Entry("help with trailing tokens", parseParams{input: "help list", expected: command.ErrHelpRequested}),
		Entry("only the summary flag", parseParams{input: "--summary", expected: command.ErrHelpRequested}),
		Entry("unknown command", parseParams{input: "frobnicate a b", expected: command.ErrUnknownCommand}),
		Entry("unknown command without arguments", parseParams{input: "frobnicate", expected: command.ErrUnknownCommand}),
		Entry("missing owner", parseParams{input: "list react", expected: command.ErrMalformedInput}),
		Entry("missing run_id", parseParams{input: "run-get react facebook", expected: command.ErrMalformedInput}),
		Entry("missing job_id", parseParams{input: "job-get r o 5", expected: command.ErrMalformedInput}),
		Entry("flag does not fill a positional slot", parseParams{input: "run-get react facebook --summary", expected: command.ErrMalformedInput}),
	)

	It("is deterministic", func() {
		first, err := command.Parse("run-logs react facebook 12 --summary")
		Expect(err).ShouldNot(HaveOccurred())
		second, err := command.Parse("run-logs react facebook 12 --summary")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("returns a copy of the parameters", func() {
		cmd, err := command.Parse("list react facebook")
		Expect(err).ShouldNot(HaveOccurred())

		params := cmd.Params()
		params["repo"] = "changed"
		Expect(cmd.Param("repo")).To(Equal("react"))
	})
})

var _ = Describe("Testing command table", func() {

	It("parses every command with exactly its required parameters", func() {
		for _, s := range command.Specs() {
			tokens := []string{s.Name, "repo", "owner"}
			for i := range s.Params {
				tokens = append(tokens, strings.Repeat("x", i+1))
			}

			cmd, err := command.Parse(strings.Join(tokens, " "))
			Expect(err).ShouldNot(HaveOccurred(), s.Name)
			Expect(cmd.Params()).To(HaveLen(2+len(s.Params)), s.Name)

			if len(s.Params) > 0 {
				_, err = command.Parse(strings.Join(tokens[:len(tokens)-1], " "))
				Expect(err).To(MatchError(command.ErrMalformedInput), s.Name)
			}
		}
	})

	It("has unique names and a group for every command", func() {
		seen := map[string]bool{}
		for _, s := range command.Specs() {
			Expect(seen).NotTo(HaveKey(s.Name))
			seen[s.Name] = true
			Expect([]command.Group{command.GroupWorkflow, command.GroupRun, command.GroupJob}).To(ContainElement(s.Group), s.Name)
			Expect(s.Path).To(HavePrefix("/"), s.Name)
		}
		Expect(seen).To(HaveLen(24))
	})

	It("puts jobs-list in the job group", func() {
		s, ok := command.Lookup("jobs-list")
		Expect(ok).To(BeTrue())
		Expect(s.Group).To(Equal(command.GroupJob))
		Expect(s.Path).To(Equal("/runs/{run_id}/jobs"))
	})

	It("sends a default ref when dispatching", func() {
		s, ok := command.Lookup("dispatch")
		Expect(ok).To(BeTrue())
		Expect(s.DefaultBody).To(Equal(map[string]string{"ref": "main"}))
	})

	It("documents every command and nothing else", func() {
		help := command.Help()
		for _, s := range command.Specs() {
			Expect(help).To(ContainSubstring("  " + s.Usage() + " "))
		}

		documented := 0
		for _, line := range strings.Split(help, "\n") {
			fields := strings.Fields(line)
			if len(fields) < 2 || !strings.HasPrefix(line, "  ") || !strings.Contains(line, " - ") {
				continue
			}
			_, ok := command.Lookup(fields[0])
			Expect(ok).To(BeTrue(), line)
			documented++
		}
		Expect(documented).To(Equal(len(command.Specs())))
	})
})
