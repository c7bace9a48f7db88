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
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/koderover/snapin/pkg/setting"
)

// Parse turns the raw parameter string of a /workflow invocation into a Command.
// The --summary flag may appear anywhere and is not counted as a positional token.
// Tokens beyond the ones a command needs are ignored.
func Parse(input string) (Command, error) {
	tokens := strings.Fields(input)
	summary := lo.Contains(tokens, setting.WorkflowSummaryFlag)
	args := lo.Without(tokens, setting.WorkflowSummaryFlag)

	if len(args) == 0 || args[0] == setting.WorkflowHelpCommand {
		return Command{}, ErrHelpRequested
	}

	spec, ok := Lookup(args[0])
	if !ok {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", args[0])
	}

	required := 3 + len(spec.Params)
	if len(args) < required {
		return Command{}, errors.Wrapf(ErrMalformedInput, "usage: %s", spec.Usage())
	}

	params := map[string]string{
		ParamRepo:  args[1],
		ParamOwner: args[2],
	}
	for i, p := range spec.Params {
		params[p] = args[3+i]
	}

	return Command{
		name:    spec.Name,
		params:  params,
		summary: summary,
	}, nil
}
