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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/koderover/snapin/pkg/microservice/snapin/core/function/service"
	"github.com/koderover/snapin/pkg/tool/log"
	"github.com/koderover/snapin/pkg/types"
)

var (
	fixturePath  string
	functionName string
)

func init() {
	runCmd.Flags().StringVar(&fixturePath, "fixture-path", "", "JSON or YAML file holding an array of events")
	runCmd.Flags().StringVar(&functionName, "function-name", "", "name of the function to run")
	_ = runCmd.MarkFlagRequired("fixture-path")
	_ = runCmd.MarkFlagRequired("function-name")

	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run a function once over a fixture",
	Long:  "run feeds the events of a fixture file to one function and prints the batch report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := loadFixture(fixturePath)
		if err != nil {
			return err
		}

		report, err := service.DefaultRegistry().Run(context.Background(), functionName, events, log.SugaredLogger())
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return reportError(report)
	},
}

func loadFixture(path string) ([]*types.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fixture %s", path)
	}

	var events []*types.Event
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, errors.Wrapf(err, "fixture %s is not an event array", path)
	}
	return events, nil
}

func reportError(report *service.Report) error {
	if report.Failed == 0 {
		return nil
	}

	errList := new(multierror.Error)
	for _, e := range report.Errors {
		errList = multierror.Append(errList, errors.Errorf("event %d: %s", e.Index, e.Error))
	}
	return errors.Wrapf(errList, "%d of %d events failed", report.Failed, report.Processed)
}
