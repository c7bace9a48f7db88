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
	"github.com/pkg/errors"
)

var (
	// ErrHelpRequested is returned for empty input and for "help".
	ErrHelpRequested = errors.New("help requested")
	// ErrUnknownCommand is returned when the command name is not in the table.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMalformedInput is returned when repo/owner or a required parameter is missing.
	ErrMalformedInput = errors.New("malformed input")
)
