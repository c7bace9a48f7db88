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

package errors

var (
	ErrInternalError = NewHTTPError(500, "Internal Error")

	//-----------------------------------------------------------------------------------------------
	// Function APIs Range: 6000 - 6019
	//-----------------------------------------------------------------------------------------------

	ErrFunctionNotFound = NewHTTPError(404, "function not found")
	ErrInvalidEvents    = NewHTTPError(6000, "invalid event batch")
	ErrRunFunction      = NewHTTPError(6001, "failed to run function")
)
