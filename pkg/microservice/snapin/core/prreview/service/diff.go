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
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hunkHeaderRegex = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)
	issueIDRegex    = regexp.MustCompile(`ISS-\d+`)
)

const noNewlineMarker = `\ No newline at end of file`

// AnnotateDiff prefixes every context and added line of a unified diff with its line number
// in the new file, e.g. "12|+foo". File headers, hunk headers and removed lines are kept as is.
func AnnotateDiff(diff string) string {
	lines := strings.Split(diff, "\n")
	lineNumber := 0

	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "diff --git"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "@@"):
			if m := hunkHeaderRegex.FindStringSubmatch(line); m != nil {
				start, _ := strconv.Atoi(m[1])
				lineNumber = start - 1
			}
		case strings.HasPrefix(line, noNewlineMarker):
			lines[i] = fmt.Sprintf("%d|%s", lineNumber, line)
		case strings.HasPrefix(line, "-"):
		default:
			lineNumber++
			lines[i] = fmt.Sprintf("%d|%s", lineNumber, line)
		}
	}

	return strings.Join(lines, "\n")
}

// ExtractIssueID returns the first ISS-<n> reference in text.
func ExtractIssueID(text string) string {
	return issueIDRegex.FindString(text)
}
