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
	"strings"

	"github.com/google/go-github/v35/github"
	"github.com/pkg/errors"
)

var githubRepoURLRegex = regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?github\.com/([^/]+)/([^/\s#?]+)`)

// ParseRepositoryURL extracts owner and repository name from a GitHub URL such as
// "<https://github.com/facebook/react.git>".
func ParseRepositoryURL(raw string) (string, string, error) {
	u := strings.TrimSpace(raw)
	u = strings.TrimSuffix(strings.TrimPrefix(u, "<"), ">")

	match := githubRepoURLRegex.FindStringSubmatch(u)
	if len(match) != 3 {
		return "", "", errors.Errorf("invalid repository URL: %s", raw)
	}
	return match[1], strings.TrimSuffix(match[2], ".git"), nil
}

type Report struct {
	Name            string
	FullName        string
	Owner           string
	HTMLURL         string
	Description     string
	Language        string
	OpenIssues      int
	Forks           int
	Watchers        int
	HasWiki         bool
	HasProjects     bool
	Score           int
	Recommendations []string
}

func NewReport(repo *github.Repository) *Report {
	r := &Report{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Owner:       repo.GetOwner().GetLogin(),
		HTMLURL:     repo.GetHTMLURL(),
		Description: repo.GetDescription(),
		Language:    repo.GetLanguage(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		Forks:       repo.GetForksCount(),
		Watchers:    repo.GetWatchersCount(),
		HasWiki:     repo.GetHasWiki(),
		HasProjects: repo.GetHasProjects(),
	}
	r.Score = r.score()
	r.Recommendations = r.recommend()
	return r
}

func (r *Report) score() int {
	score := 100
	if r.Description == "" {
		score -= 10
	}
	if r.OpenIssues > 50 {
		score -= 15
	}
	if r.HasWiki {
		score += 5
	}
	if r.HasProjects {
		score += 5
	}
	if r.Forks > 10 {
		score += 10
	}
	if r.Watchers > 50 {
		score += 10
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func (r *Report) recommend() []string {
	var recs []string
	if r.Description == "" {
		recs = append(recs, "📝 Add a repository description to help users understand your project")
	}
	if !r.HasWiki && r.Forks > 5 {
		recs = append(recs, "📚 Consider enabling Wiki for better documentation")
	}
	if r.OpenIssues > 50 {
		recs = append(recs, "🐛 High number of open issues - Consider addressing them")
	}
	if !r.HasProjects {
		recs = append(recs, "📋 Enable Projects feature for better task management")
	}
	return recs
}

func (r *Report) Badge() string {
	switch {
	case r.Score >= 80:
		return "🟢"
	case r.Score >= 60:
		return "🟡"
	default:
		return "🔴"
	}
}

// Render formats the report as the markdown body of a timeline comment.
func (r *Report) Render() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "**Repository Health Check** %s\n\n", r.Badge())

	b.WriteString("**Basic Details:**\n")
	fmt.Fprintf(b, "- Name: %s\n", r.Name)
	fmt.Fprintf(b, "- Full Name: %s\n", r.FullName)
	fmt.Fprintf(b, "- Owner: %s\n", r.Owner)
	fmt.Fprintf(b, "- Description: %s\n", orDefault(r.Description, "No description provided"))
	fmt.Fprintf(b, "- Primary Language: %s\n\n", orDefault(r.Language, "Not specified"))

	b.WriteString("**Health Metrics:**\n")
	fmt.Fprintf(b, "- Repository Health Score: %d/100\n", r.Score)
	fmt.Fprintf(b, "- Open Issues: %d\n", r.OpenIssues)
	fmt.Fprintf(b, "- Forks: %d\n", r.Forks)
	fmt.Fprintf(b, "- Watchers: %d\n\n", r.Watchers)

	b.WriteString("**Recommendations:**\n")
	if len(r.Recommendations) == 0 {
		b.WriteString("No recommendations at this time.\n")
	}
	for _, rec := range r.Recommendations {
		fmt.Fprintf(b, "- %s\n", rec)
	}

	fmt.Fprintf(b, "\n[View Repository](%s)", r.HTMLURL)
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
