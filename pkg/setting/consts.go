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

import "time"

// envs
const (
	// common
	ENVMode     = "MODE"
	ENVLogLevel = "LOG_LEVEL"
	ENVLogFile  = "LOG_FILE"

	ENVListenAddr     = "LISTEN_ADDR"
	ENVRequestTimeout = "REQUEST_TIMEOUT"

	// github
	ENVGithubAPIBase = "GITHUB_API_BASE"

	// llm
	ENVOpenAIBaseURL           = "OPENAI_BASE_URL"
	ENVOpenAIModel             = "OPENAI_MODEL"
	ENVReviewModel             = "REVIEW_MODEL"
	ENVSummaryMaxTokens        = "SUMMARY_MAX_TOKENS"
	ENVSummaryPromptTokenLimit = "SUMMARY_PROMPT_TOKEN_LIMIT"
	ENVLLMCacheType            = "LLM_CACHE_TYPE"

	// redis
	ENVRedisHost          = "REDIS_HOST"
	ENVRedisPort          = "REDIS_PORT"
	ENVRedisUserName      = "REDIS_USERNAME"
	ENVRedisPassword      = "REDIS_PASSWORD"
	ENVRedisCommonCacheDB = "REDIS_COMMON_CACHE_DB"

	DebugMode   = "debug"
	ReleaseMode = "release"
	TestMode    = "test"
)

const (
	ProductName = "snapin"
	RequestID   = "requestID"
)

// defaults
const (
	DefaultListenAddr     = ":8080"
	DefaultGithubAPIBase  = "https://api.github.com"
	DefaultRequestTimeout = 30 * time.Second

	DefaultSummaryModel     = "gpt-3.5-turbo"
	DefaultReviewModel      = "gpt-4-turbo-preview"
	DefaultSummaryMaxTokens = 150
)

// keyrings and secrets carried by function events
const (
	SecretServiceAccountToken = "service_account_token"

	KeyringGithubAPIKey     = "github_api_key"
	KeyringOpenAIAPIKey     = "openai_api_key"
	KeyringGithubConnection = "github_connection"
	KeyringGithub           = "github"
	KeyringOpenAI           = "openai"
)

// github
const (
	GithubAcceptHeader    = "application/vnd.github.v3+json"
	GithubTokenAuthScheme = "token"
	GithubDefaultRef      = "main"
)

// timeline
const (
	TimelineEntryTypeComment = "timeline_comment"
	TimelineBodyTypeText     = "text"

	TimelineVisibilityExternal = "external"
	TimelineVisibilityInternal = "internal"

	WorkTypeIssue = "issue"
)

// workflow command replies
const (
	WorkflowResultPreamble   = "Command Result:"
	WorkflowInvalidInputMsg  = "Invalid input format. Use '/workflow help' to see usage instructions."
	WorkflowInvalidTokenMsg  = "Error: Invalid or expired GitHub token"
	WorkflowExecuteErrPrefix = "Error executing command: "
	WorkflowSummaryFlag      = "--summary"
	WorkflowHelpCommand      = "help"

	SummarySystemPrompt = "You are a helpful assistant that summarizes text."
	SummaryUserPrompt   = "Please summarize the following content in 3 sentences:\n%s"
)
