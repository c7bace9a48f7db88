package llm

// ParamOption is a function that configures a CallOptions.
type ParamOption func(*ParamOptions)

// ParamOptions is a set of options.
type ParamOptions struct {
	// Model is the model to use.
	Model string `json:"model"`
	// SystemPrompt is sent as a system message ahead of the prompt when set.
	SystemPrompt string `json:"system_prompt"`
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int `json:"max_tokens"`
	// Temperature is the temperature for sampling, between 0 and 1.
	Temperature float32 `json:"temperature"`
	// JSONResponse asks the model to answer with a single JSON object.
	JSONResponse bool `json:"json_response"`
}

func WithModel(model string) ParamOption {
	return func(o *ParamOptions) {
		o.Model = model
	}
}

func WithSystemPrompt(prompt string) ParamOption {
	return func(o *ParamOptions) {
		o.SystemPrompt = prompt
	}
}

func WithMaxTokens(maxTokens int) ParamOption {
	return func(o *ParamOptions) {
		o.MaxTokens = maxTokens
	}
}

func WithTemperature(temperature float32) ParamOption {
	return func(o *ParamOptions) {
		o.Temperature = temperature
	}
}

func WithJSONResponse() ParamOption {
	return func(o *ParamOptions) {
		o.JSONResponse = true
	}
}
