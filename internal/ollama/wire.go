package ollama

// Wire types (i.e. types that go across a boundary)
// Whatever you need to define to send a request to the generation API

type Request struct {
	Model   string   `json:"model"`
	Prompt  string   `json:"prompt"`
	Stream  bool     `json:"stream"`
	Options *Options `json:"options,omitempty"`
}

// Options are the generation parameters accepted by /api/generate. The
// values this program sends are fixed constants, not user input.
type Options struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	MaxTokens   int     `json:"max_tokens"`
}

type GenerateResponse struct {
	Response string `json:"response"`
}

type TagsResponse struct {
	Models []Model `json:"models"`
}

type Model struct {
	Name       string `json:"name"`
	ModifiedAt string `json:"modified_at"`
	Size       int64  `json:"size"`
	Digest     string `json:"digest"`
}
