package provider

// Wire types shared by the OpenAI-compatible chat-completion providers
// (Groq, Together, and the generic adapter).

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatCompletionChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	// Text is set by text-completion style servers instead of Message.
	Text         string `json:"text"`
	FinishReason string `json:"finish_reason"`
}

type chatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Model   string                 `json:"model"`
	Choices []chatCompletionChoice `json:"choices"`
}

// firstChoiceText normalizes a chat-completion response: it prefers the
// message content and falls back to the bare text field some servers return.
func firstChoiceText(resp *chatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	if resp.Choices[0].Message.Content != "" {
		return resp.Choices[0].Message.Content
	}
	return resp.Choices[0].Text
}
