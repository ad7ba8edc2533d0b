package types

// ChatRequest is the free-text query sent to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the answer and which source produced it:
// "knowledge" for the rule-based responder, "ai" for a live provider call.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}

// ChatStreamEvent is one SSE payload on the streaming chat endpoint. Delta
// events carry text fragments; the final done event names the source.
type ChatStreamEvent struct {
	Delta  string `json:"delta,omitempty"`
	Source string `json:"source,omitempty"`
	Error  string `json:"error,omitempty"`
}
