package entity

// ProviderRequest is one outbound call to the AI provider.
type ProviderRequest struct {
	Prompt string `json:"prompt"`

	// PreviousID links the call to an earlier answer so the provider can
	// apply its conversational context. Empty for an initial lookup.
	PreviousID string `json:"previous_id,omitempty"`

	WebSearch bool `json:"web_search"`
}

type ProviderReply struct {
	ID     string `json:"id"`
	Output string `json:"output"`
	Model  string `json:"model"`
}

// Turn is one message of a conversation replayed by providers without
// server-side conversation state.
type Turn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)
