// File: internal/services/chat/types.go
package chat

// Turn is one prior conversation turn as supplied by the caller, before
// role normalization.
type Turn struct {
	Role    string
	Content string
}

// Request is one inbound chat exchange, already validated at the HTTP
// boundary. An empty ChatID means "start a new conversation"; a non-empty
// Screenshot selects the vision path.
type Request struct {
	Prompt     string
	UserID     string
	ChatID     string
	Screenshot string
	History    []Turn
}

// Result is the caller-visible outcome of an exchange.
type Result struct {
	Response string
	ChatID   string
}
