package model

// RelayEvent is a transient unit of relay work: one inbound message plus its
// thread context. It is processed once, synchronously, and never persisted.
type RelayEvent struct {
	ChannelID string
	ChannelIM bool   // true when the message arrived in a direct message
	UserID    string
	BotID     string // non-empty when the sender is a bot
	Timestamp string
	ThreadTS  string // parent thread timestamp; empty for top-level messages
	Text      string
}

// RelayOutcome describes how a relay attempt ended.
type RelayOutcome string

const (
	// RelayIgnored means the message was not eligible (top-level, sent by a
	// bot, or carrying no case token). This is the common case.
	RelayIgnored RelayOutcome = "ignored"
	// RelayNoAnchor means a token was found but no counterpart anchor
	// message carrying the same token could be located.
	RelayNoAnchor RelayOutcome = "no-anchor-found"
	// RelayTransportError means a gateway call failed; the attempt was
	// abandoned without retry.
	RelayTransportError RelayOutcome = "transport-error"
	// RelayDelivered means the message was re-posted into the counterpart
	// thread.
	RelayDelivered RelayOutcome = "relayed"
)

// DecisionOutcome describes how a reviewer decision ended.
type DecisionOutcome string

const (
	DecisionRecorded       DecisionOutcome = "recorded"
	DecisionAlreadyDecided DecisionOutcome = "already-decided"
	DecisionInvalid        DecisionOutcome = "invalid"
	DecisionAttempted      DecisionOutcome = "attempted" // at least one notification failed
)
