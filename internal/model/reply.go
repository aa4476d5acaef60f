package model

import "encoding/json"

// FailureKind classifies why a model call did not yield generated text.
type FailureKind string

const (
	FailureNone             FailureKind = ""
	FailureInvalidStructure FailureKind = "invalid_structure"
	FailureParse            FailureKind = "parse_error"
	FailureUnavailable      FailureKind = "unavailable"
)

// Fixed reply texts shown in place of model output when a call fails.
const (
	SentinelInvalidStructure = "Failed to get a valid response structure from the model."
	SentinelParseFailure     = "Failed to parse JSON response from the model."
	SentinelUnavailable      = "Failed to get a response from the model."
)

// Sentinel returns the fixed reply text for k, or "" for FailureNone.
func (k FailureKind) Sentinel() string {
	switch k {
	case FailureInvalidStructure:
		return SentinelInvalidStructure
	case FailureParse:
		return SentinelParseFailure
	case FailureUnavailable:
		return SentinelUnavailable
	default:
		return ""
	}
}

// Reply is the outcome of one model call.
// When Failure is FailureNone, Text is the trimmed model output. Otherwise Text holds
// the sentinel for the failure kind so it can still be displayed or rendered.
type Reply struct {
	Text    string          `json:"reply"`
	Failure FailureKind     `json:"failure,omitempty"`
	Raw     json.RawMessage `json:"raw_response,omitempty"`
	Warning string          `json:"warning,omitempty"`
}

// OK reports whether Text is genuine model output.
func (r Reply) OK() bool {
	return r.Failure == FailureNone
}

// FailedReply builds the reply for a failed call.
func FailedReply(kind FailureKind, raw json.RawMessage) Reply {
	return Reply{Text: kind.Sentinel(), Failure: kind, Raw: raw}
}
