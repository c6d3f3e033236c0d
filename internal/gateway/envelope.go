package gateway

import (
	"bytes"
	"encoding/json"
)

// Envelope is the normalized response shape every backend reply is folded
// into, whether the server answered with a wrapped payload or a bare one.
type Envelope struct {
	Success bool
	Message string
	Data    json.RawMessage
	Errors  map[string][]string
}

// envelopeWire is the strict decode target. Pointer fields keep "key absent"
// distinguishable from zero values so defaults can be applied afterwards.
type envelopeWire struct {
	Success *bool               `json:"success"`
	Message *string             `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

var envelopeKeys = []string{"data", "success", "message", "errors"}

// Normalize folds a raw response body into an Envelope. The decode is a
// tagged union: first a strict envelope attempt, then a bare-payload
// fallback. A JSON object counts as an envelope when it carries at least one
// of the keys data/success/message/errors. That key-presence rule is a
// compatibility shim for the backend's mixed reply styles, not a type-safety
// mechanism; it must be kept as-is.
func Normalize(raw []byte) Envelope {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Envelope{Success: true, Message: ""}
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err == nil && hasEnvelopeKey(keys) {
		var wire envelopeWire
		if err := json.Unmarshal(raw, &wire); err == nil {
			env := Envelope{
				Success: true,
				Message: "",
				Data:    wire.Data,
				Errors:  wire.Errors,
			}
			if wire.Success != nil {
				env.Success = *wire.Success
			}
			if wire.Message != nil {
				env.Message = *wire.Message
			}
			return env
		}
	}

	// Bukan envelope: bungkus seluruh payload sebagai data
	return Envelope{Success: true, Message: "", Data: raw}
}

func hasEnvelopeKey(keys map[string]json.RawMessage) bool {
	for _, k := range envelopeKeys {
		if _, ok := keys[k]; ok {
			return true
		}
	}
	return false
}
