package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"device_alert_gateway/internal/domain/device"
)

var errStatusNotObject = errors.New("status must be a JSON object")

// decodeSnapshot parses a JSON object of channel/value pairs into a
// snapshot, preserving the order the device reported the keys in. Values
// are rendered to display text; the gateway never interprets them.
func decodeSnapshot(raw json.RawMessage) (device.Snapshot, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode status object: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, errStatusNotObject
	}

	var snapshot device.Snapshot
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode status key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errStatusNotObject
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("decode status value for %q: %w", key, err)
		}
		snapshot = append(snapshot, device.Field{Channel: key, Value: renderValue(value)})
	}

	return snapshot, nil
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
