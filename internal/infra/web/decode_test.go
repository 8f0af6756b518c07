package web

import (
	"encoding/json"
	"testing"

	"device_alert_gateway/internal/domain/device"

	"github.com/stretchr/testify/require"
)

// TestDecodeSnapshotPreservesReportOrder verifies channels come out in the
// order the device sent them, with values rendered as display text.
func TestDecodeSnapshotPreservesReportOrder(t *testing.T) {
	t.Parallel()

	raw := json.RawMessage(`{"D2":"HIGH","A0":3.5,"D1":true,"D3":null}`)
	snapshot, err := decodeSnapshot(raw)
	require.NoError(t, err)

	require.Equal(t, device.Snapshot{
		{Channel: "D2", Value: "HIGH"},
		{Channel: "A0", Value: "3.5"},
		{Channel: "D1", Value: "true"},
		{Channel: "D3", Value: "null"},
	}, snapshot)
}

// TestDecodeSnapshotRejectsNonObjects verifies arrays and scalars fail.
func TestDecodeSnapshotRejectsNonObjects(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`[1,2]`, `"on"`, `17`} {
		_, err := decodeSnapshot(json.RawMessage(raw))
		require.Errorf(t, err, "raw=%s", raw)
	}
}
