// Package message renders outbound notification text. All functions are
// pure: the same input always yields byte-identical output.
package message

import (
	"fmt"
	"strings"
	"time"

	"device_alert_gateway/internal/domain/device"
)

// TimeLayout is how receipt timestamps appear in outbound messages.
const TimeLayout = "2006-01-02 15:04:05"

const (
	snapshotHeader    = "📟 目前設備狀態："
	snapshotEmptyText = "目前沒有任何設備狀態資料。"
)

// Alert renders the broadcast text for a triggered channel.
func Alert(channel, state string, receivedAt time.Time) string {
	return fmt.Sprintf("⚠️ 偵測器觸發！\n設備：%s\n狀態：%s\n🕒 時間：%s",
		channel, state, receivedAt.Format(TimeLayout))
}

// StatusSnapshot renders the last-known device state, one line per channel
// in report order, or a fixed no-data message for an empty snapshot.
func StatusSnapshot(snapshot device.Snapshot) string {
	if len(snapshot) == 0 {
		return snapshotEmptyText
	}

	var b strings.Builder
	b.WriteString(snapshotHeader)
	for _, field := range snapshot {
		b.WriteString("\n")
		b.WriteString(field.Channel)
		b.WriteString(": ")
		b.WriteString(field.Value)
	}
	return b.String()
}
