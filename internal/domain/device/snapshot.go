package device

// Field is a single reported channel reading. Values are kept as display
// text; the gateway never interprets them.
type Field struct {
	Channel string
	Value   string
}

// Snapshot is the complete last-known state of all monitored channels, in
// the order the device reported them. Report order is preserved as a
// convenience for readable status messages, not as a contract.
type Snapshot []Field

// Clone returns a copy of the snapshot so callers cannot mutate stored state.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	c := make(Snapshot, len(s))
	copy(c, s)
	return c
}
