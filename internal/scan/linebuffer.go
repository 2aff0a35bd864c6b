package scan

import "strings"

// lineBuffer reassembles complete lines from a chunked text stream. A
// line may arrive split across two reads; the unterminated tail of each
// chunk is carried over and prepended to the next one.
type lineBuffer struct {
	leftover string
}

// Feed returns the complete lines ending inside chunk. The trailing
// partial line, if any, is held back until the next Feed or Flush.
func (b *lineBuffer) Feed(chunk string) []string {
	parts := strings.Split(b.leftover+chunk, "\n")
	b.leftover = parts[len(parts)-1]
	return parts[:len(parts)-1]
}

// Flush hands back whatever tail is still buffered once the stream ends.
func (b *lineBuffer) Flush() string {
	tail := b.leftover
	b.leftover = ""
	return tail
}
