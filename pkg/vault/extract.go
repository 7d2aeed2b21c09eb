package vault

import (
	"bufio"
	"bytes"
	"strings"
)

// blockFence marks the opening of an embedded timekeep block.
const blockFence = "```timekeep"

// extractBlocks returns the raw JSON payload of every timekeep fenced code
// block in the document, in order of appearance. An unterminated final
// fence still yields its accumulated payload; malformed JSON is the
// parser's problem, not the extractor's.
func extractBlocks(doc []byte) []string {
	var blocks []string
	var current strings.Builder
	inBlock := false

	scanner := bufio.NewScanner(bytes.NewReader(doc))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if !inBlock {
			if trimmed == blockFence || strings.HasPrefix(trimmed, blockFence+" ") {
				inBlock = true
				current.Reset()
			}
			continue
		}
		if trimmed == "```" {
			inBlock = false
			blocks = append(blocks, current.String())
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	if inBlock && current.Len() > 0 {
		blocks = append(blocks, current.String())
	}
	return blocks
}
