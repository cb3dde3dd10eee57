// Package marker parses and emits the standard three-way conflict marker
// syntax, letting the resolver pipeline operate as a stdin/stdout
// post-processor over files that already carry conflict markers.
package marker

import "strings"

const (
	leftPrefix  = "<<<<<<<"
	basePrefix  = "|||||||"
	rightSep    = "======="
	rightPrefix = ">>>>>>>"
)

// Block is one parsed conflict region.
type Block struct {
	Base, Left, Right string
	// FullMarker is the exact text of the block as it appeared in the
	// input, markers included.
	FullMarker string
}

// Parse scans text for conflict marker blocks. Blocks are returned in
// document order; the non-conflict text around them is not returned
// (each block's FullMarker lets a caller locate it in the input).
//
// The scanner is a four-state machine over lines (None → Left →
// {Base | Right} → Right → None). A block missing a ||||||| section
// has an empty Base. An unterminated block (no matching >>>>>>>
// before end of input) is discarded without error; Parse never panics
// or fails on malformed input.
func Parse(text string) []Block {
	lines := splitKeepNewlines(text)

	var blocks []Block

	state := stateNone
	var leftLines, baseLines, rightLines []string
	var rawLines []string

	reset := func() {
		state = stateNone
		leftLines, baseLines, rightLines, rawLines = nil, nil, nil, nil
	}

	for _, line := range lines {
		trimmed := strings.TrimRight(line, "\r\n")

		switch state {
		case stateNone:
			if strings.HasPrefix(trimmed, leftPrefix) {
				state = stateLeft
				rawLines = append(rawLines, line)
				continue
			}
		case stateLeft:
			switch {
			case strings.HasPrefix(trimmed, basePrefix):
				state = stateBase
				rawLines = append(rawLines, line)
			case strings.HasPrefix(trimmed, rightSep):
				state = stateRight
				rawLines = append(rawLines, line)
			default:
				leftLines = append(leftLines, trimmed)
				rawLines = append(rawLines, line)
			}
			continue
		case stateBase:
			if strings.HasPrefix(trimmed, rightSep) {
				state = stateRight
				rawLines = append(rawLines, line)
			} else {
				baseLines = append(baseLines, trimmed)
				rawLines = append(rawLines, line)
			}
			continue
		case stateRight:
			if strings.HasPrefix(trimmed, rightPrefix) {
				rawLines = append(rawLines, line)
				blocks = append(blocks, Block{
					Base:       strings.Join(baseLines, "\n"),
					Left:       strings.Join(leftLines, "\n"),
					Right:      strings.Join(rightLines, "\n"),
					FullMarker: strings.Join(rawLines, ""),
				})
				reset()
			} else {
				rightLines = append(rightLines, trimmed)
				rawLines = append(rawLines, line)
			}
			continue
		}
	}

	// Any in-progress block at EOF is unterminated; discard it silently.
	return blocks
}

type scanState int

const (
	stateNone scanState = iota
	stateLeft
	stateBase
	stateRight
)

// Emit renders a block back into marker syntax using the representative
// seven-character markers with no labels. The base section is omitted
// when b.Base is empty.
func Emit(b Block) string {
	var sb strings.Builder
	sb.WriteString(leftPrefix)
	sb.WriteByte('\n')
	writeLines(&sb, b.Left)
	if b.Base != "" {
		sb.WriteString(basePrefix)
		sb.WriteByte('\n')
		writeLines(&sb, b.Base)
	}
	sb.WriteString(rightSep)
	sb.WriteByte('\n')
	writeLines(&sb, b.Right)
	sb.WriteString(rightPrefix)
	sb.WriteByte('\n')
	return sb.String()
}

func writeLines(sb *strings.Builder, s string) {
	if s == "" {
		return
	}
	for _, l := range strings.Split(s, "\n") {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
}

// splitKeepNewlines splits text into lines, keeping each line's
// terminating "\n" (and any preceding "\r") attached, so that
// FullMarker can be reassembled byte-exactly.
func splitKeepNewlines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
