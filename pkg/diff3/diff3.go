package diff3

import (
	"strings"
)

// Hunks computes the coalesced hunk list for a scenario (component B).
//
// Algorithm:
//  1. Split base, left, right into lines.
//  2. Compute diff(base, left) and diff(base, right) with MyersDiff.
//  3. Convert each diff into a sequence of "chunks" — contiguous runs of
//     unchanged or changed regions relative to base. A changed chunk
//     normalizes a run of Delete/Insert ops into one replacement, the
//     normalization spec.md's algorithm calls Replaced+Deleted.
//  4. Walk the two chunk sequences in lockstep, classifying each
//     base-aligned region per the left×right action table.
//  5. Coalesce adjacent same-kind hunks (component A's only operation).
func Hunks(s MergeScenario) []Diff3Hunk {
	baseLines := splitLines(s.Base)
	leftLines := splitLines(s.Left)
	rightLines := splitLines(s.Right)

	leftChunks := buildChunks(baseLines, leftLines)
	rightChunks := buildChunks(baseLines, rightLines)

	hunks := mergeChunks(baseLines, leftChunks, rightChunks)
	return CoalesceHunks(hunks)
}

// Merge performs a whole-scenario three-way merge (component B).
//
// Non-conflict hunks contribute their lines, each followed by a
// newline. Conflict hunks are aggregated into a single top-level
// conflict by concatenating their base/left/right fields with newline
// separators (this loses per-hunk position; callers that need it use
// Hunks directly). The output always ends with a newline after the
// last emitted line.
func Merge(s MergeScenario) MergeResult {
	hunks := Hunks(s)

	var merged strings.Builder
	var baseParts, leftParts, rightParts []string
	hasConflict := false

	for _, h := range hunks {
		if h.Kind != HunkConflict {
			writeLines(&merged, h.Lines)
			continue
		}
		hasConflict = true
		if len(h.Base) > 0 {
			baseParts = append(baseParts, strings.Join(h.Base, "\n"))
		}
		leftParts = append(leftParts, strings.Join(h.Left, "\n"))
		rightParts = append(rightParts, strings.Join(h.Right, "\n"))
	}

	if !hasConflict {
		return MergeResult{Resolved: true, Text: merged.String()}
	}
	return MergeResult{
		Base:  strings.Join(baseParts, "\n"),
		Left:  strings.Join(leftParts, "\n"),
		Right: strings.Join(rightParts, "\n"),
	}
}

// ExtractConflicts returns one sub-scenario per conflict hunk in
// document order, each holding that hunk's own base/left/right lines.
// Use this instead of Merge's aggregate when per-hunk position matters.
func ExtractConflicts(s MergeScenario) []MergeScenario {
	var out []MergeScenario
	for _, h := range Hunks(s) {
		if h.Kind != HunkConflict {
			continue
		}
		out = append(out, MergeScenario{
			Base:  strings.Join(h.Base, "\n"),
			Left:  strings.Join(h.Left, "\n"),
			Right: strings.Join(h.Right, "\n"),
		})
	}
	return out
}

func writeLines(buf *strings.Builder, lines []string) {
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
}

// splitLines splits s into lines, treating only '\n' as a separator
// (a trailing '\r' stays on the line, so CRLF input round-trips). A
// trailing newline does not produce an extra empty element.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// chunk represents a contiguous region relative to the base.
type chunk struct {
	baseStart, baseEnd int      // range [baseStart, baseEnd) in base
	lines              []string // replacement lines for this region
	changed            bool     // true if this region differs from base
}

// buildChunks converts a two-way diff (base → side) into a list of
// chunks. Each chunk covers a contiguous range of base lines and
// carries the corresponding replacement lines from the side; a maximal
// run of Delete/Insert ops collapses into one changed chunk, which is
// the per-base-line Replaced/Deleted normalization spec.md's algorithm
// describes.
func buildChunks(base, side []string) []chunk {
	ops := MyersDiff(base, side)

	var chunks []chunk
	baseIdx := 0

	i := 0
	for i < len(ops) {
		op := ops[i]

		if op.Type == Equal {
			chunks = append(chunks, chunk{
				baseStart: baseIdx,
				baseEnd:   baseIdx + 1,
				lines:     []string{op.Line},
				changed:   false,
			})
			baseIdx++
			i++
			continue
		}

		// Accumulate a contiguous changed region (deletes and/or inserts).
		chunkStart := baseIdx
		var sideLines []string

		for i < len(ops) && ops[i].Type != Equal {
			if ops[i].Type == Delete {
				baseIdx++
			} else { // Insert
				sideLines = append(sideLines, ops[i].Line)
			}
			i++
		}

		chunks = append(chunks, chunk{
			baseStart: chunkStart,
			baseEnd:   baseIdx,
			lines:     sideLines,
			changed:   true,
		})
	}

	return chunks
}

// mergeChunks walks two chunk sequences (left and right) in parallel,
// aligned by base-line position, applying the left×right classification
// table at each aligned region and resyncing when one side's change
// spans multiple chunks on the other.
func mergeChunks(baseLines []string, leftChunks, rightChunks []chunk) []Diff3Hunk {
	var hunks []Diff3Hunk

	li, ri := 0, 0

	for li < len(leftChunks) || ri < len(rightChunks) {
		var lc, rc *chunk
		if li < len(leftChunks) {
			lc = &leftChunks[li]
		}
		if ri < len(rightChunks) {
			rc = &rightChunks[ri]
		}

		if lc == nil {
			hunks = append(hunks, makeOneSidedHunk(baseLines, rc, HunkRightChanged))
			ri++
			continue
		}
		if rc == nil {
			hunks = append(hunks, makeOneSidedHunk(baseLines, lc, HunkLeftChanged))
			li++
			continue
		}

		if lc.baseStart == rc.baseStart && lc.baseEnd == rc.baseEnd {
			hunks = append(hunks, classifyAligned(baseLines, lc, rc))
			li++
			ri++
			continue
		}

		// Misaligned: one side's change spans a wider base range than
		// the other's chunk at this position. Gather every chunk from
		// both sides overlapping the union region and classify the
		// region as a whole.
		regionEnd := maxInt(lc.baseEnd, rc.baseEnd)

		var leftRegion []chunk
		for li < len(leftChunks) && leftChunks[li].baseStart < regionEnd {
			leftRegion = append(leftRegion, leftChunks[li])
			if leftChunks[li].baseEnd > regionEnd {
				regionEnd = leftChunks[li].baseEnd
			}
			li++
		}
		var rightRegion []chunk
		for ri < len(rightChunks) && rightChunks[ri].baseStart < regionEnd {
			rightRegion = append(rightRegion, rightChunks[ri])
			if rightChunks[ri].baseEnd > regionEnd {
				regionEnd = rightChunks[ri].baseEnd
			}
			ri++
		}

		regionStart := minInt(leftRegion[0].baseStart, rightRegion[0].baseStart)
		baseRegion := baseLines[regionStart:regionEnd]
		leftOut := assembleRegion(leftRegion)
		rightOut := assembleRegion(rightRegion)
		leftChanged := anyChanged(leftRegion)
		rightChanged := anyChanged(rightRegion)

		hunks = append(hunks, classifyRegion(baseRegion, leftOut, rightOut, leftChanged, rightChanged))
	}

	return hunks
}

// classifyAligned applies the left×right per-line table (generalized
// to a run of lines) when both sides' chunks cover the same base
// range.
func classifyAligned(baseLines []string, lc, rc *chunk) Diff3Hunk {
	var baseRegion []string
	if lc.baseStart < lc.baseEnd {
		baseRegion = baseLines[lc.baseStart:lc.baseEnd]
	}
	return classifyRegion(baseRegion, lc.lines, rc.lines, lc.changed, rc.changed)
}

// classifyRegion implements the table from spec.md §4.B:
//
//	left \ right   Keep             Delete            Replace(r)
//	Keep           Stable(b)        RightChanged([])  RightChanged(r)
//	Delete         LeftChanged([])  (both delete)      Conflict(b,[],r)
//	Replace(l)     LeftChanged(l)   Conflict(b,l,[])   l==r ? LeftChanged(l) : Conflict(b,l,r)
//
// "Keep" is !changed; "Delete" is changed with no lines; "Replace" is
// changed with lines. Both-delete still yields a LeftChanged([]) hunk
// (invariant 4's canonical convergent form), even though it writes no
// output lines.
func classifyRegion(base, left, right []string, leftChanged, rightChanged bool) Diff3Hunk {
	switch {
	case !leftChanged && !rightChanged:
		return Diff3Hunk{Kind: HunkStable, Lines: base}
	case !leftChanged && rightChanged:
		return Diff3Hunk{Kind: HunkRightChanged, Lines: right}
	case leftChanged && !rightChanged:
		return Diff3Hunk{Kind: HunkLeftChanged, Lines: left}
	default:
		// Both changed.
		if linesEqual(left, right) {
			return Diff3Hunk{Kind: HunkLeftChanged, Lines: left}
		}
		return Diff3Hunk{Kind: HunkConflict, Base: base, Left: left, Right: right}
	}
}

func makeOneSidedHunk(baseLines []string, c *chunk, changedKind HunkKind) Diff3Hunk {
	if !c.changed {
		var base []string
		if c.baseStart < c.baseEnd {
			base = baseLines[c.baseStart:c.baseEnd]
		}
		return Diff3Hunk{Kind: HunkStable, Lines: base}
	}
	return Diff3Hunk{Kind: changedKind, Lines: c.lines}
}

func linesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assembleRegion(chunks []chunk) []string {
	var lines []string
	for _, c := range chunks {
		lines = append(lines, c.lines...)
	}
	return lines
}

func anyChanged(chunks []chunk) bool {
	for _, c := range chunks {
		if c.changed {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
