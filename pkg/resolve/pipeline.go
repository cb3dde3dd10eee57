package resolve

import (
	"strings"

	"github.com/odvcencio/mergeengine/pkg/diff3"
	"github.com/odvcencio/mergeengine/pkg/marker"
	"github.com/odvcencio/mergeengine/pkg/trace"
)

// ResolveConflict runs the fixed D→E→F cascade over a single conflict
// region (component G, single-region operation). lang is Unknown to
// skip the structural stage. A nil logger is a no-op; the pipeline's
// returned value never depends on whether one was supplied.
func ResolveConflict(base, left, right string, lang Language, cfg PipelineConfig, log trace.Logger) ConflictRecord {
	cfg = withDefaults(cfg)
	rec := ConflictRecord{Base: base, Left: left, Right: right}

	if r := runPatternRules(base, left, right, cfg); r != nil {
		rec.Resolution = r
		rec.StrategiesTried = append(rec.StrategiesTried, PatternRule)
		trace.Logf(log, "pattern rule resolved conflict: strategy=%s confidence=%.2f", r.Strategy, r.Confidence)
		return rec
	}
	rec.StrategiesTried = append(rec.StrategiesTried, PatternRule)

	if lang != Unknown {
		tr := trace.Start(log, "structural")
		r := resolveStructural(base, left, right, lang, cfg)
		tr.Done()
		rec.StrategiesTried = append(rec.StrategiesTried, Structural)
		if r != nil {
			rec.Resolution = r
			return rec
		}
	}

	tr := trace.Start(log, "search")
	r, candidates := resolveSearch(base, left, right, cfg)
	tr.Done()
	rec.StrategiesTried = append(rec.StrategiesTried, SearchBased)
	rec.Candidates = append(rec.Candidates, candidates...)
	if r != nil {
		rec.Resolution = r
	}

	return rec
}

// ResolveFile runs the diff3 core over (base, left, right), resolves
// every conflict hunk through ResolveConflict, and splices the results
// back into the whole-file output (component G, whole-file operation).
// Unresolved hunks are emitted as standard conflict marker blocks.
func ResolveFile(base, left, right string, lang Language, cfg PipelineConfig, log trace.Logger) FileResolution {
	hunks := diff3.Hunks(diff3.NewScenario(base, left, right))

	var out strings.Builder
	var conflicts []ConflictRecord
	allResolved := true

	for _, h := range hunks {
		switch h.Kind {
		case diff3.HunkConflict:
			hb := strings.Join(h.Base, "\n")
			hl := strings.Join(h.Left, "\n")
			hr := strings.Join(h.Right, "\n")

			rec := ResolveConflict(hb, hl, hr, lang, cfg, log)
			conflicts = append(conflicts, rec)

			if rec.Resolution != nil {
				out.WriteString(rec.Resolution.Content)
				out.WriteByte('\n')
			} else {
				allResolved = false
				out.WriteString(marker.Emit(marker.Block{Base: hb, Left: hl, Right: hr}))
			}
		default:
			for _, l := range h.Lines {
				out.WriteString(l)
				out.WriteByte('\n')
			}
		}
	}

	return FileResolution{
		MergedContent: out.String(),
		Conflicts:     conflicts,
		AllResolved:   allResolved,
	}
}

// ResolveMarkedText runs the pipeline over text that already contains
// conflict marker blocks (component G via component C): every parsed
// marker region is resolved the same way a diff3 conflict hunk is, and
// spliced back in place. Non-conflict text passes through untouched.
func ResolveMarkedText(text string, lang Language, cfg PipelineConfig, log trace.Logger) FileResolution {
	blocks := marker.Parse(text)
	if len(blocks) == 0 {
		return FileResolution{MergedContent: text, AllResolved: true}
	}

	var out strings.Builder
	var conflicts []ConflictRecord
	allResolved := true
	remaining := text

	for _, b := range blocks {
		idx := strings.Index(remaining, b.FullMarker)
		if idx < 0 {
			continue // defensive: should not happen given Parse's own output
		}
		out.WriteString(remaining[:idx])

		rec := ResolveConflict(b.Base, b.Left, b.Right, lang, cfg, log)
		conflicts = append(conflicts, rec)

		if rec.Resolution != nil {
			out.WriteString(rec.Resolution.Content)
			out.WriteByte('\n')
		} else {
			allResolved = false
			out.WriteString(marker.Emit(b))
		}

		remaining = remaining[idx+len(b.FullMarker):]
	}
	out.WriteString(remaining)

	return FileResolution{
		MergedContent: out.String(),
		Conflicts:     conflicts,
		AllResolved:   allResolved,
	}
}
