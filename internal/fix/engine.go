// Package fix applies the text edits attached to diagnostics back to the
// value sheets they were reported on.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"cssvalue/internal/diag"
	"cssvalue/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyOptions configures how fixes are applied.
type ApplyOptions struct {
	Write bool // записать файлы на диск; иначе только FileChange.Content
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID          string
	Title       string
	Code        diag.Code
	Message     string
	PrimaryPath string
	EditCount   int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
	Content   []byte // содержимое после правок
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	id    string
	order int
}

// Apply collects the fixes of diagnostics and applies every one that does
// not overlap an earlier fix in the same file. All edit spans refer to the
// files as loaded in fs.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, errors.New("fix: FileSet is nil")
	}

	candidates, skips := gatherCandidates(diagnostics)
	result.Skipped = append(result.Skipped, skips...)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	accepted := make(map[source.FileID][]diag.FixEdit)
	for _, cand := range candidates {
		if reason := checkCandidate(fs, accepted, cand); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{ID: cand.id, Title: cand.fix.Title, Reason: reason})
			continue
		}
		for _, e := range cand.fix.Edits {
			accepted[e.Span.File] = append(accepted[e.Span.File], e)
		}
		result.Applied = append(result.Applied, AppliedFix{
			ID:          cand.id,
			Title:       cand.fix.Title,
			Code:        cand.diag.Code,
			Message:     cand.diag.Message,
			PrimaryPath: formatFilePath(fs, cand.diag.Primary.File),
			EditCount:   len(cand.fix.Edits),
		})
	}
	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	changes, err := applyEdits(fs, accepted, opts)
	result.FileChanges = changes
	return result, err
}

func gatherCandidates(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var cands []candidate
	var skips []SkippedFix
	order := 0
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			id := fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
			if len(f.Edits) == 0 {
				skips = append(skips, SkippedFix{ID: id, Title: f.Title, Reason: "fix has no edits"})
				continue
			}
			cands = append(cands, candidate{diag: d, fix: f, id: id, order: order})
			order++
		}
	}
	return cands, skips
}

// sortCandidates orders fixes by file, primary span and insertion order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		di, dj := candidates[i].diag, candidates[j].diag
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		return candidates[i].order < candidates[j].order
	})
}

func checkCandidate(fs *source.FileSet, accepted map[source.FileID][]diag.FixEdit, cand candidate) string {
	for _, e := range cand.fix.Edits {
		file := fs.Get(e.Span.File)
		switch {
		case file == nil:
			return "unknown file"
		case file.Flags&source.FileVirtual != 0:
			return "target file is virtual"
		case file.Flags&(source.FileHadBOM|source.FileNormalizedCRLF|source.FileNormalizedNFC) != 0:
			// запись нормализованного буфера изменила бы весь файл
			return "file content was normalized on load"
		case int(e.Span.End) > len(file.Content) || e.Span.End < e.Span.Start:
			return "edit span out of range"
		}
		for _, prev := range accepted[e.Span.File] {
			if overlaps(prev.Span, e.Span) {
				return fmt.Sprintf("conflicts with a previous fix in %s", formatFilePath(fs, e.Span.File))
			}
		}
	}
	for i, a := range cand.fix.Edits {
		for _, b := range cand.fix.Edits[i+1:] {
			if a.Span.File == b.Span.File && overlaps(a.Span, b.Span) {
				return "fix has overlapping edits"
			}
		}
	}
	return ""
}

// overlaps reports whether two edits touch the same text. Two insertions at
// the same offset overlap too: their order would be ambiguous.
func overlaps(a, b source.Span) bool {
	if a.Empty() && b.Empty() {
		return a.Start == b.Start
	}
	if a.Empty() {
		return a.Start > b.Start && a.Start < b.End
	}
	if b.Empty() {
		return b.Start > a.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

func applyEdits(fs *source.FileSet, accepted map[source.FileID][]diag.FixEdit, opts ApplyOptions) ([]FileChange, error) {
	ids := make([]source.FileID, 0, len(accepted))
	for id := range accepted {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	changes := make([]FileChange, 0, len(ids))
	for _, id := range ids {
		file := fs.Get(id)
		edits := append([]diag.FixEdit(nil), accepted[id]...)
		// с конца, чтобы смещения оставались валидными
		sort.SliceStable(edits, func(i, j int) bool { return edits[i].Span.Start > edits[j].Span.Start })

		buf := append([]byte(nil), file.Content...)
		for _, e := range edits {
			tail := append([]byte(e.NewText), buf[e.Span.End:]...)
			buf = append(buf[:e.Span.Start], tail...)
		}

		if opts.Write {
			mode := os.FileMode(0o644)
			if info, err := os.Stat(file.Path); err == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(file.Path, buf, mode); err != nil {
				return changes, fmt.Errorf("write %s: %w", file.Path, err)
			}
		}
		changes = append(changes, FileChange{
			Path:      formatFilePath(fs, id),
			EditCount: len(edits),
			Content:   buf,
		})
	}
	return changes, nil
}

func formatFilePath(fs *source.FileSet, id source.FileID) string {
	file := fs.Get(id)
	if file == nil {
		return ""
	}
	return file.FormatPath("relative", fs.BaseDir())
}
