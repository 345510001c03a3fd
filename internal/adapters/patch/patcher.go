// Package patch computes and applies line-granularity text patches.
package patch

import (
	"strings"

	"github.com/ryanvolz/radioconda/internal/core/domain"
	"github.com/sergi/go-diff/diffmatchpatch"
	"go.trai.ch/zerr"
)

// Patcher implements ports.Patcher using diff-match-patch.
type Patcher struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// New creates a new Patcher.
func New() *Patcher {
	return &Patcher{dmp: diffmatchpatch.New()}
}

// Diff returns the serialized patch turning original into updated. Lines are
// diffed as whole units, so hunks never split a line.
func (p *Patcher) Diff(original, updated string) (string, error) {
	var t lineTable
	a := t.encode(original)
	b := t.encode(updated)

	diffs := p.dmp.DiffMainRunes(a, b, false)
	for i := range diffs {
		diffs[i].Text = t.decode(diffs[i].Text)
	}

	patches := p.dmp.PatchMake(original, diffs)
	return p.dmp.PatchToText(patches), nil
}

// lineTable maps each distinct line, terminator included, to one rune.
type lineTable struct {
	lines []string
	index map[string]rune
}

// Runes skip the surrogate block so every index survives a string round trip.
const (
	surrogateMin  = 0xD800
	surrogateSpan = 0x800
)

func lineRune(i int) rune {
	r := rune(i + 1)
	if r >= surrogateMin {
		r += surrogateSpan
	}
	return r
}

func lineIndex(r rune) int {
	if r >= surrogateMin+surrogateSpan {
		r -= surrogateSpan
	}
	return int(r) - 1
}

func (t *lineTable) encode(text string) []rune {
	if t.index == nil {
		t.index = make(map[string]rune)
	}

	var out []rune
	for len(text) > 0 {
		end := strings.IndexByte(text, '\n') + 1
		if end == 0 {
			end = len(text)
		}
		line := text[:end]
		text = text[end:]

		r, ok := t.index[line]
		if !ok {
			r = lineRune(len(t.lines))
			t.index[line] = r
			t.lines = append(t.lines, line)
		}
		out = append(out, r)
	}
	return out
}

func (t *lineTable) decode(runes string) string {
	var b strings.Builder
	for _, r := range runes {
		b.WriteString(t.lines[lineIndex(r)])
	}
	return b.String()
}

// Apply applies a serialized patch to target. It fails when any hunk does not apply.
func (p *Patcher) Apply(patch, target string) (string, error) {
	patches, err := p.dmp.PatchFromText(patch)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPatchParseFailed.Error())
	}

	out, applied := p.dmp.PatchApply(patches, target)
	failed := 0
	for _, ok := range applied {
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		err := zerr.With(domain.ErrTemplatePatchConflict, "failed_hunks", failed)
		return "", zerr.With(err, "total_hunks", len(applied))
	}
	return out, nil
}
