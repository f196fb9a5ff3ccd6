// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	"github.com/cybrota/arbor/trees"
	"github.com/mattn/go-shellwords"
)

type Verb string

const (
	VerbInsert Verb = "insert"
	VerbDelete Verb = "delete"
	VerbSearch Verb = "search"
	VerbRotate Verb = "rotate"
	VerbFlip   Verb = "flip"
	VerbClear  Verb = "clear"
)

var (
	ErrParse       = merry.New("invalid operation")
	ErrUnsupported = merry.New("operation not supported by this tree")
)

// Op is one parsed script operation
type Op struct {
	Verb Verb
	Args []int
	Line int    // 1-based source line, 0 when unknown
	Text string // source text of the op
}

func (op Op) String() string {
	if op.Text != "" {
		return op.Text
	}
	parts := []string{string(op.Verb)}
	for _, a := range op.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, " ")
}

// Mutates reports whether applying op may change the tree
func (op Op) Mutates() bool {
	h, ok := opHandlers[op.Verb]
	return ok && h.mutates
}

// OpResult describes what an applied op did
type OpResult struct {
	Op      Op
	Changed bool
	Found   bool
	Path    []int
	Message string
}

type opHandler struct {
	minArgs int
	maxArgs int // -1 for unbounded
	mutates bool
	apply   func(t trees.Tree, op Op) (OpResult, error)
}

var opHandlers map[Verb]opHandler

func init() {
	opHandlers = map[Verb]opHandler{
		VerbInsert: {minArgs: 1, maxArgs: -1, mutates: true, apply: applyInsert},
		VerbDelete: {minArgs: 1, maxArgs: -1, mutates: true, apply: applyDelete},
		VerbSearch: {minArgs: 1, maxArgs: 1, apply: applySearch},
		VerbRotate: {minArgs: 2, maxArgs: 2, mutates: true, apply: applyRotate},
		VerbFlip:   {minArgs: 1, maxArgs: 1, mutates: true, apply: applyFlip},
		VerbClear:  {minArgs: 0, maxArgs: 0, mutates: true, apply: applyClear},
	}
}

var verbAliases = map[string]Verb{
	"add":    VerbInsert,
	"ins":    VerbInsert,
	"del":    VerbDelete,
	"remove": VerbDelete,
	"rm":     VerbDelete,
	"find":   VerbSearch,
	"rot":    VerbRotate,
	"color":  VerbFlip,
	"colour": VerbFlip,
	"reset":  VerbClear,
}

func parseVerb(word string) (Verb, bool) {
	word = strings.ToLower(word)
	if v, ok := verbAliases[word]; ok {
		return v, true
	}
	if _, ok := opHandlers[Verb(word)]; ok {
		return Verb(word), true
	}
	return "", false
}

// ParseOps parses a script. Ops are separated by new lines or ';' and '#'
// starts a comment that runs to the end of the line.
func ParseOps(src string) ([]Op, error) {
	return parseOpsFrom(strings.Split(src, "\n"), 1)
}

func parseOpsFrom(lines []string, firstLine int) ([]Op, error) {
	var ops []Op
	for i, line := range lines {
		lineNo := firstLine + i
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = line[:idx]
		}
		for _, piece := range strings.Split(line, ";") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			op, err := parseOp(piece)
			if err != nil {
				return nil, merry.WithValue(err, "line", lineNo)
			}
			op.Line = lineNo
			ops = append(ops, op)
		}
	}
	return ops, nil
}

// parseOp parses a single op such as "insert 5 3 8"
func parseOp(text string) (Op, error) {
	words, err := shellwords.Parse(text)
	if err != nil {
		return Op{}, ErrParse.Here().WithCause(err).WithValue("op", text).Appendf("tokenize %q", text)
	}
	if len(words) == 0 {
		return Op{}, ErrParse.Here().WithValue("op", text).Append("empty operation")
	}

	verb, ok := parseVerb(words[0])
	if !ok {
		return Op{}, ErrParse.Here().WithValue("op", text).Appendf("unknown verb %q", words[0])
	}
	h := opHandlers[verb]

	// Allow "insert 1,2,3" as well as "insert 1 2 3"
	var fields []string
	for _, w := range words[1:] {
		for _, f := range strings.Split(w, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}

	if len(fields) < h.minArgs || (h.maxArgs >= 0 && len(fields) > h.maxArgs) {
		return Op{}, ErrParse.Here().WithValue("op", text).Appendf("%s takes %s", verb, arityText(h))
	}

	args := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Op{}, ErrParse.Here().WithCause(err).WithValue("op", text).Appendf("%q is not an integer", f)
		}
		args = append(args, n)
	}
	return Op{Verb: verb, Args: args, Text: text}, nil
}

func arityText(h opHandler) string {
	switch {
	case h.maxArgs == 0:
		return "no values"
	case h.maxArgs < 0:
		return fmt.Sprintf("at least %d value(s)", h.minArgs)
	case h.minArgs == h.maxArgs:
		return fmt.Sprintf("exactly %d value(s)", h.minArgs)
	}
	return fmt.Sprintf("%d to %d values", h.minArgs, h.maxArgs)
}

// OpLine returns the script line attached to a parse error, if any
func OpLine(err error) (int, bool) {
	n, ok := merry.Value(err, "line").(int)
	return n, ok
}

// ApplyOp runs op against t. Engine no-ops are not errors; only ops the
// engine kind cannot perform at all fail, with ErrUnsupported.
func ApplyOp(t trees.Tree, op Op) (OpResult, error) {
	h, ok := opHandlers[op.Verb]
	if !ok {
		return OpResult{Op: op}, ErrParse.Here().WithValue("op", op.String()).Appendf("unknown verb %q", op.Verb)
	}
	if len(op.Args) < h.minArgs || (h.maxArgs >= 0 && len(op.Args) > h.maxArgs) {
		return OpResult{Op: op}, ErrParse.Here().WithValue("op", op.String()).Appendf("%s takes %s", op.Verb, arityText(h))
	}
	res, err := h.apply(t, op)
	res.Op = op
	if err != nil && op.Line > 0 {
		err = merry.WithValue(err, "line", op.Line)
	}
	return res, err
}

// ApplyOps applies ops in order and stops at the first failure
func ApplyOps(t trees.Tree, ops []Op) ([]OpResult, error) {
	results := make([]OpResult, 0, len(ops))
	for _, op := range ops {
		res, err := ApplyOp(t, op)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func applyInsert(t trees.Tree, op Op) (OpResult, error) {
	var added, skipped []int
	for _, v := range op.Args {
		if t.Insert(v) {
			added = append(added, v)
		} else {
			skipped = append(skipped, v)
		}
	}
	return OpResult{
		Changed: len(added) > 0,
		Message: describe("inserted", added, "already present", skipped),
	}, nil
}

func applyDelete(t trees.Tree, op Op) (OpResult, error) {
	var removed, missing []int
	for _, v := range op.Args {
		if t.Delete(v) {
			removed = append(removed, v)
		} else {
			missing = append(missing, v)
		}
	}
	return OpResult{
		Changed: len(removed) > 0,
		Message: describe("deleted", removed, "not found", missing),
	}, nil
}

func applySearch(t trees.Tree, op Op) (OpResult, error) {
	v := op.Args[0]
	res := OpResult{Path: t.Path(v), Found: t.Contains(v)}
	if res.Found {
		res.Message = fmt.Sprintf("found %d after %d comparison(s): %s", v, len(res.Path), joinInts(res.Path, " -> "))
	} else {
		res.Message = fmt.Sprintf("%d not found, visited %s", v, joinInts(res.Path, " -> "))
	}
	return res, nil
}

func applyRotate(t trees.Tree, op Op) (OpResult, error) {
	parent, child := op.Args[0], op.Args[1]
	rotated, supported := trees.Rotate(t, parent, child)
	if !supported {
		return OpResult{}, ErrUnsupported.Here().WithValue("op", op.String()).WithValue("kind", t.Kind().String()).
			Appendf("%s cannot rotate manually", t.Kind().Title())
	}
	if !rotated {
		return OpResult{Message: fmt.Sprintf("%d is not a direct child of %d, nothing rotated", child, parent)}, nil
	}
	return OpResult{Changed: true, Message: fmt.Sprintf("rotated %d above %d", child, parent)}, nil
}

func applyFlip(t trees.Tree, op Op) (OpResult, error) {
	v := op.Args[0]
	flipped, supported := trees.FlipColor(t, v)
	if !supported {
		return OpResult{}, ErrUnsupported.Here().WithValue("op", op.String()).WithValue("kind", t.Kind().String()).
			Appendf("%s has no node colours", t.Kind().Title())
	}
	if !flipped {
		return OpResult{Message: fmt.Sprintf("%d not found, nothing flipped", v)}, nil
	}
	return OpResult{Changed: true, Message: fmt.Sprintf("flipped colour of %d", v)}, nil
}

func applyClear(t trees.Tree, _ Op) (OpResult, error) {
	changed := t.Len() > 0
	t.Clear()
	return OpResult{Changed: changed, Message: "cleared tree"}, nil
}

func describe(didVerb string, did []int, skipReason string, skipped []int) string {
	var parts []string
	if len(did) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s", didVerb, joinInts(did, ", ")))
	}
	if len(skipped) > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", skipReason, joinInts(skipped, ", ")))
	}
	return strings.Join(parts, "; ")
}

func joinInts(values []int, sep string) string {
	if len(values) == 0 {
		return "(none)"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
