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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ansel1/merry"
	"github.com/cybrota/arbor/trees"
	"github.com/sirupsen/logrus"
)

// runOptions drives the run command
type runOptions struct {
	Kind       trees.Kind
	Order      trees.Order
	ScriptPath string
	Ops        []string // inline ops, one or more per argument
	Print      bool
	JSON       bool
	Copy       bool
	All        bool
	Colors     bool
}

// runOps builds a tree, applies the script then the inline ops, and writes
// the requested views of the result to w.
func runOps(w io.Writer, opts runOptions, log *logrus.Logger) (trees.Tree, error) {
	tree, err := trees.New(opts.Kind)
	if err != nil {
		return nil, err
	}

	var ops []Op
	if opts.ScriptPath != "" {
		scriptOps, err := readScriptFile(opts.ScriptPath)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{"file": opts.ScriptPath, "ops": len(scriptOps)}).Debug("loaded script")
		ops = append(ops, scriptOps...)
	}
	if len(opts.Ops) > 0 {
		inline, err := ParseOps(strings.Join(opts.Ops, "\n"))
		if err != nil {
			return nil, err
		}
		ops = append(ops, inline...)
	}

	for _, op := range ops {
		res, err := ApplyOp(tree, op)
		if err != nil {
			return tree, err
		}
		log.WithFields(logrus.Fields{"op": op.String(), "changed": res.Changed}).Debug(res.Message)
		if op.Verb == VerbSearch {
			fmt.Fprintln(w, res.Message)
		}
	}

	if err := tree.Check(); err != nil {
		value, _ := trees.ViolationValue(err)
		log.WithError(err).WithField("value", value).Warn("tree no longer satisfies its invariants")
	}

	if opts.Print {
		fmt.Fprint(w, newTreeRenderer(opts.Colors).Render(tree))
	}

	if opts.JSON {
		if !tree.Kind().SupportsColor() {
			return tree, ErrUnsupported.Here().WithValue("kind", tree.Kind().String()).
				Appendf("%s has no JSON snapshot", tree.Kind().Title())
		}
		data, err := json.MarshalIndent(tree.(trees.Snapshotter).Snapshot(), "", "  ")
		if err != nil {
			return tree, merry.Wrap(err)
		}
		fmt.Fprintln(w, string(data))
	}

	if opts.All {
		fmt.Fprint(w, renderTraversals(tree))
	} else {
		fmt.Fprintln(w, joinInts(trees.Traverse(tree, opts.Order), " "))
	}

	if opts.Copy {
		text := joinInts(trees.Traverse(tree, opts.Order), " ")
		if err := copyToClipboard(text); err != nil {
			log.WithError(err).Warn("could not copy traversal to clipboard")
		} else {
			log.Infof("copied %s traversal to clipboard", opts.Order)
		}
	}
	return tree, nil
}
