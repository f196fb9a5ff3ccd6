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
	"io"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/ansel1/merry"
	"github.com/cybrota/arbor/trees"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

var ErrStressMismatch = merry.New("tree disagrees with reference set")

type StressOptions struct {
	Rounds   int
	Values   int   // values are drawn from [0, 2*Values)
	Seed     int64 // 0 picks a time based seed
	Kinds    []trees.Kind
	Progress bool
	Out      io.Writer // progress output, stderr when nil
}

type StressReport struct {
	Seed      int64
	Rounds    int
	Ops       int
	MaxHeight map[trees.Kind]int
}

// runStress applies random insert and delete sequences to every kind and
// validates the tree against a plain set after each step.
func runStress(opts StressOptions, log *logrus.Logger) (StressReport, error) {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if len(opts.Kinds) == 0 {
		opts.Kinds = trees.Kinds
	}
	if opts.Out == nil {
		opts.Out = os.Stderr
	}
	report := StressReport{Seed: opts.Seed, MaxHeight: map[trees.Kind]int{}}
	rng := rand.New(rand.NewSource(opts.Seed))

	log.WithFields(logrus.Fields{
		"seed":   opts.Seed,
		"rounds": opts.Rounds,
		"values": opts.Values,
	}).Info("starting stress run")

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(opts.Rounds*len(opts.Kinds),
			progressbar.OptionSetWriter(opts.Out),
			progressbar.OptionSetDescription("checking trees..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "#",
				SaucerHead:    "#",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	for round := 0; round < opts.Rounds; round++ {
		for _, kind := range opts.Kinds {
			ops, height, err := stressRound(kind, opts.Values, rng)
			report.Ops += ops
			if err != nil {
				if bar != nil {
					_ = bar.Exit()
				}
				return report, merry.WithValue(err, "round", round).WithValue("seed", opts.Seed)
			}
			report.MaxHeight[kind] = max(report.MaxHeight[kind], height)
			if bar != nil {
				_ = bar.Add(1)
			}
		}
		report.Rounds++
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.WithFields(logrus.Fields{
		"rounds": report.Rounds,
		"ops":    report.Ops,
	}).Info("stress run passed")
	return report, nil
}

// stressRound runs one random sequence on a fresh tree and returns the number
// of ops and the largest height seen.
func stressRound(kind trees.Kind, values int, rng *rand.Rand) (int, int, error) {
	tree, err := trees.New(kind)
	if err != nil {
		return 0, 0, err
	}
	if values <= 0 {
		values = 1
	}
	model := map[int]bool{}
	steps := values * 4
	maxHeight := 0

	for step := 0; step < steps; step++ {
		v := rng.Intn(values * 2)
		var op Op
		var got, want bool
		// Lean towards inserts so trees grow before they shrink
		if rng.Intn(3) < 2 {
			op = Op{Verb: VerbInsert, Args: []int{v}}
			got, want = tree.Insert(v), !model[v]
			model[v] = true
		} else {
			op = Op{Verb: VerbDelete, Args: []int{v}}
			got, want = tree.Delete(v), model[v]
			delete(model, v)
		}

		fail := func(err error) error {
			return merry.WithValue(err, "kind", kind.String()).WithValue("step", step).WithValue("op", op.String())
		}
		if got != want {
			return step + 1, maxHeight, fail(ErrStressMismatch.Here().Appendf("%s returned %v", op, got))
		}
		if err := tree.Check(); err != nil {
			return step + 1, maxHeight, fail(err)
		}
		if tree.Len() != len(model) {
			return step + 1, maxHeight, fail(ErrStressMismatch.Here().Appendf("size %d, want %d", tree.Len(), len(model)))
		}
		maxHeight = max(maxHeight, tree.Height())
	}

	want := make([]int, 0, len(model))
	for v := range model {
		want = append(want, v)
	}
	slices.Sort(want)
	if !slices.Equal(want, tree.Inorder()) {
		return steps, maxHeight, merry.WithValue(ErrStressMismatch.Here().Append("inorder traversal differs"), "kind", kind.String())
	}
	return steps, maxHeight, nil
}
