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
	"bytes"
	"math/rand"
	"testing"

	"github.com/ansel1/merry"
	"github.com/cybrota/arbor/trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStressAllKinds(t *testing.T) {
	var logs bytes.Buffer
	report, err := runStress(StressOptions{Rounds: 20, Values: 40, Seed: 7}, newLogger("info", &logs))
	require.NoError(t, err)

	assert.Equal(t, int64(7), report.Seed)
	assert.Equal(t, 20, report.Rounds)
	assert.Equal(t, 20*len(trees.Kinds)*40*4, report.Ops)
	for _, kind := range trees.Kinds {
		assert.Positive(t, report.MaxHeight[kind], kind.String())
	}
	// Balanced kinds never exceed their height bounds for at most 80 values
	assert.LessOrEqual(t, report.MaxHeight[trees.KindAVL], 8)
	assert.LessOrEqual(t, report.MaxHeight[trees.KindRBT], 12)
	assert.Contains(t, logs.String(), "stress run passed")
}

func TestRunStressProgress(t *testing.T) {
	var out bytes.Buffer
	_, err := runStress(StressOptions{
		Rounds:   3,
		Values:   10,
		Seed:     99,
		Kinds:    []trees.Kind{trees.KindRBT},
		Progress: true,
		Out:      &out,
	}, newLogger("error", &bytes.Buffer{}))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "checking trees")
}

func TestRunStressTimeSeed(t *testing.T) {
	report, err := runStress(StressOptions{Rounds: 1, Values: 5}, newLogger("error", &bytes.Buffer{}))
	require.NoError(t, err)
	assert.NotZero(t, report.Seed)
}

func TestStressRoundDeterministic(t *testing.T) {
	ops1, h1, err := stressRound(trees.KindBST, 30, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	ops2, h2, err := stressRound(trees.KindBST, 30, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.Equal(t, ops1, ops2)
	assert.Equal(t, h1, h2)
}

func TestStressRoundUnknownKind(t *testing.T) {
	_, _, err := stressRound("splay", 10, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.True(t, merry.Is(err, trees.ErrUnknownKind))
}
