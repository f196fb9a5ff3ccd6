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
	"time"

	"github.com/cybrota/arbor/trees"
	"github.com/sirupsen/logrus"
)

// Iteration is a saved copy of the tree
type Iteration struct {
	Tree    trees.Tree
	SavedAt time.Time
}

// Session holds the tree being edited plus saved iterations of it.
// Iterations are deep copies, so editing never changes a saved one.
type Session struct {
	current    trees.Tree
	iterations []Iteration
	index      int // selected iteration, -1 when none
	AutoSave   bool

	log *logrus.Logger
}

func NewSession(kind trees.Kind, log *logrus.Logger) (*Session, error) {
	tree, err := trees.New(kind)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = newLogger("error", nil)
	}
	return &Session{current: tree, index: -1, log: log}, nil
}

// Tree returns the tree being edited
func (s *Session) Tree() trees.Tree { return s.current }

func (s *Session) Kind() trees.Kind { return s.current.Kind() }

// Iterations returns the saved iterations. Callers must not modify them.
func (s *Session) Iterations() []Iteration { return s.iterations }

// Index returns the selected iteration or -1
func (s *Session) Index() int { return s.index }

// Apply runs op on the current tree and auto-saves when it changed something
func (s *Session) Apply(op Op) (OpResult, error) {
	res, err := ApplyOp(s.current, op)
	if err != nil {
		s.log.WithError(err).WithField("op", op.String()).Debug("operation rejected")
		return res, err
	}
	s.log.WithFields(logrus.Fields{
		"op":      op.String(),
		"changed": res.Changed,
	}).Debug("operation applied")
	if res.Changed && s.AutoSave {
		s.Save()
	}
	return res, nil
}

// SetKind swaps the engine, replaying the current values in preorder so a
// BST keeps its shape.
func (s *Session) SetKind(kind trees.Kind) error {
	if kind == s.current.Kind() {
		return nil
	}
	tree, err := trees.Build(kind, s.current.Preorder()...)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"from": s.current.Kind(), "to": kind}).Debug("switched tree kind")
	s.current = tree
	return nil
}

// Save appends a copy of the current tree and selects it
func (s *Session) Save() {
	s.iterations = append(s.iterations, Iteration{Tree: s.current.CloneTree(), SavedAt: time.Now()})
	s.index = len(s.iterations) - 1
	s.log.WithField("iteration", s.index+1).Debug("iteration saved")
}

// Load replaces the current tree with a copy of iteration i
func (s *Session) Load(i int) bool {
	if i < 0 || i >= len(s.iterations) {
		return false
	}
	s.current = s.iterations[i].Tree.CloneTree()
	s.index = i
	return true
}

// DeleteIteration removes iteration i and loads the nearest remaining one,
// or an empty tree of the same kind when none is left.
func (s *Session) DeleteIteration(i int) bool {
	if i < 0 || i >= len(s.iterations) {
		return false
	}
	kind := s.iterations[i].Tree.Kind()
	s.iterations = append(s.iterations[:i], s.iterations[i+1:]...)

	s.index = min(s.index, len(s.iterations)-1)
	if s.index >= 0 {
		s.current = s.iterations[s.index].Tree.CloneTree()
	} else {
		s.current, _ = trees.New(kind)
	}
	return true
}

// ClearIterations drops every saved iteration and keeps the current tree
func (s *Session) ClearIterations() {
	s.iterations = nil
	s.index = -1
}
