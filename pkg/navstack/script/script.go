// Package script loads navigation scenarios from YAML and replays them
// against a Navigation backed by a peertest.Peer, producing a trace of the
// resulting stack and the bridge calls each step caused.
//
// A scenario looks like:
//
//	name: basic
//	steps:
//	  - op: push
//	    name: home
//	  - op: push
//	    name: detail
//	    param: {id: 1}
//	  - op: sync
//	  - op: pop
//	    result: ok
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/navstack/pkg/navstack"
)

// Op names a scenario step.
type Op string

const (
	OpPush           Op = "push"
	OpReplace        Op = "replace"
	OpNavigate       Op = "navigate"
	OpPop            Op = "pop"
	OpPopToIndex     Op = "pop_to_index"
	OpPopToName      Op = "pop_to_name"
	OpMoveToTop      Op = "move_to_top"
	OpMoveIndexToTop Op = "move_index_to_top"
	OpRemoveByName   Op = "remove_by_name"
	OpClear          Op = "clear"
	OpSync           Op = "sync"
)

var ErrUnknownOp = errors.New("script: unknown op")

// Script is a named list of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one navigation call. Only the fields its op uses are read.
type Step struct {
	Op         Op     `yaml:"op"`
	Name       string `yaml:"name,omitempty"`
	Param      any    `yaml:"param,omitempty"`
	LaunchMode string `yaml:"launch_mode,omitempty"`
	Animated   *bool  `yaml:"animated,omitempty"`
	Result     any    `yaml:"result,omitempty"`
	Index      int    `yaml:"index,omitempty"`
}

func (s Step) animated() bool {
	return s.Animated == nil || *s.Animated
}

func (s Step) options() (navstack.NavigationOptions, error) {
	mode, err := navstack.ParseLaunchMode(s.LaunchMode)
	if err != nil {
		return navstack.NavigationOptions{}, err
	}
	return navstack.NavigationOptions{LaunchMode: mode, Animated: s.animated()}, nil
}

// Load reads a scenario file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpPush, OpReplace, OpNavigate, OpPopToName, OpMoveToTop, OpRemoveByName:
			if step.Name == "" {
				return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, navstack.ErrEmptyName)
			}
		case OpPop, OpPopToIndex, OpMoveIndexToTop, OpClear, OpSync:
		default:
			return nil, fmt.Errorf("step %d: %w: %q", i+1, ErrUnknownOp, step.Op)
		}
		if _, err := step.options(); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}

	return &s, nil
}
