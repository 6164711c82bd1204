// Package script replays recorded player input from YAML files.
//
// A script is a list of segments, each holding a set of intents for a
// number of ticks:
//
//	segments:
//	  - ticks: 30
//	    right: true
//	  - ticks: 12
//	  - ticks: 1
//	    quit: true
//
// Once every segment is consumed the script requests quit, so a scripted
// run always terminates.
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrInvalidScript is wrapped by every script validation failure.
var ErrInvalidScript = errors.New("script: invalid input script")

// Segment holds the same intents for Ticks consecutive ticks.
type Segment struct {
	Ticks int  `yaml:"ticks"`
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
	Quit  bool `yaml:"quit"`
}

// Intents returns the segment's input state.
func (s Segment) Intents() core.Intents {
	return core.Intents{Left: s.Left, Right: s.Right, Quit: s.Quit}
}

// Script is an input source that plays segments back one tick per Poll.
type Script struct {
	Segments []Segment `yaml:"segments"`

	seg  int // Current segment
	used int // Ticks consumed from the current segment
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every segment lasts at least one tick.
func (s *Script) Validate() error {
	if len(s.Segments) == 0 {
		return fmt.Errorf("%w: no segments", ErrInvalidScript)
	}
	for i, seg := range s.Segments {
		if seg.Ticks <= 0 {
			return fmt.Errorf("%w: segment %d has %d ticks", ErrInvalidScript, i, seg.Ticks)
		}
	}
	return nil
}

// Poll returns the intents for the next tick.
func (s *Script) Poll() core.Intents {
	if s.Done() {
		return core.Intents{Quit: true}
	}

	in := s.Segments[s.seg].Intents()
	s.used++
	if s.used >= s.Segments[s.seg].Ticks {
		s.seg++
		s.used = 0
	}
	return in
}

// Done reports whether every segment has been played.
func (s *Script) Done() bool {
	return s.seg >= len(s.Segments)
}

// Len returns the total number of scripted ticks.
func (s *Script) Len() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Ticks
	}
	return n
}
