// Package session cycles through the levels of a run. It owns the current
// level, reloads it on failure and advances it on success, and records
// finished levels in the run history.
package session

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/automoto/nightfall/config"
	"github.com/automoto/nightfall/level"
	"github.com/automoto/nightfall/shared/leveldata"
	"github.com/automoto/nightfall/storage"
)

// ErrInvalidOperation marks calls made in a state that does not allow them.
var ErrInvalidOperation = errors.New("invalid operation")

// LevelSource loads level maps by index.
type LevelSource interface {
	Load(index int) (*leveldata.Map, error)
}

// Recorder stores finished levels.
type Recorder interface {
	RecordLevel(r storage.LevelResult) (int64, error)
}

// Session is one run through the level cycle.
type Session struct {
	source   LevelSource
	recorder Recorder
	sounds   level.SoundTrigger
	logger   *log.Logger

	runID  string
	count  int
	index  int
	total  int
	levels int

	current *level.Level
}

// Option configures a Session.
type Option func(*Session)

// WithRecorder records every completed level in r.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithSounds passes s to every level the session loads.
func WithSounds(t level.SoundTrigger) Option {
	return func(s *Session) { s.sounds = t }
}

// WithLogger replaces the default discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l.WithPrefix("session")
		}
	}
}

// WithLevelCount overrides the configured number of levels in the cycle.
func WithLevelCount(n int) Option {
	return func(s *Session) { s.count = n }
}

// New creates a session over source. Nothing is loaded until Start.
func New(source LevelSource, opts ...Option) *Session {
	s := &Session{
		source: source,
		logger: log.New(io.Discard),
		runID:  uuid.New().String(),
		count:  config.Session.LevelCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the first level.
func (s *Session) Start() error {
	if s.count <= 0 {
		return fmt.Errorf("start: %w: level count is %d", ErrInvalidOperation, s.count)
	}
	s.logger.Info("run started", "run", s.runID, "levels", s.count)
	return s.LoadLevel(0)
}

// Level returns the current level.
func (s *Session) Level() (*level.Level, error) {
	if s.current == nil {
		return nil, fmt.Errorf("level: %w: session not started", ErrInvalidOperation)
	}
	return s.current, nil
}

// Index is the current level index.
func (s *Session) Index() int {
	return s.index
}

// RunID identifies this run in the history.
func (s *Session) RunID() string {
	return s.runID
}

// TotalScore sums the scores of every level finished in this run.
func (s *Session) TotalScore() int {
	return s.total
}

// LevelsCompleted counts the levels finished in this run.
func (s *Session) LevelsCompleted() int {
	return s.levels
}

// Update forwards one tick to the current level.
func (s *Session) Update(dt time.Duration, in level.Input) error {
	l, err := s.Level()
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	l.Update(dt, in)
	return nil
}

// LoadLevel replaces the current level with level index. On failure the
// current level stays in place.
func (s *Session) LoadLevel(index int) error {
	if index < 0 || index >= s.count {
		return fmt.Errorf("load level %d: %w: cycle has %d levels", index, ErrInvalidOperation, s.count)
	}

	m, err := s.source.Load(index)
	if err != nil {
		return fmt.Errorf("load level %d: %w", index, err)
	}

	opts := []level.Option{level.WithIndex(index)}
	if s.sounds != nil {
		opts = append(opts, level.WithSounds(s.sounds))
	}
	next := level.New(m, opts...)

	if s.current != nil {
		s.current.Close()
	}
	s.current = next
	s.index = index
	s.logger.Info("level loaded", "index", index,
		"size", fmt.Sprintf("%dx%d", m.Width, m.Height),
		"enemies", len(m.Enemies), "pickups", len(m.Pickups))
	return nil
}

// Reload restarts the current level from its map.
func (s *Session) Reload() error {
	if s.current == nil {
		return fmt.Errorf("reload: %w: session not started", ErrInvalidOperation)
	}
	return s.LoadLevel(s.index)
}

// Advance moves to the next level, wrapping after the last. A level left
// after reaching the exit counts toward the run.
func (s *Session) Advance() error {
	if s.current == nil {
		return fmt.Errorf("advance: %w: session not started", ErrInvalidOperation)
	}
	if s.current.ReachedExit() {
		s.finishLevel()
	}
	return s.LoadLevel((s.index + 1) % s.count)
}

// Continue resolves the end of a life or a level: a dead player starts a
// new life; once the timer has run out the session advances if the exit
// was reached and reloads otherwise. In any other state it does nothing.
func (s *Session) Continue() error {
	l, err := s.Level()
	if err != nil {
		return fmt.Errorf("continue: %w", err)
	}

	switch {
	case !l.PlayerAlive():
		l.StartNewLife()
		return nil
	case l.TimeRemaining() == 0 && l.ReachedExit():
		return s.Advance()
	case l.TimeRemaining() == 0:
		return s.Reload()
	}
	return nil
}

// Close releases the current level.
func (s *Session) Close() {
	if s.current != nil {
		s.current.Close()
		s.current = nil
	}
}

func (s *Session) finishLevel() {
	score := s.current.Score()
	s.total += score
	s.levels++
	s.logger.Info("level complete", "index", s.index, "score", score, "total", s.total)

	if s.recorder == nil {
		return
	}
	_, err := s.recorder.RecordLevel(storage.LevelResult{
		RunID:    s.runID,
		Level:    s.index,
		Score:    score,
		TimeLeft: s.current.TimeRemaining(),
	})
	if err != nil {
		s.logger.Warn("could not record level", "index", s.index, "error", err)
	}
}
