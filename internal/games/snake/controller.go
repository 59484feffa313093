// Package snake implements the grid snake game: the board model, the snake
// body, food placement, collision rules and the Controller state machine that
// ties them together. It knows nothing about terminals or windows; frontends
// feed it actions and ticks and draw its snapshots.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/schedule"
)

// DefaultInterval is the tick period of the classic game.
const DefaultInterval = 150 * time.Millisecond

// FoodPoints is the score added for each food eaten. It is fixed, so a score
// is always a multiple of it.
const FoodPoints = 10

// ErrInvalidSettings is wrapped by New when Settings cannot describe a game.
var ErrInvalidSettings = errors.New("snake: invalid settings")

// Lifecycle is the controller state.
type Lifecycle int

const (
	LifecycleIdle Lifecycle = iota
	LifecycleRunning
	LifecyclePaused
	LifecycleGameOver
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleIdle:
		return "idle"
	case LifecycleRunning:
		return "running"
	case LifecyclePaused:
		return "paused"
	case LifecycleGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome records why a round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWallCollision
	OutcomeSelfCollision
	OutcomeBoardFull // The snake filled the board; treated as a win
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWallCollision:
		return "wall"
	case OutcomeSelfCollision:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// HighScoreStore persists the high score. Load returns 0 when nothing has been
// saved yet.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Renderer draws the game. The controller calls Draw after every tick that
// does not end the round, and after every reset.
type Renderer interface {
	Draw(s Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s Snapshot)

// Draw calls f(s).
func (f RendererFunc) Draw(s Snapshot) { f(s) }

// Settings are the fixed parameters of a game.
type Settings struct {
	Grid     Grid
	Start    Cell          // Initial single-cell snake
	Interval time.Duration // Tick period
}

// DefaultSettings returns the classic 20×20 board starting at (10, 10).
func DefaultSettings() Settings {
	return Settings{
		Grid:     DefaultGrid(),
		Start:    Cell{X: 10, Y: 10},
		Interval: DefaultInterval,
	}
}

func (s Settings) validate() error {
	// A single cell leaves no room for food
	if s.Grid.Dimension < 2 {
		return fmt.Errorf("%w: grid dimension %d, need at least 2", ErrInvalidSettings, s.Grid.Dimension)
	}
	if !s.Grid.Contains(s.Start) {
		return fmt.Errorf("%w: start cell (%d, %d) outside %dx%d grid",
			ErrInvalidSettings, s.Start.X, s.Start.Y, s.Grid.Dimension, s.Grid.Dimension)
	}
	if s.Interval <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalidSettings, s.Interval)
	}
	return nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithSettings replaces the default settings.
func WithSettings(s Settings) Option {
	return func(c *Controller) { c.settings = s }
}

// WithSeed seeds the food RNG for reproducible games.
func WithSeed(seed int64) Option {
	return func(c *Controller) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithScheduler sets the tick source. Without one the controller arms an
// internal schedule.Frames that nobody advances, which suits callers that
// invoke Tick themselves.
func WithScheduler(s schedule.Scheduler) Option {
	return func(c *Controller) { c.scheduler = s }
}

// WithStore sets the high score persistence.
func WithStore(s HighScoreStore) Option {
	return func(c *Controller) { c.store = s }
}

// WithRenderer sets the renderer invoked after ticks and resets.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithListener subscribes l to game events. May be given more than once.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		if l != nil {
			c.listeners = append(c.listeners, l)
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns a game: the snake, its heading, the food, the score, the
// high score and the lifecycle. It is not safe for concurrent use; frontends
// drive it from a single goroutine, which is what makes ticks and input
// handlers mutually exclusive.
type Controller struct {
	settings  Settings
	rng       *rand.Rand
	placer    *FoodPlacer
	scheduler schedule.Scheduler
	timer     schedule.Timer
	store     HighScoreStore
	renderer  Renderer
	listeners []Listener
	logger    *log.Logger

	lifecycle Lifecycle
	outcome   Outcome
	tick      uint64

	body    *Body
	heading Heading // Applied on the last tick
	pending Heading // Buffered for the next tick
	food    Cell
	hasFood bool

	score     int
	highScore int
}

// New creates a controller in the Idle state with a fresh round prepared and
// the high score loaded from the store.
func New(opts ...Option) (*Controller, error) {
	c := &Controller{
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.settings.validate(); err != nil {
		return nil, err
	}

	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.scheduler == nil {
		c.scheduler = schedule.NewFrames()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.placer = NewFoodPlacer(c.rng)

	c.highScore = c.loadHighScore()
	c.prepareRound()
	c.render()

	return c, nil
}

func (c *Controller) loadHighScore() int {
	if c.store == nil {
		return 0
	}
	hs, err := c.store.Load()
	if err != nil {
		c.logger.Warn("could not load high score", "error", err)
		return 0
	}
	if hs < 0 {
		c.logger.Warn("ignoring negative stored high score", "value", hs)
		return 0
	}
	return hs
}

// prepareRound resets the per-round state: a single-cell snake at the start
// cell with no heading, zero score and fresh food.
func (c *Controller) prepareRound() {
	c.body = NewBody(c.settings.Start)
	c.heading = HeadingNone
	c.pending = HeadingNone
	c.score = 0
	c.tick = 0
	c.outcome = OutcomeNone
	c.placeFood()
}

func (c *Controller) placeFood() {
	food, err := c.placer.Place(c.body.Occupied(), c.settings.Grid.Dimension)
	if err != nil {
		c.hasFood = false
		return
	}
	c.food = food
	c.hasFood = true
}

// Start begins ticking. From Idle it starts the prepared round; from GameOver
// it resets first. It does nothing while Running or Paused.
func (c *Controller) Start() {
	switch c.lifecycle {
	case LifecycleRunning, LifecyclePaused:
		return
	case LifecycleGameOver:
		c.Reset()
	}

	c.lifecycle = LifecycleRunning
	c.arm()
	c.logger.Debug("game started", "interval", c.settings.Interval)
	c.emit(EventStarted)
}

// Pause suspends ticking. Only valid while Running.
func (c *Controller) Pause() {
	if c.lifecycle != LifecycleRunning {
		return
	}
	c.disarm()
	c.lifecycle = LifecyclePaused
	c.logger.Debug("game paused", "tick", c.tick)
	c.emit(EventPaused)
}

// Resume continues ticking at the same interval. Only valid while Paused.
func (c *Controller) Resume() {
	if c.lifecycle != LifecyclePaused {
		return
	}
	c.lifecycle = LifecycleRunning
	c.arm()
	c.logger.Debug("game resumed", "tick", c.tick)
	c.emit(EventResumed)
}

// TogglePause pauses a running game or resumes a paused one.
func (c *Controller) TogglePause() {
	switch c.lifecycle {
	case LifecycleRunning:
		c.Pause()
	case LifecyclePaused:
		c.Resume()
	}
}

// Reset stops ticking and prepares a fresh round in the Idle state. The high
// score is kept. Valid in every state.
func (c *Controller) Reset() {
	c.disarm()
	c.lifecycle = LifecycleIdle
	c.prepareRound()
	c.logger.Debug("game reset")
	c.emit(EventReset)
	c.render()
}

// SetHeading buffers a direction change for the next tick. Requests are
// ignored unless Running, and a request that exactly reverses the heading
// applied on the last tick is dropped. Among several accepted requests
// between two ticks the last one wins.
func (c *Controller) SetHeading(h Heading) {
	if c.lifecycle != LifecycleRunning || h == HeadingNone {
		return
	}
	if h.IsOpposite(c.heading) {
		return
	}
	c.pending = h
}

var actionHeadings = map[core.Action]Heading{
	core.ActionUp:    HeadingUp,
	core.ActionDown:  HeadingDown,
	core.ActionLeft:  HeadingLeft,
	core.ActionRight: HeadingRight,
}

// Handle dispatches an input action to the matching transition.
// Quit and unknown actions are left to the frontend.
func (c *Controller) Handle(a core.Action) {
	if a.IsDirection() {
		c.SetHeading(actionHeadings[a])
		return
	}
	switch a {
	case core.ActionPause:
		c.TogglePause()
	case core.ActionStart:
		c.Start()
	case core.ActionReset:
		c.Reset()
	}
}

// Tick runs one simulation step: apply the buffered heading, advance, drop
// the tail unless food is under the new head, then check wall and self
// collisions. Surviving a tick with food scores, updates the high score and
// places new food. Tick does nothing unless Running, so a timer that fires
// late after a pause is harmless.
func (c *Controller) Tick() {
	if c.lifecycle != LifecycleRunning {
		return
	}
	c.tick++

	c.heading = c.pending
	head := c.body.Advance(c.heading)

	eaten := c.hasFood && IsFoodEaten(head, c.food)
	if eaten {
		c.body.Grow()
	} else {
		c.body.Shrink()
	}

	if IsWallCollision(head, c.settings.Grid.Dimension) {
		c.endRound(OutcomeWallCollision)
		return
	}
	if IsSelfCollision(head, c.body.cells) {
		c.endRound(OutcomeSelfCollision)
		return
	}

	if eaten {
		c.consumeFood()
		if c.lifecycle != LifecycleRunning {
			return
		}
	}

	c.render()
}

func (c *Controller) consumeFood() {
	c.score += FoodPoints
	c.emit(EventFoodEaten)

	if c.score > c.highScore {
		c.highScore = c.score
		c.saveHighScore()
		c.emit(EventNewHighScore)
	}

	// A full board has no cell left for food
	if c.body.Len() >= c.settings.Grid.Capacity() {
		c.hasFood = false
		c.endRound(OutcomeBoardFull)
		return
	}
	c.placeFood()
	if !c.hasFood {
		c.endRound(OutcomeBoardFull)
	}
}

func (c *Controller) saveHighScore() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.highScore); err != nil {
		c.logger.Warn("could not save high score", "score", c.highScore, "error", err)
	}
}

func (c *Controller) endRound(o Outcome) {
	c.disarm()
	c.lifecycle = LifecycleGameOver
	c.outcome = o
	c.logger.Info("game over", "score", c.score, "high_score", c.highScore, "outcome", o, "ticks", c.tick)
	c.emit(EventGameOver)
}

func (c *Controller) arm() {
	c.disarm()
	c.timer = c.scheduler.Every(c.settings.Interval)
}

func (c *Controller) disarm() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) render() {
	if c.renderer != nil {
		c.renderer.Draw(c.Snapshot())
	}
}

// Lifecycle returns the current state.
func (c *Controller) Lifecycle() Lifecycle {
	return c.lifecycle
}

// Score returns the score of the current round.
func (c *Controller) Score() int {
	return c.score
}

// HighScore returns the best score seen, including the current round.
func (c *Controller) HighScore() int {
	return c.highScore
}

// Settings returns the game parameters.
func (c *Controller) Settings() Settings {
	return c.settings
}
