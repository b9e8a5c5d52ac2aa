package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"retro-snake/game/entity"
	"retro-snake/game/manager"
	"retro-snake/game/types"

	"github.com/google/uuid"
)

// Options configures a Game.
type Options struct {
	BoardSize int
	Level     types.Level
	Random    manager.Random        // nil picks a clock-seeded source
	Ledger    *manager.ScoreManager // nil disables score recording
	Strict    bool                  // panic when a state invariant breaks
}

// Game owns the state of one session and advances it one tick at a time.
// Every exported method takes the same lock, so commands and ticks are
// applied one after the other.
type Game struct {
	mu sync.Mutex

	grid         types.Grid
	start        types.Point
	level        types.Level
	state        types.RoundState
	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	obstacles    manager.Obstacles
	obstacleList []types.Point
	direction    types.Direction // applied on the next tick
	heading      types.Direction // direction of the last committed move
	score        int
	ticks        int
	roundID      string
	endReason    types.CollisionType
	strict       bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	obstacleMgr  *manager.ObstacleManager
	ledger       *manager.ScoreManager
}

// TickResult describes what a single tick did.
type TickResult struct {
	Moved     bool
	Ate       bool
	Collision types.CollisionType
}

func New(opts Options) (*Game, error) {
	if opts.BoardSize == 0 {
		opts.BoardSize = types.DefaultBoardSize
	}
	if opts.BoardSize < types.MinBoardSize || opts.BoardSize > types.MaxBoardSize {
		return nil, fmt.Errorf("board size %d out of range [%d,%d]", opts.BoardSize, types.MinBoardSize, types.MaxBoardSize)
	}
	if !opts.Level.Valid() {
		return nil, fmt.Errorf("%w: %d", types.ErrUnknownLevel, int(opts.Level))
	}
	rng := opts.Random
	if rng == nil {
		rng = manager.NewRandom(0)
	}

	grid := types.Square(opts.BoardSize)
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		grid:         grid,
		start:        grid.Center(),
		strict:       opts.Strict,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		obstacleMgr:  manager.NewObstacleManager(grid, rng),
		ledger:       opts.Ledger,
	}
	g.reset(opts.Level)
	return g, nil
}

// Start runs the round. After a game over it first resets the current level.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.run()
}

func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == types.Running {
		g.state = types.Paused
	}
}

// TogglePause switches between running and paused. It does nothing once the
// round is over.
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch g.state {
	case types.GameOver:
	case types.Running:
		g.state = types.Paused
	default:
		g.state = types.Running
	}
}

// Restart resets the current level and starts right away.
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.reset(g.level)
	g.run()
}

// Reset reinitialises the round for level and leaves it idle. An unknown
// level keeps the current one.
func (g *Game) Reset(level types.Level) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !level.Valid() {
		log.Printf("reset: %v: %d", types.ErrUnknownLevel, int(level))
		level = g.level
	}
	g.reset(level)
}

// SetLevel switches level, which always resets the round.
func (g *Game) SetLevel(level types.Level) {
	g.Reset(level)
}

// SetDirection queues a new direction for the next tick. A reversal of the
// last direction of travel is ignored and reported as false.
func (g *Game) SetDirection(d types.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if d < types.Up || d > types.Right {
		return false
	}
	if d.IsOpposite(g.heading) {
		return false
	}
	g.direction = d
	return true
}

// Tick advances the snake by one cell. It is a no-op unless the round is running.
func (g *Game) Tick() TickResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != types.Running {
		return TickResult{}
	}

	newHead := g.snake.GetHead().Add(g.direction.Offset())
	eats := g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food)

	// The tail only counts as occupied when it is not about to move away.
	collisionType := g.collisionMgr.Classify(newHead, g.snake.Occupied(!eats), g.obstacles)
	if collisionType != types.NoCollision {
		g.endRound(collisionType)
		return TickResult{Collision: collisionType}
	}

	g.snake.Move(newHead)
	g.heading = g.direction
	g.ticks++

	result := TickResult{Moved: true, Ate: eats}
	if eats {
		g.score += g.level.FoodPoints()
		if err := g.placeFood(); err != nil {
			g.endRound(types.BoardFullCollision)
			result.Collision = types.BoardFullCollision
		}
	} else {
		g.snake.RemoveTail()
	}

	g.checkInvariants()
	return result
}

// Apply executes a queued command.
func (g *Game) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdStart:
		g.Start()
	case CmdPause:
		g.Pause()
	case CmdTogglePause:
		g.TogglePause()
	case CmdRestart:
		g.Restart()
	case CmdReset:
		g.Reset(cmd.Level)
	case CmdSetLevel:
		g.SetLevel(cmd.Level)
	case CmdSetDirection:
		g.SetDirection(cmd.Direction)
	}
}

// TickInterval is the timer period of the current level.
func (g *Game) TickInterval() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.level.TickInterval()
}

func (g *Game) State() types.RoundState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Snapshot copies the state for presentation.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	obstacles := make([]types.Point, len(g.obstacleList))
	copy(obstacles, g.obstacleList)

	return Snapshot{
		RoundID:      g.roundID,
		BoardSize:    g.grid.Width,
		Snake:        g.snake.Points(),
		Food:         g.food,
		HasFood:      g.hasFood,
		Obstacles:    obstacles,
		Score:        g.score,
		Level:        g.level,
		State:        g.state,
		Direction:    g.direction,
		TickInterval: g.level.TickInterval(),
		Ticks:        g.ticks,
		EndReason:    g.endReason,
	}
}

// TopScores reads the ledger. Read failures are logged and yield no scores.
func (g *Game) TopScores() []int {
	if g.ledger == nil {
		return nil
	}
	scores, err := g.ledger.TopScores()
	if err != nil {
		log.Printf("score ledger: read: %v", err)
		return nil
	}
	return scores
}

func (g *Game) run() {
	switch g.state {
	case types.Idle, types.Paused:
		g.state = types.Running
	case types.GameOver:
		g.reset(g.level)
		if g.state == types.Idle {
			g.state = types.Running
		}
	}
}

func (g *Game) reset(level types.Level) {
	g.level = level
	g.roundID = uuid.NewString()
	g.snake = entity.NewSnake(g.start)
	g.direction = types.Right
	g.heading = types.Right
	g.score = 0
	g.ticks = 0
	g.endReason = types.NoCollision
	g.state = types.Idle
	g.obstacles = g.obstacleMgr.Generate(level, g.start)
	g.obstacleList = g.obstacles.Sorted()

	if err := g.placeFood(); err != nil {
		g.endRound(types.BoardFullCollision)
		return
	}
	log.Printf("round %s reset: level=%s obstacles=%d", g.roundID, level, len(g.obstacles))
	g.checkInvariants()
}

func (g *Game) placeFood() error {
	food, err := g.foodMgr.GenerateFood(g.snake.Body, g.obstacles)
	if err != nil {
		g.hasFood = false
		log.Printf("round %s: place food: %v", g.roundID, err)
		return err
	}
	g.food = food
	g.hasFood = true
	return nil
}

// endRound freezes the round and records a positive score. A ledger failure
// is logged only.
func (g *Game) endRound(reason types.CollisionType) {
	g.state = types.GameOver
	g.endReason = reason
	log.Printf("round %s over: %s score=%d length=%d", g.roundID, reason, g.score, g.snake.Len())

	if g.ledger == nil || g.score <= 0 {
		return
	}
	if err := g.ledger.Record(g.score); err != nil {
		log.Printf("score ledger: %v", err)
	}
}

// checkInvariants panics in strict mode when the round state is inconsistent.
func (g *Game) checkInvariants() {
	if !g.strict {
		return
	}
	seen := make(map[types.Point]struct{}, g.snake.Len())
	for _, part := range g.snake.Body {
		if !g.grid.Contains(part) {
			panic(fmt.Sprintf("snake cell %v outside the board", part))
		}
		if _, dup := seen[part]; dup {
			panic(fmt.Sprintf("snake cell %v occupied twice", part))
		}
		if g.obstacles.Contains(part) {
			panic(fmt.Sprintf("snake cell %v on an obstacle", part))
		}
		seen[part] = struct{}{}
	}
	if g.hasFood {
		if _, hit := seen[g.food]; hit {
			panic(fmt.Sprintf("food %v on the snake", g.food))
		}
		if g.obstacles.Contains(g.food) {
			panic(fmt.Sprintf("food %v on an obstacle", g.food))
		}
	}
	if g.obstacles.Contains(g.start) {
		panic(fmt.Sprintf("start cell %v is an obstacle", g.start))
	}
	if g.score < 0 {
		panic(fmt.Sprintf("negative score %d", g.score))
	}
}
