package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/invisible-maze/config"
	"github.com/beka-birhanu/invisible-maze/maze"
	"github.com/beka-birhanu/invisible-maze/service"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
)

// Global variables for dependencies
var (
	match     *service.Match
	session   *service.Session
	appLogger general_i.Logger
)

const usage = `commands:
  duel [easy|medium|hard]      start a duel (easy by default)
  practice [easy|medium|hard]  start a practice run
  w a s d                      move north, west, south, east
  toggle                       show or hide every wall and marker
  show                         draw the board
  reset                        abandon the match
  quit`

func initMatch() {
	matchLogger, err := logger.New("GAME-MATCH", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating match logger: %v", err))
		os.Exit(1)
	}

	c := &service.Config{
		Logger:            matchLogger,
		Hearts:            config.Envs.Hearts,
		RevealSeconds:     config.Envs.RevealSeconds,
		MinDistance:       config.Envs.MinDistance,
		PlacementAttempts: config.Envs.PlacementAttempts,
	}
	if config.Envs.Seed != 0 {
		c.Rand = maze.NewRand(config.Envs.Seed)
	}

	match, err = service.NewMatch(c)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating match: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Match initialized")
}

func initSession() {
	sessionLogger, err := logger.New("GAME-SESSION", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session logger: %v", err))
		os.Exit(1)
	}

	session, err = service.NewSession(&service.SessionConfig{
		Match:         match,
		Logger:        sessionLogger,
		TickInterval:  config.Envs.TickInterval,
		OutcomeBuffer: config.Envs.OutcomeBuffer,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session initialized")
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)
	initMatch()
	initSession()

	go session.Start()
	defer session.Stop()
	go printOutcomes(os.Stdout)

	fmt.Println(usage)
	if err := runCommands(os.Stdin, os.Stdout); err != nil {
		appLogger.Error(fmt.Sprintf("Reading commands: %v", err))
	}
}

// printOutcomes reports every outcome and redraws the board when the
// countdown ends.
func printOutcomes(w io.Writer) {
	for batch := range session.Outcomes() {
		for _, o := range batch {
			fmt.Fprintln(w, o)
		}
		if service.HasKind(batch, service.OutcomeRevealed) && !service.HasKind(batch, service.OutcomeGameStarted) {
			printBoard(w)
		}
	}
}

// runCommands reads one command per line until quit or EOF.
func runCommands(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch cmd := strings.ToLower(fields[0]); cmd {
		case "quit", "q", "exit":
			return nil
		case "help", "h", "?":
			fmt.Fprintln(w, usage)
			continue
		case "duel", "practice":
			err = start(cmd, fields[1:])
		case "toggle", "t":
			_, err = session.ToggleVisibility()
		case "reset":
			_, err = session.ResetMatch()
		case "show":
		default:
			var d maze.Direction
			if d, err = maze.ParseDirection(cmd); err == nil {
				_, err = session.Move(d)
			}
		}

		if errors.Is(err, service.ErrSessionStopped) {
			return err
		}
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		printBoard(w)
	}
	return scanner.Err()
}

func start(mode string, args []string) error {
	d := service.Easy
	if len(args) > 0 {
		var err error
		if d, err = service.ParseDifficulty(args[0]); err != nil {
			return err
		}
	}
	m := service.ModeDuel
	if mode == "practice" {
		m = service.ModePractice
	}
	_, err := session.StartGame(m, d)
	return err
}

func printBoard(w io.Writer) {
	snap, err := session.Snapshot()
	if err != nil {
		appLogger.Warning(fmt.Sprintf("Taking snapshot: %v", err))
		return
	}
	fmt.Fprint(w, renderSnapshot(snap))
}

// renderSnapshot draws the board the way the players currently see it.
func renderSnapshot(snap service.Snapshot) string {
	if snap.Maze == nil {
		return "no game in progress, type duel or practice\n"
	}

	var marks map[maze.Position]rune
	if snap.MarkersVisible {
		marks = map[maze.Position]rune{snap.Goal: 'G', snap.Player: 'P'}
	}
	show := func(p maze.Position, d maze.Direction) bool {
		v := snap.Walls[p.Y][p.X][d]
		return v == service.WallShown || v == service.WallHit
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s round %d game %d | %s\n", snap.Status.Name(), snap.Mode, snap.Round, snap.Games+1, snap.Difficulty)
	b.WriteString(snap.Maze.Render(marks, show))
	switch {
	case snap.Status != service.StatusInProgress:
	case snap.Phase == service.PhaseCountdown:
		fmt.Fprintf(&b, "memorize the maze: %ds left\n", snap.Remaining)
	default:
		fmt.Fprintf(&b, "player %s to move, hearts %d, attempt %d\n", snap.Turn, snap.Hearts[snap.Turn], snap.Attempts)
	}
	if snap.Mode == service.ModeDuel {
		fmt.Fprintf(&b, "wins A %d - B %d\n", snap.Wins[service.PlayerA], snap.Wins[service.PlayerB])
	}
	return b.String()
}
