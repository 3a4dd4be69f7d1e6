// Command holdem runs the preflop toolkit from the terminal: simulate
// plays engine-driven hands and reports win rates, advise answers a
// single strategy query.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cardworks/holdem/internal/advisor"
	"github.com/cardworks/holdem/internal/gto"
	"github.com/cardworks/holdem/internal/simulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

type CLI struct {
	LogLevel string `short:"l" default:"warn" help:"Log level (debug, info, warn, error)"`

	Simulate SimulateCmd `cmd:"" help:"Play engine-driven hands and report seat statistics"`
	Advise   AdviseCmd   `cmd:"" help:"Answer a single preflop strategy query"`
}

type SimulateCmd struct {
	Hands   int   `default:"10000" help:"Number of hands to play"`
	Tables  int   `default:"4" help:"Concurrent tables"`
	Players int   `short:"p" default:"6" help:"Seats per table (2-8)"`
	Blinds  []int `default:"5,10" help:"Small and big blind in chips"`
	Chips   int   `default:"1000" help:"Starting stack per seat in chips"`
	Seed    int64 `default:"1" help:"Base RNG seed"`
}

type AdviseCmd struct {
	Hand     string  `arg:"" help:"Hand in 169-combo notation (AA, AKs, 72o)"`
	Position string  `arg:"" help:"Position (UTG, UTG+1, MP, MP+1, CO, BTN, SB, BB)"`
	Facing   string  `default:"none" help:"Action faced (none, limp, raise, 3bet, 4bet, 5bet, squeeze, isolation_raise, cold_4bet)"`
	Behind   int     `default:"0" help:"Players still to act (0-7)"`
	StackBB  float64 `default:"100" help:"Effective stack in big blinds"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdem"),
		kong.Description("Texas Hold'em preflop strategy toolkit"))

	logger := log.New(os.Stderr)
	if level, err := log.ParseLevel(cli.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := ctx.Run(logger); err != nil {
		logger.Error("command failed", "error", err)
		ctx.Exit(1)
	}
}

func (c *SimulateCmd) Run(logger *log.Logger) error {
	if len(c.Blinds) != 2 {
		return fmt.Errorf("expected two blind values, got %d", len(c.Blinds))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println(titleStyle.Render(" ♠ ♥ Hold'em Simulator ♦ ♣ "))
	fmt.Println()

	sim := simulator.New(simulator.Config{
		Hands:         c.Hands,
		Tables:        c.Tables,
		Players:       c.Players,
		SmallBlind:    c.Blinds[0],
		BigBlind:      c.Blinds[1],
		StartingChips: c.Chips,
		Seed:          c.Seed,
		Logger:        logger,
	})

	start := time.Now()
	stats, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	low, high := stats.ConfidenceInterval95()

	fmt.Println(headerStyle.Render("Results"))
	printRow("Hands", fmt.Sprintf("%d", stats.Hands))
	printRow("Win rate", fmt.Sprintf("%+.2f bb/hand", stats.Mean()))
	printRow("95% CI", fmt.Sprintf("%+.2f to %+.2f bb/hand", low, high))
	printRow("Std dev", fmt.Sprintf("%.2f bb", stats.StdDev()))
	printRow("Median", fmt.Sprintf("%+.2f bb", stats.Median()))
	printRow("Elapsed", elapsed.Round(time.Millisecond).String())

	fmt.Println()
	fmt.Println(headerStyle.Render("By position"))
	for pos := gto.UTG; pos <= gto.BB; pos++ {
		printRow(pos.String(), fmt.Sprintf("%+.2f bb/hand", stats.PositionMean(pos)))
	}
	return nil
}

func (c *AdviseCmd) Run(logger *log.Logger) error {
	engine := gto.NewEngine(logger)
	adv := advisor.New(engine, logger)

	resp := adv.Advise(advisor.Query{
		Hand:          c.Hand,
		Position:      c.Position,
		FacingAction:  c.Facing,
		PlayersBehind: c.Behind,
		StackBB:       c.StackBB,
	})

	fmt.Println(titleStyle.Render(fmt.Sprintf(" %s on the %s ", c.Hand, c.Position)))
	fmt.Println()
	action := resp.Action
	if resp.Amount > 0 {
		action = fmt.Sprintf("%s to %.1fbb", resp.Action, resp.Amount)
	}
	printRow("Action", action)
	if resp.Frequency < 1 {
		printRow("Frequency", warnStyle.Render(fmt.Sprintf("%.0f%%", resp.Frequency*100)))
	}
	printRow("Hand tier", resp.HandTier)
	printRow("Stack tier", resp.StackTier)
	printRow("Reasoning", resp.Reasoning)
	return nil
}

func printRow(label, value string) {
	fmt.Printf("  %s %s\n", labelStyle.Width(12).Render(label), valueStyle.Render(value))
}
