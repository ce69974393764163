package main

import (
	"log/slog"
	"os"
	"time"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/snap/config"
	"github.com/luca-patrignani/snap/domain/deck"
	"github.com/luca-patrignani/snap/domain/snap"
	"github.com/luca-patrignani/snap/ledger"
)

const logLines = 6

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	plog := pterm.DefaultLogger.WithLevel(cfg.LogLevel).WithWriter(os.Stderr)
	logger := slog.New(pterm.NewSlogHandler(plog))

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("nap", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("!", pterm.FgRed.ToStyle()),
	).Render()

	var src deck.Source = deck.NewCryptoSource()
	if cfg.Seed != nil {
		src = deck.NewSeededSource(*cfg.Seed)
		pterm.Info.Printfln("Replaying shuffles with seed %d", *cfg.Seed)
	}
	game, err := snap.NewGame(
		snap.WithSource(src),
		snap.WithFlipTime(cfg.FlipTime),
		snap.WithLogger(logger),
	)
	if err != nil {
		logger.Error("failed to create game", "error", err)
		os.Exit(1)
	}

	// The area owns the screen while the table runs, so log lines are kept
	// and drawn inside it.
	logs := newLogTail(logLines)
	plog.Writer = logs
	history := ledger.NewLedger()
	t := newTable(game, history, logger, logs, cfg.History)
	err = run(t, cfg.FrameInterval())
	plog.Writer = os.Stderr
	if err != nil {
		logger.Error("table closed with error", "error", err)
		os.Exit(1)
	}

	if err := history.Verify(); err != nil {
		logger.Error("round history corrupted", "error", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("Final score  Player 1: %d  Player 2: %d  (%d rounds)", game.Score(0), game.Score(1), history.Len())
}

// run is the frame loop: input first, then drawing, then the game update.
// Keys are read on their own goroutine and handed over through a channel so
// that only this loop touches the game.
func run(t *table, frame time.Duration) error {
	actions := make(chan action, 8)
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- keyboard.Listen(func(key keys.Key) (bool, error) {
			a := actionForKey(key)
			if a == actionNone {
				return false, nil
			}
			actions <- a
			return a == actionQuit, nil
		})
	}()

	area, err := pterm.DefaultArea.Start()
	if err != nil {
		return err
	}
	defer area.Stop()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case err := <-listenErr:
			if err != nil {
				return err
			}
			return nil
		case a := <-actions:
			if t.handle(a) {
				return nil
			}
		case now := <-ticker.C:
			screen, err := renderState(t)
			if err != nil {
				return err
			}
			area.Update(screen)
			t.tick(now.Sub(last))
			last = now
		}
	}
}
