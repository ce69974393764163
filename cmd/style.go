package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/snap/domain/snap"
	"github.com/luca-patrignani/snap/ledger"
)

var (
	redCardStyle   = pterm.NewStyle(pterm.FgRed, pterm.BgWhite, pterm.Bold)
	blackCardStyle = pterm.NewStyle(pterm.FgBlack, pterm.BgWhite, pterm.Bold)
	cardBackStyle  = pterm.NewStyle(pterm.FgWhite, pterm.BgBlue)
)

func cardFace(c *snap.Card) string {
	if c == nil {
		return pterm.Gray(" ·· ")
	}
	face := fmt.Sprintf(" %-3s", c.String())
	if c.IsRed() {
		return redCardStyle.Sprint(face)
	}
	return blackCardStyle.Sprint(face)
}

// cellLabel names the sprite cell a graphical renderer would draw.
func cellLabel(idx int) string {
	return pterm.Gray(fmt.Sprintf("#%02d", idx))
}

// boxed renders body in pbox under the given title. pterm cannot draw a
// title wider than the box, so narrow lines are centred on a width that
// leaves room for it.
func boxed(pbox *pterm.BoxPrinter, title, body string) string {
	minWidth := runewidth.StringWidth(pterm.RemoveColorFromString(title)) + 4 - pbox.LeftPadding - pbox.RightPadding
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if w := runewidth.StringWidth(pterm.RemoveColorFromString(line)); w < minWidth {
			left := (minWidth - w) / 2
			lines[i] = strings.Repeat(" ", left) + line + strings.Repeat(" ", minWidth-w-left)
		}
	}
	return pbox.WithTitle(title).Sprint(strings.Join(lines, "\n"))
}

func cardPanel(title string, c *snap.Card) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1).WithTitleTopCenter()
	body := cardFace(c)
	if c != nil {
		body += "\n" + cellLabel(c.DisplayIndex())
	}
	return pterm.Panel{Data: boxed(pbox, title, body)}
}

func deckPanel(remaining int) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1).WithTitleTopCenter()
	body := cardBackStyle.Sprint(" ▓▓ ") + "\n" + cellLabel(snap.CardBackIndex)
	if remaining == 0 {
		body = pterm.Gray(" -- ")
	}
	return pterm.Panel{Data: boxed(pbox, "Deck "+strconv.Itoa(remaining), body)}
}

func scorePanel(g *snap.Game) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).WithTitleTopLeft()
	var status string
	switch {
	case g.IsStarted() && !g.CardsRemain():
		status = pterm.LightYellow("No cards left")
	case g.IsStarted():
		status = pterm.LightGreen("Playing")
	default:
		status = pterm.LightRed("Press SPACE to start")
	}
	body := fmt.Sprintf("Player 1 score: %d\nPlayer 2 score: %d\nFlip every %s\n%s",
		g.Score(0), g.Score(1), g.FlipTime(), status)
	return pterm.Panel{Data: boxed(pbox, "|SCORE|", body)}
}

func hitPanel(res snap.HitResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).WithTitleTopCenter()
	name := pterm.LightCyan("Player " + strconv.Itoa(res.Player+1))
	var text, title string
	switch res.Outcome {
	case snap.OutcomeSnap:
		title = pterm.LightGreen("|SNAP!|")
		text = pterm.Sprintf("%s called it: +1", name)
	default:
		title = pterm.LightRed("|MISS|")
		if res.Active {
			text = pterm.Sprintf("%s hit too early: -1", name)
		} else {
			text = pterm.Sprintf("%s hit with no round running: -1", name)
		}
	}
	return pterm.Panel{Data: boxed(pbox, title, text)}
}

func historyTable(rounds []ledger.Block) (string, error) {
	data := pterm.TableData{{"#", "Player", "Outcome", "Window", "Score"}}
	for _, b := range rounds {
		r := b.Round
		window := r.Newer
		if r.Older != "" {
			window = r.Older + " " + r.Newer
		}
		data = append(data, []string{
			strconv.Itoa(b.Index),
			strconv.Itoa(r.Player + 1),
			r.Outcome,
			window,
			fmt.Sprintf("%d : %d", r.Score0, r.Score1),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// renderState draws the whole table: window, deck, scores, the last hit and
// the most recent rounds.
func renderState(t *table) (string, error) {
	w := t.game.Window()
	cards := []pterm.Panel{
		deckPanel(t.game.Remaining()),
		cardPanel("Previous", w.Older),
		cardPanel("Top", w.Newer),
	}
	dashboard := []pterm.Panel{scorePanel(t.game)}
	if t.lastHit != nil {
		dashboard = append(dashboard, hitPanel(*t.lastHit))
	}
	out, err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		cards,
		dashboard,
	}).Srender()
	if err != nil {
		return "", err
	}

	if t.history > 0 && t.ledger.Len() > 0 {
		hist, err := historyTable(t.ledger.Rounds(t.history))
		if err != nil {
			return "", err
		}
		out += "\n" + hist
	}
	if t.logs != nil {
		for _, line := range t.logs.Lines() {
			out += "\n" + line
		}
	}
	return out + "\n" + pterm.Gray("SPACE start · P player 1 snap · Q player 2 snap · ESC quit"), nil
}
