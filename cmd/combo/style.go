package main

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/lazharichir/pokerreview/domain/hands"
)

func printResult(opts options, result hands.Result) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: cardsBox("BOARD", opts.board)}, {Data: cardsBox("HAND", opts.hand)}},
		{{Data: resultBox(result)}},
	}).Render()
}

func cardsBox(title string, notations []string) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	content := "-"
	if len(notations) > 0 {
		content = strings.Join(notations, " ")
	}
	return pbox.WithTitle(title).WithTitleTopLeft().Sprint(pterm.BgGreen.Sprint(content))
}

func resultBox(result hands.Result) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(10).WithTopPadding(1).WithBottomPadding(1)
	combination := result.Combination()
	return pbox.WithTitle(pterm.LightGreen("|"+combination.String()+"|")).WithTitleTopCenter().Sprintf(
		"%s\nStrength: %d\n", result.SortedCards().String(), combination.Strength())
}
