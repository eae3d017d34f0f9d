// Package view renders hands and evaluation results for the terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/special-hands/internal/game/card"
	"github.com/palemoky/special-hands/internal/game/rule"
	"github.com/palemoky/special-hands/internal/ui/common"
)

// RenderHand renders cards as two rows: ranks on top, suits below.
func RenderHand(cards []card.Card) string {
	if len(cards) == 0 {
		return common.BoxStyle.Render(common.MutedStyle("(空手牌)"))
	}

	var rankStr, suitStr strings.Builder
	for _, c := range cards {
		style := common.CardStyle(c).Align(lipgloss.Center).Margin(0, 1)
		if c.IsJoker() {
			rankStr.WriteString(style.Render(c.Rank().String()))
			suitStr.WriteString(style.Render("王"))
			continue
		}
		rankStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Rank().String())))
		suitStr.WriteString(style.Render(fmt.Sprintf("%-2s", c.Suit().String())))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, rankStr.String(), suitStr.String())
	return common.BoxStyle.Render(content)
}

// RenderResult renders the matched pattern, its score and the wildcard bonus.
func RenderResult(result rule.Result) string {
	var sb strings.Builder
	sb.WriteString(common.TitleStyle(fmt.Sprintf("牌型: %s", result.Type)))
	sb.WriteString("\n")
	sb.WriteString(result.Description)
	sb.WriteString("\n")

	score := fmt.Sprintf("得分: %d", result.Score)
	if bonus := result.Score - result.Type.Score(); bonus > 0 {
		score += fmt.Sprintf(" (基础 %d + 王牌 %d)", result.Type.Score(), bonus)
	}
	sb.WriteString(common.ScoreStyle(score))
	return common.BoxStyle.Render(sb.String())
}

// RenderAreaScore renders the itemised area score.
func RenderAreaScore(score rule.AreaScore) string {
	var sb strings.Builder
	sb.WriteString(common.TitleStyle("场地计分"))
	for _, line := range score.Lines {
		sb.WriteString(fmt.Sprintf("\n%s: +%d", line.Reason, line.Points))
	}
	sb.WriteString("\n")
	sb.WriteString(common.ScoreStyle(fmt.Sprintf("合计: %d", score.Total)))
	return common.BoxStyle.Render(sb.String())
}

// RenderEvaluation lays out the hand, the pattern result and the area score.
func RenderEvaluation(cards []card.Card, result rule.Result, area rule.AreaScore) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		RenderHand(cards),
		lipgloss.JoinHorizontal(lipgloss.Top, RenderResult(result), "  ", RenderAreaScore(area)),
	)
	return common.DocStyle.Render(body)
}
