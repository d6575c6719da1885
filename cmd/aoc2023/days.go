package main

import (
	"go.uber.org/zap"

	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/calibration"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/cubegame"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/schematic"
	"github.com/ilyalavrinov/justforfun/adventofcode2023/internal/scratchcard"
)

type day struct {
	number int
	title  string
	solve  func(a *app, text string) (int, int, error)
}

var days = []day{
	{number: 1, title: "Trebuchet?!", solve: solveDay1},
	{number: 2, title: "Cube Conundrum", solve: solveDay2},
	{number: 3, title: "Gear Ratios", solve: solveDay3},
	{number: 4, title: "Scratchcards", solve: solveDay4},
}

func solveDay1(_ *app, text string) (int, int, error) {
	part1, err := calibration.Sum(text, calibration.FirstLastDigits)
	if err != nil {
		return 0, 0, err
	}
	part2, err := calibration.Sum(text, calibration.FirstLastSpelled)
	if err != nil {
		return 0, 0, err
	}
	return part1, part2, nil
}

func solveDay2(_ *app, text string) (int, int, error) {
	games, err := cubegame.ParseGames(text)
	if err != nil {
		return 0, 0, err
	}
	return cubegame.PossibleIDSum(games, cubegame.DefaultLimits), cubegame.PowerSum(games), nil
}

func solveDay3(_ *app, text string) (int, int, error) {
	s := schematic.New(text)
	return s.PartNumberSum(), s.GearRatioSum(), nil
}

func solveDay4(a *app, text string) (int, int, error) {
	var cards []scratchcard.Card
	if a.cfg.SkipInvalid {
		var rejected []*scratchcard.ParseError
		cards, rejected = scratchcard.ParseCardsLenient(text)
		for _, perr := range rejected {
			a.logger.Warn("skipping card line", zap.Int("line", perr.LineNo), zap.Error(perr))
		}
	} else {
		var err error
		cards, err = scratchcard.ParseCards(text)
		if err != nil {
			return 0, 0, err
		}
	}

	pile, err := scratchcard.NewPile(cards)
	if err != nil {
		return 0, 0, err
	}
	return scratchcard.TotalScore(cards), pile.Play(), nil
}
