package abilities_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/coldtimes/MapFantasai/internal/engine/abilities"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
)

// scriptedRoller returns preset dice in order
type scriptedRoller struct {
	sets [][]int
	err  error
}

func (r *scriptedRoller) Roll(_ int) (int, error) { return 1, r.err }

func (r *scriptedRoller) RollN(_, _ int) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	next := r.sets[0]
	r.sets = r.sets[1:]
	return next, nil
}

type RollerTestSuite struct {
	suite.Suite
}

func TestRollerSuite(t *testing.T) {
	suite.Run(t, new(RollerTestSuite))
}

func (s *RollerTestSuite) TestRollAllDropsLowest() {
	roller := abilities.NewRoller(&scriptedRoller{sets: [][]int{
		{6, 6, 6, 1},
		{3, 4, 5, 2},
		{1, 1, 1, 1},
		{2, 6, 2, 5},
		{4, 4, 4, 4},
		{5, 1, 6, 3},
	}})

	rolls, err := roller.RollAll()
	s.Require().NoError(err)
	s.Require().Len(rolls, 6)

	totals := []int{18, 12, 3, 13, 12, 14}
	for i, roll := range rolls {
		s.Assert().Equal(character.Abilities()[i], roll.Ability)
		s.Assert().Equal(totals[i], roll.Total, roll.String())
	}
	s.Assert().Equal(1, rolls[0].Dropped)
	s.Assert().Equal([]int{6, 6, 6, 1}, rolls[0].Dice)
}

func (s *RollerTestSuite) TestRollAllPropagatesErrors() {
	roller := abilities.NewRoller(&scriptedRoller{err: stderrors.New("entropy exhausted")})

	rolls, err := roller.RollAll()
	s.Assert().Nil(rolls)
	s.Assert().ErrorContains(err, "failed to roll strength")
}

func (s *RollerTestSuite) TestRollAllRejectsShortRolls() {
	roller := abilities.NewRoller(&scriptedRoller{sets: [][]int{{6, 6}}})

	_, err := roller.RollAll()
	s.Assert().ErrorContains(err, "rolled 2 dice for strength")
}

func (s *RollerTestSuite) TestDefaultRoller() {
	rolls, err := abilities.NewRoller(nil).RollAll()
	s.Require().NoError(err)
	for _, roll := range rolls {
		s.Assert().GreaterOrEqual(roll.Total, 3)
		s.Assert().LessOrEqual(roll.Total, 18)
	}
}
