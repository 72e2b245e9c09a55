package abilities

import (
	"fmt"
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

const (
	// diceRolled and dieSize give the 4d6 of the standard method
	diceRolled = 4
	dieSize    = 6
)

// Roll is one rolled ability score
type Roll struct {
	Ability character.Ability
	Dice    []int
	Dropped int
	Total   int
}

// Roller rolls ability scores with 4d6, dropping the lowest die
type Roller struct {
	roller dice.Roller
}

// NewRoller creates a Roller. A nil dice roller uses the toolkit default.
func NewRoller(roller dice.Roller) *Roller {
	if roller == nil {
		roller = dice.DefaultRoller
	}
	return &Roller{roller: roller}
}

// RollAll rolls one score for every ability, in serialization order
func (r *Roller) RollAll() ([]Roll, error) {
	rolls := make([]Roll, 0, len(character.Abilities()))
	for _, a := range character.Abilities() {
		results, err := r.roller.RollN(diceRolled, dieSize)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s", a)
		}
		if len(results) != diceRolled {
			return nil, errors.Internalf("rolled %d dice for %s, expected %d", len(results), a, diceRolled)
		}

		sorted := slices.Clone(results)
		slices.Sort(sorted)
		total := 0
		for _, d := range sorted[1:] {
			total += d
		}

		rolls = append(rolls, Roll{
			Ability: a,
			Dice:    results,
			Dropped: sorted[0],
			Total:   total,
		})
	}
	return rolls, nil
}

func (r Roll) String() string {
	return fmt.Sprintf("%s: %v drop %d = %d", r.Ability, r.Dice, r.Dropped, r.Total)
}
