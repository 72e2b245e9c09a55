package taglist_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/pkg/taglist"
)

type TagListTestSuite struct {
	suite.Suite
}

func TestTagListSuite(t *testing.T) {
	suite.Run(t, new(TagListTestSuite))
}

func (s *TagListTestSuite) TestAddAppendsTrimmed() {
	inputs := []string{"Sword", "  Sword  ", "\tRope\n", "two words ", "Sword"}
	for _, raw := range inputs {
		s.Run(fmt.Sprintf("%q", raw), func() {
			list := character.Tags{"Torch", "Sword"}
			out := taglist.Add(list, raw)

			s.Assert().Len(out, len(list)+1)
			s.Assert().Equal(strings.TrimSpace(raw), out[len(out)-1])
			s.Assert().Equal(list, out[:len(list)])
		})
	}
}

func (s *TagListTestSuite) TestAddIgnoresBlankInput() {
	for _, raw := range []string{"", " ", "\t\n", "   "} {
		list := character.Tags{"Torch"}
		out := taglist.Add(list, raw)
		s.Assert().Equal(character.Tags{"Torch"}, out)
	}
}

func (s *TagListTestSuite) TestAddDoesNotMutateInput() {
	list := make(character.Tags, 1, 8)
	list[0] = "Torch"

	a := taglist.Add(list, "Rope")
	b := taglist.Add(list, "Lamp")

	s.Assert().Equal(character.Tags{"Torch"}, list)
	s.Assert().Equal(character.Tags{"Torch", "Rope"}, a)
	s.Assert().Equal(character.Tags{"Torch", "Lamp"}, b)
}

func (s *TagListTestSuite) TestAddToNilList() {
	var list character.Tags
	s.Assert().Equal(character.Tags{"Sword"}, taglist.Add(list, " Sword"))
}

func (s *TagListTestSuite) TestRemovePreservesOrder() {
	list := character.Tags{"a", "b", "c", "b"}
	for i := range list {
		s.Run(fmt.Sprintf("index %d", i), func() {
			out := taglist.Remove(list, i)

			s.Assert().Len(out, len(list)-1)
			expected := append(append(character.Tags{}, list[:i]...), list[i+1:]...)
			s.Assert().Equal(expected, out)
			s.Assert().Equal(character.Tags{"a", "b", "c", "b"}, list)
		})
	}
}

func (s *TagListTestSuite) TestRemoveOutOfRangePanics() {
	list := character.Tags{"a"}
	s.Assert().PanicsWithValue("taglist: remove index 1 out of range [0,1)", func() { taglist.Remove(list, 1) })
	s.Assert().Panics(func() { taglist.Remove(list, -1) })
	s.Assert().Panics(func() { taglist.Remove(character.Tags{}, 0) })
}

func (s *TagListTestSuite) TestInRange() {
	list := character.Tags{"a", "b"}
	s.Assert().True(taglist.InRange(list, 1))
	s.Assert().False(taglist.InRange(list, 2))
	s.Assert().False(taglist.InRange(list, -1))
}

func (s *TagListTestSuite) TestInventoryAddBlankRemove() {
	inventory := character.NewDraft().Inventory

	inventory = taglist.Add(inventory, "  Sword  ")
	s.Assert().Equal(character.Tags{"Sword"}, inventory)

	inventory = taglist.Add(inventory, "   ")
	s.Assert().Equal(character.Tags{"Sword"}, inventory)

	inventory = taglist.Remove(inventory, 0)
	s.Assert().Empty(inventory)
}
