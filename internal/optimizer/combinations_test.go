package optimizer

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CombinationsTestSuite struct {
	suite.Suite
}

func TestCombinationsSuite(t *testing.T) {
	suite.Run(t, new(CombinationsTestSuite))
}

func (suite *CombinationsTestSuite) TestIntRange() {
	testCases := []struct {
		name     string
		start    int
		end      int
		step     int
		expected []int
	}{
		{name: "inclusive", start: 8, end: 13, step: 1, expected: []int{8, 9, 10, 11, 12, 13}},
		{name: "step skips end", start: 1, end: 10, step: 4, expected: []int{1, 5, 9}},
		{name: "single value", start: 5, end: 5, step: 1, expected: []int{5}},
		{name: "reversed bounds", start: 5, end: 4, step: 1, expected: nil},
		{name: "zero step", start: 1, end: 4, step: 0, expected: nil},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, IntRange(tc.start, tc.end, tc.step))
		})
	}
}

func (suite *CombinationsTestSuite) TestFloatRange() {
	values := FloatRange(0.1, 0.5, 0.1)
	suite.Require().Len(values, 5)
	suite.InDelta(0.5, values[4], 1e-12)

	suite.Equal([]float64{1, 1.5, 2}, FloatRange(1, 2, 0.5))
	suite.Nil(FloatRange(1, 0, 0.5))
	suite.Nil(FloatRange(0, 1, -1))
}

func (suite *CombinationsTestSuite) TestProduct2() {
	pairs := Product2([]int{1, 2}, []string{"a", "b", "c"}, func(n int, s string) string {
		return s + string(rune('0'+n))
	})

	suite.Equal([]string{"a1", "b1", "c1", "a2", "b2", "c2"}, pairs)
}

func (suite *CombinationsTestSuite) TestProduct3() {
	triples := Product3([]int{1, 2}, []int{3}, []int{4, 5}, func(a, b, c int) [3]int {
		return [3]int{a, b, c}
	})

	suite.Equal([][3]int{{1, 3, 4}, {1, 3, 5}, {2, 3, 4}, {2, 3, 5}}, triples)
}

func (suite *CombinationsTestSuite) TestProduct4() {
	r := IntRange(8, 13, 1)
	quads := Product4(r, r, r, r, func(a, b, c, d int) [4]int {
		return [4]int{a, b, c, d}
	})

	suite.Len(quads, 6*6*6*6)
	suite.Equal([4]int{8, 8, 8, 8}, quads[0])
	suite.Equal([4]int{8, 8, 8, 9}, quads[1])
	suite.Equal([4]int{13, 13, 13, 13}, quads[len(quads)-1])

	suite.Empty(Product4(r, r, []int{}, r, func(a, b, c, d int) int { return a }))
}
