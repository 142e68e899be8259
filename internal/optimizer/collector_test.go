package optimizer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CollectorTestSuite struct {
	suite.Suite
}

func TestCollectorSuite(t *testing.T) {
	suite.Run(t, new(CollectorTestSuite))
}

type scored struct {
	name  string
	score float64
}

func byScore(s scored) float64 {
	return s.score
}

func (suite *CollectorTestSuite) TestKeepsTopK() {
	collector := NewCollector(3, byScore)

	for i, score := range []float64{5, 1, 9, 3, 7, 2} {
		collector.Push(scored{name: string(rune('a' + i)), score: score}, false)
	}

	best := collector.Best()
	suite.Equal([]scored{{"c", 9}, {"e", 7}, {"a", 5}}, best)
	suite.Empty(collector.Errors())
}

func (suite *CollectorTestSuite) TestLengthIsMinOfCapacityAndPushes() {
	testCases := []struct {
		name     string
		capacity int
		pushes   int
		expected int
	}{
		{name: "fewer pushes than capacity", capacity: 5, pushes: 3, expected: 3},
		{name: "exactly capacity", capacity: 5, pushes: 5, expected: 5},
		{name: "more pushes than capacity", capacity: 5, pushes: 40, expected: 5},
		{name: "capacity clamped to one", capacity: 0, pushes: 4, expected: 1},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			collector := NewCollector(tc.capacity, byScore)
			for i := range tc.pushes {
				collector.Push(scored{score: float64(i % 7)}, false)
				collector.Push(scored{score: float64(i % 3)}, true)
			}

			best := collector.Best()
			suite.Len(best, tc.expected)
			suite.Len(collector.Errors(), tc.expected)
			suite.IsNonIncreasing(scores(best))
			suite.IsNonIncreasing(scores(collector.Errors()))
		})
	}
}

func (suite *CollectorTestSuite) TestListsAreIndependent() {
	collector := NewCollector(2, byScore)

	collector.Push(scored{"ok", 10}, false)
	collector.Push(scored{"failed", 100}, true)

	suite.Equal([]scored{{"ok", 10}}, collector.Best())
	suite.Equal([]scored{{"failed", 100}}, collector.Errors())
}

func (suite *CollectorTestSuite) TestEqualScoresKeepPushOrder() {
	collector := NewCollector(3, byScore)

	collector.Push(scored{"first", 1}, false)
	collector.Push(scored{"second", 1}, false)
	collector.Push(scored{"third", 1}, false)
	collector.Push(scored{"fourth", 1}, false)

	suite.Equal([]scored{{"first", 1}, {"second", 1}, {"third", 1}}, collector.Best())
}

func (suite *CollectorTestSuite) TestSnapshotsAreCopies() {
	collector := NewCollector(2, byScore)
	collector.Push(scored{"a", 1}, false)

	best := collector.Best()
	best[0].score = 99

	suite.Equal(1.0, collector.Best()[0].score)
}

func (suite *CollectorTestSuite) TestConcurrentPushes() {
	collector := NewCollector(5, byScore)

	var wg sync.WaitGroup

	for worker := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 250 {
				score := float64(worker*250 + i)
				collector.Push(scored{score: score}, i%10 == 0)
			}
		}()
	}

	wg.Wait()

	best := collector.Best()
	suite.Require().Len(best, 5)
	suite.Equal([]float64{1999, 1998, 1997, 1996, 1995}, scores(best))

	errs := collector.Errors()
	suite.Require().Len(errs, 5)
	suite.Equal([]float64{1990, 1980, 1970, 1960, 1950}, scores(errs))
}

func scores(items []scored) []float64 {
	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = item.score
	}

	return values
}
