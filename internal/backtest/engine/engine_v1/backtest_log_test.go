package engine

import (
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/stretchr/testify/suite"
)

type BacktestLogTestSuite struct {
	suite.Suite
	log *BacktestLog
}

func TestBacktestLogSuite(t *testing.T) {
	suite.Run(t, new(BacktestLogTestSuite))
}

func (suite *BacktestLogTestSuite) SetupTest() {
	suite.log = NewBacktestLog()
}

func (suite *BacktestLogTestSuite) TestAppendKeepsInsertionOrder() {
	order := types.NewOrder(types.OrderSideBuy, 100, 1, types.TakeProfitAndStopLoss(110, 90))
	position := types.NewPositionFromOrder(1, order, 1, 0)

	suite.log.Append(types.NewOrderEvent(types.EventTypeAddOrder, 0, order))
	suite.log.Append(types.NewAddPositionEvent(1, position))
	suite.log.Append(types.NewDelPositionEvent(2, position, 110, 10, 0))

	events := suite.log.Events()
	suite.Require().Len(events, 3)
	suite.Equal(types.EventTypeAddOrder, events[0].Type)
	suite.Equal(types.EventTypeAddPosition, events[1].Type)
	suite.Equal(types.EventTypeDelPosition, events[2].Type)
	suite.Equal(2, events[2].Index)
	suite.Equal(10.0, events[2].Profit)
}

func (suite *BacktestLogTestSuite) TestEventsReturnsCopy() {
	order := types.NewOrder(types.OrderSideBuy, 100, 1, types.TakeProfitAndStopLoss(110, 90))
	suite.log.Append(types.NewOrderEvent(types.EventTypeAddOrder, 0, order))

	events := suite.log.Events()
	events[0].Index = 42

	suite.Equal(0, suite.log.Events()[0].Index)
}

func (suite *BacktestLogTestSuite) TestFilter() {
	order := types.NewOrder(types.OrderSideBuy, 100, 1, types.TakeProfitAndStopLoss(110, 90))
	suite.log.Append(types.NewOrderEvent(types.EventTypeAddOrder, 0, order))
	suite.log.Append(types.NewOrderEvent(types.EventTypeDelOrder, 1, order))
	suite.log.Append(types.NewOrderEvent(types.EventTypeAddOrder, 2, order))

	suite.Len(suite.log.Filter(types.EventTypeAddOrder), 2)
	suite.Len(suite.log.Filter(types.EventTypeDelOrder), 1)
	suite.Empty(suite.log.Filter(types.EventTypeDelPosition))
}

func (suite *BacktestLogTestSuite) TestClear() {
	order := types.NewOrder(types.OrderSideBuy, 100, 1, types.TakeProfitAndStopLoss(110, 90))
	suite.log.Append(types.NewOrderEvent(types.EventTypeAddOrder, 0, order))
	suite.Equal(1, suite.log.Len())

	suite.log.Clear()
	suite.Equal(0, suite.log.Len())
	suite.Empty(suite.log.Events())
}
