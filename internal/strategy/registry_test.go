package strategy

import (
	"encoding/json"
	"testing"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) TestNames() {
	suite.Equal([]string{NameEMAMACDTrailing, NameTurtleTPSL}, Names())
}

func (suite *RegistryTestSuite) TestGet() {
	definition, err := Get(NameTurtleTPSL)
	suite.Require().NoError(err)
	suite.Equal(NameTurtleTPSL, definition.Name)
	suite.Equal(DefaultEMAMACDParams(), definition.DefaultParams)
	suite.NotNil(definition.Step)

	_, err = Get("grid")
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyNotFound))
}

func (suite *RegistryTestSuite) TestBindRejectsInvalidParams() {
	definition, err := Get(NameEMAMACDTrailing)
	suite.Require().NoError(err)

	_, err = definition.Bind(EMAMACDParams{})
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *RegistryTestSuite) TestParamsSchema() {
	definition, err := Get(NameEMAMACDTrailing)
	suite.Require().NoError(err)

	schema, err := definition.ParamsSchema()
	suite.Require().NoError(err)

	var parsed map[string]any
	suite.Require().NoError(json.Unmarshal([]byte(schema), &parsed))

	properties, ok := parsed["properties"].(map[string]any)
	suite.Require().True(ok)
	suite.Contains(properties, "ema")
	suite.Contains(properties, "fast")
	suite.Contains(properties, "slow")
	suite.Contains(properties, "signal")
}
