package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigServiceTestSuite struct {
	ServiceTestSuite
}

func TestConfigService(t *testing.T) {
	suite.Run(t, new(ConfigServiceTestSuite))
}

func (s *ConfigServiceTestSuite) TestSeedsDefaults() {
	all, err := s.config.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 5)

	currency, err := s.config.Currency(s.ctx)
	s.Require().NoError(err)
	s.Equal("USD", currency)

	path, err := s.config.AttachmentsPath(s.ctx)
	s.Require().NoError(err)
	s.Equal("./attachments", path)
}

func (s *ConfigServiceTestSuite) TestSetAndGet() {
	_, err := s.config.Set(s.ctx, ConfigKeyCompanyName, "Atelier Studio")
	s.Require().NoError(err)

	value, err := s.config.Get(s.ctx, ConfigKeyCompanyName)
	s.Require().NoError(err)
	s.Equal("Atelier Studio", value)
}

func (s *ConfigServiceTestSuite) TestSetRequiresKey() {
	_, err := s.config.Set(s.ctx, "", "anything")
	s.ErrorContains(err, "key is required")
}

func (s *ConfigServiceTestSuite) TestGetUnsetKey() {
	value, err := s.config.Get(s.ctx, "nonexistent")
	s.NoError(err)
	s.Equal("", value)
}

func (s *ConfigServiceTestSuite) TestGetNumber() {
	_, err := s.config.Set(s.ctx, ConfigKeyTaxRate, "0.21")
	s.Require().NoError(err)

	rate, err := s.config.TaxRate(s.ctx)
	s.Require().NoError(err)
	s.InDelta(0.21, rate, 1e-9)

	// Unset and unparseable values fall back
	n, err := s.config.GetNumber(s.ctx, "nonexistent", 42)
	s.Require().NoError(err)
	s.InDelta(42, n, 1e-9)

	_, err = s.config.Set(s.ctx, ConfigKeyTaxRate, "not a number")
	s.Require().NoError(err)
	n, err = s.config.GetNumber(s.ctx, ConfigKeyTaxRate, 0.1)
	s.Require().NoError(err)
	s.InDelta(0.1, n, 1e-9)
}

func (s *ConfigServiceTestSuite) TestDelete() {
	removed, err := s.config.Delete(s.ctx, ConfigKeyCompanyEmail)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.config.Delete(s.ctx, ConfigKeyCompanyEmail)
	s.Require().NoError(err)
	s.False(removed)

	// Derived getters fall back to defaults for deleted keys
	removed, err = s.config.Delete(s.ctx, ConfigKeyCurrency)
	s.Require().NoError(err)
	s.True(removed)
	currency, err := s.config.Currency(s.ctx)
	s.Require().NoError(err)
	s.Equal("USD", currency)
}
