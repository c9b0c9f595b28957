package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	ServiceTestSuite
}

func TestClientService(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}

func (s *ClientServiceTestSuite) TestCreate() {
	client, err := s.clients.Create(s.ctx, ClientCreate{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Discord: "ada#0001",
	})
	s.Require().NoError(err)
	s.NotZero(client.ID)
	s.Equal("Ada Lovelace", client.Name)
	s.Equal("ada#0001", client.Discord)
}

func (s *ClientServiceTestSuite) TestCreateValidation() {
	_, err := s.clients.Create(s.ctx, ClientCreate{Email: "ada@example.com"})
	s.ErrorContains(err, "name is required")

	_, err = s.clients.Create(s.ctx, ClientCreate{Name: "Ada Lovelace"})
	s.ErrorContains(err, "email is required")
}

func (s *ClientServiceTestSuite) TestUpdate() {
	client, err := s.clients.Create(s.ctx, ClientCreate{Name: "Ada Lovelace", Email: "ada@example.com"})
	s.Require().NoError(err)

	updated, err := s.clients.Update(s.ctx, client.ID, ClientUpdate{
		Phone: strPtr("+44 20 7946 0123"),
	})
	s.Require().NoError(err)
	s.Equal("+44 20 7946 0123", updated.Phone)
	s.Equal("Ada Lovelace", updated.Name)
}

func (s *ClientServiceTestSuite) TestUpdateValidation() {
	client, err := s.clients.Create(s.ctx, ClientCreate{Name: "Ada Lovelace", Email: "ada@example.com"})
	s.Require().NoError(err)

	_, err = s.clients.Update(s.ctx, client.ID, ClientUpdate{Name: strPtr("")})
	s.ErrorContains(err, "name is required")

	_, err = s.clients.Update(s.ctx, client.ID, ClientUpdate{Email: strPtr("")})
	s.ErrorContains(err, "email is required")
}

func (s *ClientServiceTestSuite) TestUpdateMissing() {
	client, err := s.clients.Update(s.ctx, 999, ClientUpdate{Name: strPtr("Ghost")})
	s.NoError(err)
	s.Nil(client)
}

func (s *ClientServiceTestSuite) TestSearch() {
	_, err := s.clients.Create(s.ctx, ClientCreate{Name: "Ada Lovelace", Email: "ada@example.com"})
	s.Require().NoError(err)
	_, err = s.clients.Create(s.ctx, ClientCreate{Name: "Grace Hopper", Email: "grace@navy.mil"})
	s.Require().NoError(err)

	found, err := s.clients.Search(s.ctx, "lovelace")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("Ada Lovelace", found[0].Name)
}

func (s *ClientServiceTestSuite) TestDelete() {
	client, err := s.clients.Create(s.ctx, ClientCreate{Name: "Ada Lovelace", Email: "ada@example.com"})
	s.Require().NoError(err)

	removed, err := s.clients.Delete(s.ctx, client.ID)
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.clients.Delete(s.ctx, client.ID)
	s.Require().NoError(err)
	s.False(removed)
}
