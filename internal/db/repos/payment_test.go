package repos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type PaymentRepositoryTestSuite struct {
	RepositoryTestSuite
}

func TestPaymentRepository(t *testing.T) {
	suite.Run(t, new(PaymentRepositoryTestSuite))
}

func (s *PaymentRepositoryTestSuite) TestCreateAndGet() {
	payment := s.createTestPayment(nil, 100)
	s.NotZero(payment.ID)

	found, err := s.paymentRepo.GetByID(s.ctx, payment.ID)
	s.NoError(err)
	s.Require().NotNil(found)
	s.Equal(payment.Amount, found.Amount)

	found, err = s.paymentRepo.GetByID(s.ctx, 999)
	s.NoError(err)
	s.Nil(found)
}

func (s *PaymentRepositoryTestSuite) TestListByJob() {
	job := s.createTestJob("pending")
	s.createTestPayment(&job.ID, 100)
	s.createTestPayment(&job.ID, 50)
	s.createTestPayment(nil, 25)

	payments, err := s.paymentRepo.ListByJob(s.ctx, job.ID)
	s.NoError(err)
	s.Len(payments, 2)
}

func (s *PaymentRepositoryTestSuite) TestListByCreatedRange() {
	s.createTestPayment(nil, 100)

	now := time.Now()
	payments, err := s.paymentRepo.ListByCreatedRange(s.ctx, now.Add(-time.Hour), now.Add(time.Hour))
	s.NoError(err)
	s.Len(payments, 1)

	payments, err = s.paymentRepo.ListByCreatedRange(s.ctx, now.Add(time.Hour), now.Add(2*time.Hour))
	s.NoError(err)
	s.Empty(payments)
}

func (s *PaymentRepositoryTestSuite) TestTotalAmount() {
	// Empty table sums to zero
	total, err := s.paymentRepo.TotalAmount(s.ctx)
	s.NoError(err)
	s.Zero(total)

	s.createTestPayment(nil, 100)
	s.createTestPayment(nil, 150.5)

	total, err = s.paymentRepo.TotalAmount(s.ctx)
	s.NoError(err)
	s.InDelta(250.5, total, 0.001)

	count, err := s.paymentRepo.Count(s.ctx)
	s.NoError(err)
	s.EqualValues(2, count)
}

func (s *PaymentRepositoryTestSuite) TestDelete() {
	payment := s.createTestPayment(nil, 100)

	removed, err := s.paymentRepo.Delete(s.ctx, payment.ID)
	s.NoError(err)
	s.True(removed)

	removed, err = s.paymentRepo.Delete(s.ctx, payment.ID)
	s.NoError(err)
	s.False(removed)
}
