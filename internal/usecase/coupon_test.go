//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"catalog-service/internal/infra/memory"
	"catalog-service/internal/pkg/clock"
	"catalog-service/internal/usecase"

	"github.com/stretchr/testify/suite"
)

type CouponUseCaseTestSuite struct {
	suite.Suite
	ctx context.Context
	clk *clock.MockClock
	uc  usecase.CouponUseCase
}

func (s *CouponUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clk = clock.NewMockClock(testStart)
	store := memory.NewStore(s.clk)
	s.uc = usecase.NewCouponUseCase(memory.NewCouponRepository(store))
}

func TestCouponUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CouponUseCaseTestSuite))
}

func (s *CouponUseCaseTestSuite) createParams(code string) usecase.CreateCouponParams {
	return usecase.CreateCouponParams{
		Code:       code,
		Type:       "percent",
		Value:      20,
		ValidFrom:  testStart,
		ValidUntil: testStart.AddDate(0, 1, 0),
	}
}

func (s *CouponUseCaseTestSuite) TestCreate() {
	s.Run("stores the code lowercased", func() {
		created, err := s.uc.Create(s.ctx, s.createParams("SAVE20"))
		s.Require().NoError(err)
		s.Equal("save20", created.Code.String())
		s.Equal(int32(0), created.UsesCount)

		found, err := s.uc.Get(s.ctx, "save20")
		s.Require().NoError(err)
		s.Equal(created.ID, found.ID)
	})

	s.Run("duplicate code conflicts case-insensitively", func() {
		_, err := s.uc.Create(s.ctx, s.createParams("promo1"))
		s.Require().NoError(err)

		_, err = s.uc.Create(s.ctx, s.createParams("PROMO1"))
		s.ErrorIs(err, usecase.ErrCouponAlreadyExists)
	})

	s.Run("rejects malformed payloads", func() {
		bad := s.createParams("ok4code")
		bad.Type = "bogus"
		_, err := s.uc.Create(s.ctx, bad)
		s.ErrorIs(err, usecase.ErrValidation)

		bad = s.createParams("ok4code")
		bad.ValidFrom, bad.ValidUntil = bad.ValidUntil, bad.ValidFrom
		_, err = s.uc.Create(s.ctx, bad)
		s.ErrorIs(err, usecase.ErrValidation)

		_, err = s.uc.Create(s.ctx, s.createParams("x"))
		s.ErrorIs(err, usecase.ErrValidation)
	})
}

func (s *CouponUseCaseTestSuite) TestGet() {
	s.Run("deleted coupon is not found", func() {
		_, err := s.uc.Create(s.ctx, s.createParams("shortliv"))
		s.Require().NoError(err)

		s.Require().NoError(s.uc.Delete(s.ctx, "shortliv"))

		_, err = s.uc.Get(s.ctx, "shortliv")
		s.ErrorIs(err, usecase.ErrCouponNotFound)
	})

	s.Run("malformed code is a validation error", func() {
		_, err := s.uc.Get(s.ctx, "no")
		s.ErrorIs(err, usecase.ErrValidation)
	})
}

func (s *CouponUseCaseTestSuite) TestUpdate() {
	s.Run("applies only provided fields and reports changes", func() {
		created, err := s.uc.Create(s.ctx, s.createParams("tweakme1"))
		s.Require().NoError(err)

		newValue := int64(30)
		updated, changes, err := s.uc.Update(s.ctx, "tweakme1", usecase.UpdateCouponParams{Value: &newValue})
		s.Require().NoError(err)
		s.Equal(int64(30), updated.Value)
		s.Equal(created.Type, updated.Type)
		s.Equal(created.ValidUntil, updated.ValidUntil)
		s.Require().NotNil(updated.UpdatedAt)

		paths := make([]string, 0, len(changes))
		for _, ch := range changes {
			paths = append(paths, ch.Path)
		}
		s.ElementsMatch([]string{"/value", "/updated_at"}, paths)
	})

	s.Run("empty patch is rejected", func() {
		_, err := s.uc.Create(s.ctx, s.createParams("static22"))
		s.Require().NoError(err)

		_, _, err = s.uc.Update(s.ctx, "static22", usecase.UpdateCouponParams{})
		s.ErrorIs(err, usecase.ErrNoFieldsToUpdate)
	})

	s.Run("unknown code is not found", func() {
		v := int64(5)
		_, _, err := s.uc.Update(s.ctx, "ghost123", usecase.UpdateCouponParams{Value: &v})
		s.ErrorIs(err, usecase.ErrCouponNotFound)
	})

	s.Run("one-sided window change cannot invert the stored window", func() {
		created, err := s.uc.Create(s.ctx, s.createParams("windowed"))
		s.Require().NoError(err)

		inverted := created.ValidUntil.Add(time.Hour)
		_, _, err = s.uc.Update(s.ctx, "windowed", usecase.UpdateCouponParams{ValidFrom: &inverted})
		s.ErrorIs(err, usecase.ErrValidation)

		kept, err := s.uc.Get(s.ctx, "windowed")
		s.Require().NoError(err)
		s.Equal(created.ValidFrom, kept.ValidFrom, "rejected update leaves the window untouched")

		earlier := created.ValidFrom.Add(-time.Hour)
		_, _, err = s.uc.Update(s.ctx, "windowed", usecase.UpdateCouponParams{ValidUntil: &earlier})
		s.ErrorIs(err, usecase.ErrValidation)
	})
}

func (s *CouponUseCaseTestSuite) TestList() {
	expiredUntil := testStart.Add(-time.Hour)
	active := s.createParams("active01")
	expired := s.createParams("expired2")
	expired.ValidFrom = testStart.Add(-48 * time.Hour)
	expired.ValidUntil = expiredUntil

	_, err := s.uc.Create(s.ctx, active)
	s.Require().NoError(err)
	_, err = s.uc.Create(s.ctx, expired)
	s.Require().NoError(err)

	s.Run("is_active filters against the current clock", func() {
		isActive := true
		list, err := s.uc.List(s.ctx, usecase.ListCouponsParams{IsActive: &isActive})
		s.Require().NoError(err)
		s.Require().Len(list.Items, 1)
		s.Equal("active01", list.Items[0].Code.String())

		isActive = false
		list, err = s.uc.List(s.ctx, usecase.ListCouponsParams{IsActive: &isActive})
		s.Require().NoError(err)
		s.Require().Len(list.Items, 1)
		s.Equal("expired2", list.Items[0].Code.String())
	})

	s.Run("search matches code substring", func() {
		search := "ACTIVE"
		list, err := s.uc.List(s.ctx, usecase.ListCouponsParams{Search: &search})
		s.Require().NoError(err)
		s.Require().Len(list.Items, 1)
		s.Equal("active01", list.Items[0].Code.String())
	})
}
