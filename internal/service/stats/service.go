// Package stats derives read-only savings figures from the ledger.
package stats

import (
	"go.uber.org/zap"

	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dao/mysql/repository"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/dto/respond"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/internal/model"
	"github.com/stephenkhoza/powerhouse-stokvel-backend/pkg/errorx"
)

// statsService implements service.StatsService.
type statsService struct {
	repos *repository.Repositories
}

// NewStatsService wires the aggregator onto the repository layer.
func NewStatsService(repos *repository.Repositories) *statsService {
	return &statsService{repos: repos}
}

// GetStats sums a member's paid contributions. Pending rows never count.
// Non-admins may only query themselves.
func (s *statsService) GetStats(principal model.Principal, memberID string) (*respond.StatsRespond, error) {
	if !principal.IsAdmin() && principal.ID != memberID {
		return nil, errorx.New(errorx.CodeForbidden, "members can only view their own stats")
	}
	if _, err := s.repos.Member.FindByID(memberID); err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "member not found")
		}
		zap.L().Error("loading member failed", zap.String("memberId", memberID), zap.Error(err))
		return nil, errorx.ErrInternal
	}

	rows, err := s.repos.Contribution.FindByMember(memberID)
	if err != nil {
		zap.L().Error("loading contributions failed", zap.String("memberId", memberID), zap.Error(err))
		return nil, errorx.ErrInternal
	}

	out := &respond.StatsRespond{}
	for _, row := range rows {
		if row.Status != model.ContributionPaid {
			continue
		}
		out.TotalSaved += row.Amount
		out.MonthsContributed++
	}
	// No interest or fee model; the payout estimate equals the total saved.
	out.EstimatedPayout = out.TotalSaved
	return out, nil
}
