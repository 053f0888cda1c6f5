package analysis

import (
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/request"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/returntypes"
)

type Service interface {
	//url:/v1/analyses/{analysis_id} method:GET
	Get(rc *request.AnonymousContext, req *request.AnalysisID) (*returntypes.WrappedAnalysis, error)
}

type BasicService struct{}

func (s BasicService) Get(rc *request.AnonymousContext, req *request.AnalysisID) (*returntypes.WrappedAnalysis, error) {
	var a models.Analysis
	if err := rc.DB.First(&a, req.AnalysisID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, errors.Wrapf(apperrors.ErrNotFound, "no analysis %d", req.AnalysisID)
		}
		return nil, errors.Wrapf(err, "failed to fetch analysis %d", req.AnalysisID)
	}

	// the repository may be already removed from the installation
	var repo models.Repository
	if err := rc.DB.Unscoped().First(&repo, a.RepositoryID).Error; err != nil && !gorm.IsRecordNotFoundError(err) {
		return nil, errors.Wrapf(err, "failed to fetch repository %d", a.RepositoryID)
	}

	var results []models.AnalysisResult
	if err := rc.DB.Where("analysis_id = ?", a.ID).Order("id").Find(&results).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to fetch results of analysis %d", a.ID)
	}

	ret := returntypes.Analysis{
		ID:                a.ID,
		Name:              a.Name,
		Status:            string(a.Status),
		Type:              string(a.Type),
		RepositoryName:    repo.FullName,
		PullRequestNumber: a.PullRequestNumber,
		Branch:            a.Branch,
		CommitSHA:         a.CommitSHA,
		DeliveryGUID:      a.DeliveryGUID,
		Options:           a.Options,
		CreatedAt:         a.CreatedAt,
		CompletedAt:       a.CompletedAt,
		Results:           []returntypes.AnalysisResult{},
	}
	for _, r := range results {
		ret.Results = append(ret.Results, returntypes.AnalysisResult{
			ID:          r.ID,
			Kind:        string(r.Kind),
			Severity:    string(r.Severity),
			Title:       r.Title,
			Description: r.Description,
			FilePath:    r.FilePath,
			LineStart:   r.LineStart,
			LineEnd:     r.LineEnd,
			CodeSnippet: r.CodeSnippet,
			Status:      string(r.Status),
		})
	}

	return &returntypes.WrappedAnalysis{Analysis: ret}, nil
}
