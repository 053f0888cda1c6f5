package staler

import (
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/pipeline"
)

const (
	DefaultTimeout = 30 * time.Minute
	TimeoutError   = "processing timeout"
)

type Staler struct {
	Cfg       config.Config
	DB        *gorm.DB
	Log       logutil.Log
	Persister *pipeline.Persister
}

func (r Staler) Timeout() time.Duration {
	return r.Cfg.GetDuration("ANALYSIS_STALE_TIMEOUT", DefaultTimeout)
}

func (r Staler) Run() {
	timeout := r.Timeout()
	for range time.Tick(timeout / 2) {
		if _, err := r.RunIteration(time.Now(), timeout); err != nil {
			r.Log.Warnf("Can't check stale analyzes: %s", err)
			continue
		}
	}
}

// RunIteration fails PROCESSING analyses not updated for timeout.
// It returns the number of analyses it failed.
func (r Staler) RunIteration(now time.Time, timeout time.Duration) (int, error) {
	deadline := now.Add(-timeout)

	var pending int
	err := r.DB.Model(&models.Analysis{}).
		Where("status = ? AND updated_at < ?", models.AnalysisStatusPending, deadline).
		Count(&pending).Error
	if err != nil {
		return 0, errors.Wrap(err, "can't count pending analyzes")
	}
	if pending != 0 {
		r.Log.Warnf("Staler: %d analyzes are PENDING for more than %s", pending, timeout)
	}

	var analyzes []models.Analysis
	err = r.DB.Where("status = ? AND updated_at < ?", models.AnalysisStatusProcessing, deadline).
		Order("id").
		Find(&analyzes).Error
	if err != nil {
		return 0, errors.Wrap(err, "can't get stale analyzes")
	}

	fixed := 0
	for i := range analyzes {
		ok, err := r.updateStaleAnalysis(&analyzes[i])
		if err != nil {
			r.Log.Errorf("Can't update stale analysis %#v: %s", analyzes[i], err)
			continue
		}
		if ok {
			fixed++
		}
	}

	return fixed, nil
}

func (r Staler) isExcluded(repoID uint) (bool, error) {
	excludeRepos := r.Cfg.GetStringList("STALER_EXCLUDE_REPOS")
	if len(excludeRepos) == 0 {
		return false, nil
	}

	var repo models.Repository
	if err := r.DB.Unscoped().First(&repo, repoID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to fetch repo")
	}

	for _, er := range excludeRepos {
		if strings.EqualFold(er, repo.FullName) {
			r.Log.Infof("Staler: exclude repo %s from staling", repo.FullName)
			return true, nil
		}
	}
	return false, nil
}

func (r Staler) updateStaleAnalysis(a *models.Analysis) (bool, error) {
	excluded, err := r.isExcluded(a.RepositoryID)
	if err != nil || excluded {
		return false, err
	}

	err = r.Persister.Transition(a, models.AnalysisStatusFailed, func(o *models.Options) {
		o.Error = TimeoutError
	})
	if err != nil {
		if errors.Cause(err) == pipeline.ErrRaceCondition {
			r.Log.Infof("Staler: analysis %d finished meanwhile", a.ID)
			return false, nil
		}
		return false, errors.Wrap(err, "can't update stale analysis")
	}

	r.Log.Warnf("Fixed stale analysis %#v", *a)
	return true, nil
}
