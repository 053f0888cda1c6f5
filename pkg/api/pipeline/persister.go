package pipeline

import (
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/db/gormdb"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
)

var ErrRaceCondition = errors.New("analysis was changed in parallel")

// Persister owns analysis status transitions and result rows.
type Persister struct {
	db  *gorm.DB
	log logutil.Log
	now func() time.Time
}

func NewPersister(db *gorm.DB, log logutil.Log) *Persister {
	return &Persister{
		db:  db,
		log: log,
		now: time.Now,
	}
}

func (p Persister) CreatePending(a *models.Analysis) error {
	a.Status = models.AnalysisStatusPending
	if err := p.db.Create(a).Error; err != nil {
		return errors.Wrapf(err, "failed to create analysis for repo %d", a.RepositoryID)
	}

	return nil
}

// Transition moves a to the next status if nobody changed its status in between.
// update modifies a copy of the options blob that's stored with the status.
func (p Persister) Transition(a *models.Analysis, to models.AnalysisStatus, update func(o *models.Options)) error {
	if !a.Status.CanTransitionTo(to) {
		return errors.Errorf("invalid analysis %d transition %s -> %s", a.ID, a.Status, to)
	}

	opts := a.Options
	if update != nil {
		update(&opts)
	}

	fields := map[string]interface{}{
		"status":  to,
		"options": opts,
	}
	var completedAt *time.Time
	if to.IsTerminal() {
		t := p.now().UTC()
		completedAt = &t
		fields["completed_at"] = completedAt
	}

	res := p.db.Model(&models.Analysis{}).
		Where("id = ? AND status = ?", a.ID, a.Status).
		Updates(fields)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "failed to update analysis %d status to %s", a.ID, to)
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrRaceCondition, "analysis %d isn't %s anymore", a.ID, a.Status)
	}

	p.log.Infof("Analysis %d: %s -> %s", a.ID, a.Status, to)
	a.Status = to
	a.Options = opts
	if completedAt != nil {
		a.CompletedAt = completedAt
	}
	return nil
}

// SaveResults inserts all findings in one transaction. No findings is a
// valid result and inserts nothing.
func (p Persister) SaveResults(analysisID uint, findings []analyzers.Finding) (int, error) {
	if len(findings) == 0 {
		return 0, nil
	}

	err := gormdb.InTx(p.db, func(tx *gorm.DB) error {
		for _, f := range findings {
			res := p.resultFromFinding(analysisID, f)
			if err := tx.Create(res).Error; err != nil {
				return errors.Wrapf(err, "failed to save result %q", f.Title)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(findings), nil
}

func (p Persister) resultFromFinding(analysisID uint, f analyzers.Finding) *models.AnalysisResult {
	severity := f.Severity
	if !severity.IsValid() {
		p.log.Infof("Unknown severity %q of finding %q, using %s", f.Severity, f.Title, models.SeverityInfo)
		severity = models.SeverityInfo
	}

	lineEnd := f.LineEnd
	if lineEnd < f.LineStart {
		lineEnd = f.LineStart
	}

	return &models.AnalysisResult{
		AnalysisID:  analysisID,
		Kind:        f.Kind,
		Severity:    severity,
		Title:       f.Title,
		Description: f.Description,
		FilePath:    f.FilePath,
		LineStart:   f.LineStart,
		LineEnd:     lineEnd,
		CodeSnippet: f.CodeSnippet,
		Status:      models.ResolutionStatusOpen,
	}
}
