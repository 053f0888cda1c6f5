package pipeline

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/testutil/testdb"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/analyzers"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionLifecycle(t *testing.T) {
	db := testdb.New(t)
	p := NewPersister(db, logutil.NewStderrLog("test"))

	a := &models.Analysis{RepositoryID: 1, PullRequestNumber: 7}
	require.NoError(t, p.CreatePending(a))
	assert.Equal(t, models.AnalysisStatusPending, a.Status)

	require.NoError(t, p.Transition(a, models.AnalysisStatusProcessing, nil))
	require.NoError(t, p.Transition(a, models.AnalysisStatusCompleted, func(o *models.Options) {
		o.Summary = "1 file changed"
	}))
	require.NotNil(t, a.CompletedAt)

	var stored models.Analysis
	require.NoError(t, db.First(&stored, a.ID).Error)
	assert.Equal(t, models.AnalysisStatusCompleted, stored.Status)
	assert.Equal(t, "1 file changed", stored.Options.Summary)
	assert.NotNil(t, stored.CompletedAt)
}

func TestTransitionRejectsInvalidMoves(t *testing.T) {
	p := NewPersister(testdb.New(t), logutil.NewStderrLog("test"))

	a := &models.Analysis{RepositoryID: 1}
	require.NoError(t, p.CreatePending(a))

	assert.Error(t, p.Transition(a, models.AnalysisStatusCompleted, nil))
	require.NoError(t, p.Transition(a, models.AnalysisStatusProcessing, nil))
	require.NoError(t, p.Transition(a, models.AnalysisStatusFailed, nil))
	assert.Error(t, p.Transition(a, models.AnalysisStatusCompleted, nil))
}

func TestTransitionDetectsRace(t *testing.T) {
	db := testdb.New(t)
	p := NewPersister(db, logutil.NewStderrLog("test"))

	a := &models.Analysis{RepositoryID: 1}
	require.NoError(t, p.CreatePending(a))
	require.NoError(t, p.Transition(a, models.AnalysisStatusProcessing, nil))

	stale := *a
	require.NoError(t, p.Transition(a, models.AnalysisStatusFailed, nil))

	err := p.Transition(&stale, models.AnalysisStatusCompleted, nil)
	assert.Equal(t, ErrRaceCondition, errors.Cause(err))

	var stored models.Analysis
	require.NoError(t, db.First(&stored, a.ID).Error)
	assert.Equal(t, models.AnalysisStatusFailed, stored.Status)
}

func TestSaveResultsNormalizesFindings(t *testing.T) {
	db := testdb.New(t)
	p := NewPersister(db, logutil.NewStderrLog("test"))

	n, err := p.SaveResults(5, []analyzers.Finding{
		{Kind: models.ResultKindSecurity, Severity: models.SeverityHigh, Title: "key", FilePath: "a.go", LineStart: 3, LineEnd: 1},
		{Kind: models.ResultKindCodeQuality, Severity: "BLOCKER", Title: "todo", FilePath: "b.go", LineStart: 2, LineEnd: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var results []models.AnalysisResult
	require.NoError(t, db.Order("id").Find(&results).Error)
	require.Len(t, results, 2)

	assert.EqualValues(t, 5, results[0].AnalysisID)
	assert.Equal(t, 3, results[0].LineEnd)
	assert.Equal(t, models.ResolutionStatusOpen, results[0].Status)
	assert.Equal(t, models.SeverityInfo, results[1].Severity)
}

func TestSaveNoResults(t *testing.T) {
	db := testdb.New(t)
	n, err := NewPersister(db, logutil.NewStderrLog("test")).SaveResults(1, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, testdb.Count(t, db, &models.AnalysisResult{}))
}
