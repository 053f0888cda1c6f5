package request

import "github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"

type AnalysisID struct {
	AnalysisID uint `request:"analysis_id,urlPart,"`
}

func (a AnalysisID) FillLogContext(lctx logutil.Context) {
	lctx["analysis_id"] = a.AnalysisID
}
