package transportutil

import (
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
)

type HandlerRegContext struct {
	Router     *mux.Router
	Log        logutil.Log
	ErrTracker apperrors.Tracker
	Cfg        config.Config
	DB         *gorm.DB
}
