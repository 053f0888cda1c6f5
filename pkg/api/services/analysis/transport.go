package analysis

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/api/endpointutil"
	"github.com/sagea-ai/reasonet-web-sub000/internal/api/transportutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/request"
)

type GetRequest struct {
	Req *request.AnalysisID
}

func makeGetEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, reqI interface{}) (resp interface{}, err error) {
		req := reqI.(GetRequest)

		if err = endpointutil.Error(ctx); err != nil {
			return nil, err
		}

		rc := endpointutil.RequestContext(ctx).(*request.AnonymousContext)
		req.Req.FillLogContext(rc.Lctx)

		defer func() {
			if rerr := recover(); rerr != nil {
				rc.Log.Errorf("Panic occurred: %s", rerr)
				err = fmt.Errorf("panic: %s", rerr)
			}
		}()

		return svc.Get(rc, req.Req)
	}
}

func decodeGetRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req GetRequest
	if err := transportutil.DecodeRequest(&req, r); err != nil {
		return nil, errors.Wrap(err, "can't decode request")
	}

	return req, nil
}

func RegisterHandlers(svc Service, regCtx *transportutil.HandlerRegContext) {
	hctx := endpointutil.HandlerRegContext{
		Log:        regCtx.Log,
		ErrTracker: regCtx.ErrTracker,
		Cfg:        regCtx.Cfg,
		DB:         regCtx.DB,
	}

	handler := httptransport.NewServer(
		makeGetEndpoint(svc),
		decodeGetRequest,
		transportutil.EncodeJSONResponse,
		httptransport.ServerBefore(transportutil.StoreHTTPRequestToContext),
		httptransport.ServerBefore(transportutil.MakeStoreAnonymousRequestContext(hctx)),
		httptransport.ServerErrorEncoder(transportutil.EncodeError),
		httptransport.ServerFinalizer(transportutil.FinalizeRequest),
	)
	regCtx.Router.Methods(http.MethodGet).Path("/v1/analyses/{analysis_id}").Handler(handler)
}
