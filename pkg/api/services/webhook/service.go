package webhook

import (
	"github.com/pkg/errors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/apperrors"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/outcome"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/request"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/returntypes"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/router"
	"github.com/sagea-ai/reasonet-web-sub000/pkg/api/signature"
	uuid "github.com/satori/go.uuid"
)

type GithubWebhook struct {
	EventType    string `request:"X-GitHub-Event,header,optional"`
	DeliveryGUID string `request:"X-GitHub-Delivery,header,optional"`
	Signature    string `request:"X-Hub-Signature-256,header,optional"`
}

func (w GithubWebhook) FillLogContext(lctx logutil.Context) {
	lctx["event_type"] = w.EventType
	lctx["delivery_guid"] = w.DeliveryGUID
}

type Service interface {
	//url:/v1/webhooks/github method:POST
	HandleGithubWebhook(rc *request.AnonymousContext, req *GithubWebhook, body request.Body) (*returntypes.WebhookAck, error)
}

type BasicService struct {
	Secret []byte
	Router router.Router
}

func (s BasicService) HandleGithubWebhook(rc *request.AnonymousContext, req *GithubWebhook,
	body request.Body) (*returntypes.WebhookAck, error) {

	if !signature.Verify(s.Secret, body, req.Signature) {
		rc.Log.Warnf("Rejected %s webhook with invalid signature", req.EventType)
		return nil, errors.Wrap(apperrors.ErrUnauthorized, "invalid webhook signature")
	}

	if req.EventType == "" {
		return nil, errors.Wrap(apperrors.ErrBadRequest, "no X-GitHub-Event header")
	}
	if req.DeliveryGUID == "" {
		req.DeliveryGUID = uuid.NewV4().String()
	}
	req.FillLogContext(rc.Lctx)

	err := s.Router.Route(rc.Ctx, &router.Delivery{
		Event:   req.EventType,
		GUID:    req.DeliveryGUID,
		Payload: body,
	})

	ack := &returntypes.WebhookAck{
		DeliveryGUID: req.DeliveryGUID,
		Outcome:      outcome.KindOf(err).String(),
		Stage:        outcome.StageOf(err),
	}

	switch outcome.KindOf(err) {
	case outcome.OK:
		return ack, nil
	case outcome.Dropped:
		rc.Log.Infof("Ignored webhook: %s", err)
	case outcome.Fatal:
		rc.Log.Warnf("Analysis failed: %s", err)
	case outcome.Degraded:
		rc.Log.Infof("Webhook handled with degraded outcome: %s", err)
	case outcome.Rejected:
		return nil, err
	default:
		return nil, errors.Wrapf(err, "failed to handle github %s webhook", req.EventType)
	}

	ack.Message = err.Error()
	return ack, nil
}
