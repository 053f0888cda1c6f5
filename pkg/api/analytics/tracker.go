package analytics

import (
	"context"

	"github.com/dukex/mixpanel"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/config"
	"github.com/sagea-ai/reasonet-web-sub000/internal/shared/logutil"
	"github.com/savaki/amplitude-go"
)

type EventName string

const EventPRAnalyzed EventName = "PR analyzed"

type Tracker interface {
	Track(ctx context.Context, distinctID string, event EventName, props map[string]interface{})
}

type NopTracker struct{}

func (NopTracker) Track(context.Context, string, EventName, map[string]interface{}) {}

type amplitudeMixpanelTracker struct {
	amplitude *amplitude.Client
	mixpanel  mixpanel.Mixpanel
	log       logutil.Log
}

// NewTracker sends events to the configured services, NopTracker if none is.
func NewTracker(cfg config.Config, log logutil.Log) Tracker {
	t := amplitudeMixpanelTracker{log: log}
	if key := cfg.GetString("AMPLITUDE_API_KEY"); key != "" {
		t.amplitude = amplitude.New(key)
	}
	if key := cfg.GetString("MIXPANEL_API_KEY"); key != "" {
		t.mixpanel = mixpanel.New(key, "")
	}

	if t.amplitude == nil && t.mixpanel == nil {
		return NopTracker{}
	}
	return t
}

func (t amplitudeMixpanelTracker) Track(ctx context.Context, distinctID string, eventName EventName,
	props map[string]interface{}) {

	t.log.Infof("track event %s with props %+v", eventName, props)

	if t.amplitude != nil {
		ev := amplitude.Event{
			UserId:          distinctID,
			EventType:       string(eventName),
			EventProperties: props,
		}
		if err := t.amplitude.Publish(ev); err != nil {
			t.log.Warnf("Can't publish %+v to amplitude: %s", ev, err)
		}
	}

	if t.mixpanel != nil {
		const ip = "0" // don't auto-detect
		ev := &mixpanel.Event{
			IP:         ip,
			Properties: props,
		}
		if err := t.mixpanel.Track(distinctID, string(eventName), ev); err != nil {
			t.log.Warnf("Can't publish event %s (%+v) to mixpanel: %s", string(eventName), ev, err)
		}
	}
}
