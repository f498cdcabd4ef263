// Package eventform is the create/edit event form: field state, address
// geocoding and submission through the store.
package eventform

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"pickup/client/api"
	"pickup/client/app"
	"pickup/client/events"
	"pickup/client/geocode"
	"pickup/client/profile"
	"pickup/client/store"
	"pickup/core/activity"
	"pickup/core/errors"
	"pickup/core/logger"
)

type Phase int

const (
	Editing Phase = iota
	Geocoding
	Resolved
	GeocodeError
	Submitted
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "editing-fields"
	case Geocoding:
		return "geocoding-in-progress"
	case Resolved:
		return "geocode-resolved"
	case GeocodeError:
		return "geocode-error"
	case Submitted:
		return "submitted-redirect"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

const (
	FieldEventName   = "eventName"
	FieldDescription = "description"
	FieldType        = "type"
	FieldTimeStart   = "timeStart"
	FieldTimeEnd     = "timeEnd"
)

// minSuggestLength is the shortest input that triggers suggestions.
const minSuggestLength = 3

type Fields struct {
	EventName   string
	Description string
	Type        string
	TimeStart   string
	TimeEnd     string
}

type Snapshot struct {
	Phase        Phase
	Fields       Fields
	Address      string
	Lat          *float64
	Lng          *float64
	Geocoding    bool
	ErrorMessage string
	Suggestions  []geocode.Suggestion
	NewEventID   string
}

// RedirectPath is set once a new event has been created.
func (s Snapshot) RedirectPath() string {
	if s.Phase != Submitted || s.NewEventID == "" {
		return ""
	}
	return "/events/" + s.NewEventID
}

type Store interface {
	Dispatch(ctx context.Context, action store.Action) (store.Action, error)
	State() app.State
}

type API interface {
	events.API
	profile.API
}

type Options struct {
	Editing bool
	ID      string
	GroupID string
}

type Form struct {
	mu    sync.Mutex
	state Snapshot
	seq   int

	store  Store
	client API
	geo    geocode.Geocoder
	opts   Options
}

func New(st Store, client API, geo geocode.Geocoder, opts Options) *Form {
	return &Form{store: st, client: client, geo: geo, opts: opts}
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.state
	s.Suggestions = append([]geocode.Suggestion(nil), f.state.Suggestions...)
	return s
}

// Mount loads the signed-in user's profile. It is a no-op when signed out.
func (f *Form) Mount(ctx context.Context) error {
	user := app.GetUser(f.store.State())
	if user == nil {
		return nil
	}

	resolved, err := f.store.Dispatch(ctx, profile.QueryProfile(ctx, f.client, user.ID))
	if err != nil {
		return err
	}
	list, _ := resolved.Payload.([]api.Profile)
	if len(list) == 0 {
		return errors.NewAppError(errors.ErrNotFound, "no profile for user "+user.ID, nil)
	}

	_, err = f.store.Dispatch(ctx, profile.LoadUserProfile(ctx, f.client, list[0].ID))
	return err
}

func (f *Form) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch name {
	case FieldEventName:
		f.state.Fields.EventName = value
	case FieldDescription:
		f.state.Fields.Description = value
	case FieldType:
		f.state.Fields.Type = value
	case FieldTimeStart:
		f.state.Fields.TimeStart = value
	case FieldTimeEnd:
		f.state.Fields.TimeEnd = value
	default:
		return errors.NewAppError(errors.ErrInvalidInput, "unknown field "+name, nil)
	}
	return nil
}

func (f *Form) SelectType(category string) error {
	if !activity.IsValid(category) {
		return errors.NewAppError(errors.ErrInvalidInput, "unknown activity "+category, nil)
	}
	return f.SetField(FieldType, category)
}

// ChangeAddress records typed text. Coordinates from any earlier selection
// are dropped and a geocode still in flight is ignored when it lands.
func (f *Form) ChangeAddress(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.state.Address = text
	f.state.Lat, f.state.Lng = nil, nil
	f.state.ErrorMessage = ""
	f.state.Geocoding = false
	if f.state.Phase != Submitted {
		f.state.Phase = Editing
	}
}

func (f *Form) Suggest(ctx context.Context, text string) ([]geocode.Suggestion, error) {
	if len(text) < minSuggestLength {
		f.mu.Lock()
		f.state.Suggestions = nil
		f.mu.Unlock()
		return nil, nil
	}

	suggestions, err := f.geo.Suggest(ctx, text)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		status := geocode.Status(err)
		logger.Warn("address suggestions failed", "status", status)
		f.state.ErrorMessage = status
		f.state.Suggestions = nil
		return nil, err
	}
	f.state.Suggestions = suggestions
	return append([]geocode.Suggestion(nil), suggestions...), nil
}

// SelectAddress geocodes the chosen address. The form lock is released while
// the lookup runs so other edits are not blocked.
func (f *Form) SelectAddress(ctx context.Context, text string) error {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	f.state.Address = text
	f.state.Geocoding = true
	f.state.Suggestions = nil
	f.state.Phase = Geocoding
	f.mu.Unlock()

	results, err := f.geo.Geocode(ctx, text)
	if err == nil && len(results) == 0 {
		err = geocode.ErrZeroResults
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		return nil
	}
	f.state.Geocoding = false
	if err != nil {
		logger.Error("geocode failed", err, "address", text)
		f.state.ErrorMessage = geocode.Status(err)
		f.state.Suggestions = nil
		f.state.Phase = GeocodeError
		return err
	}
	lat, lng := results[0].Location.Lat, results[0].Location.Lng
	f.state.Lat, f.state.Lng = &lat, &lng
	f.state.ErrorMessage = ""
	f.state.Phase = Resolved
	return nil
}

// Reset clears the address and coordinates only.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	f.state.Address = ""
	f.state.Lat, f.state.Lng = nil, nil
	f.state.Geocoding = false
	if f.state.Phase != Submitted {
		f.state.Phase = Editing
	}
}

func (f *Form) build() (api.Event, error) {
	f.mu.Lock()
	s := f.state
	f.mu.Unlock()

	start, err := ParseTime(s.Fields.TimeStart)
	if err != nil {
		return api.Event{}, errors.NewAppError(errors.ErrInvalidInput, "invalid start time", err)
	}
	end, err := ParseTime(s.Fields.TimeEnd)
	if err != nil {
		return api.Event{}, errors.NewAppError(errors.ErrInvalidInput, "invalid end time", err)
	}

	return api.Event{
		Name:        s.Fields.EventName,
		Description: s.Fields.Description,
		Type:        s.Fields.Type,
		Location: api.Location{
			Name:   s.Address,
			Coords: api.Coords{Lat: s.Lat, Lng: s.Lng},
		},
		Time: api.TimeWindow{Start: start, End: end},
	}, nil
}

// Submit sends the form. In edit mode it dispatches an update for the
// configured id; otherwise it creates the event hosted by the loaded profile
// and moves to Submitted with the new id.
func (f *Form) Submit(ctx context.Context) (api.Event, error) {
	ev, err := f.build()
	if err != nil {
		return api.Event{}, err
	}

	if f.opts.Editing {
		ev.ID = f.opts.ID
		_, err := f.store.Dispatch(ctx, events.UpdateEvent(ctx, f.client, ev))
		return ev, err
	}

	p := app.GetUserProfile(f.store.State())
	if p.ID == "" {
		return api.Event{}, errors.NewAppError(errors.ErrUnauthorized, "profile not loaded", nil)
	}
	ev.Host = []string{p.ID}
	ev.Attendance = []string{p.ID}
	if f.opts.GroupID != "" {
		ev.Group = []string{f.opts.GroupID}
	}

	resolved, err := f.store.Dispatch(ctx, events.AddEvent(ctx, f.client, ev))
	if err != nil {
		return api.Event{}, err
	}
	created, ok := resolved.Payload.(api.Event)
	if !ok {
		return api.Event{}, errors.NewAppError(errors.ErrUpstream, fmt.Sprintf("unexpected payload %T", resolved.Payload), nil)
	}

	f.mu.Lock()
	f.state.NewEventID = created.ID
	f.state.Phase = Submitted
	f.mu.Unlock()
	return created, nil
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"01/02/2006 15:04",
	"01/02/2006 3:04 PM",
	"2006-01-02",
}

// ParseTime accepts the date formats people type into the time fields.
// Layouts without a zone are read as local time.
func ParseTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, text, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", text)
}
