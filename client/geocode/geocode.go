// Package geocode defines the address lookup the event form depends on.
package geocode

import (
	"context"
	stderrors "errors"
	"sort"
	"strings"
)

type LatLng struct {
	Lat float64
	Lng float64
}

type Result struct {
	FormattedAddress string
	Location         LatLng
}

type Suggestion struct {
	Description   string
	MainText      string
	SecondaryText string
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]Result, error)
	Suggest(ctx context.Context, input string) ([]Suggestion, error)
}

// StatusError carries a provider status such as ZERO_RESULTS.
type StatusError struct {
	Status string
}

func (e *StatusError) Error() string {
	return "geocode: " + e.Status
}

var ErrZeroResults = &StatusError{Status: "ZERO_RESULTS"}

// Status returns the provider status of err, or its message.
func Status(err error) string {
	var se *StatusError
	if stderrors.As(err, &se) {
		return se.Status
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Fixed resolves addresses from a static table. Lookups ignore case.
type Fixed struct {
	places map[string]Result
}

func NewFixed(places map[string]LatLng) *Fixed {
	f := &Fixed{places: make(map[string]Result, len(places))}
	for addr, ll := range places {
		f.places[strings.ToLower(addr)] = Result{FormattedAddress: addr, Location: ll}
	}
	return f
}

func (f *Fixed) Geocode(_ context.Context, address string) ([]Result, error) {
	r, ok := f.places[strings.ToLower(strings.TrimSpace(address))]
	if !ok {
		return nil, ErrZeroResults
	}
	return []Result{r}, nil
}

func (f *Fixed) Suggest(_ context.Context, input string) ([]Suggestion, error) {
	needle := strings.ToLower(strings.TrimSpace(input))
	var out []Suggestion
	for key, r := range f.places {
		if !strings.Contains(key, needle) {
			continue
		}
		main, secondary, _ := strings.Cut(r.FormattedAddress, ",")
		out = append(out, Suggestion{
			Description:   r.FormattedAddress,
			MainText:      strings.TrimSpace(main),
			SecondaryText: strings.TrimSpace(secondary),
		})
	}
	if len(out) == 0 {
		return nil, ErrZeroResults
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Description < out[j].Description })
	return out, nil
}
