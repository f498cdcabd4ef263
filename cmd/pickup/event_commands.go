package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"pickup/client/api"
	"pickup/client/eventform"
	"pickup/client/events"
	"pickup/client/geocode"
	"pickup/core/activity"
)

func printEvents(list []api.Event) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tSTART\tLOCATION")
	for _, e := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Name, e.Type, e.Time.Start.Local().Format("Mon Jan 2 15:04"), e.Location.Name)
	}
	w.Flush()
}

func printEvent(e api.Event) {
	fmt.Printf("%s\n", e.Name)
	fmt.Printf("Activity: %s\n", e.Type)
	fmt.Printf("Description: %s\n", e.Description)
	fmt.Printf("Address: %s\n", e.Location.Name)
	fmt.Printf("Event Start: %s\n", e.Time.Start.Local().Format("Jan 2 2006 15:04"))
	fmt.Printf("Event End: %s\n", e.Time.End.Local().Format("Jan 2 2006 15:04"))
	fmt.Printf("Link: /events/%s\n", e.ID)
}

func eventFormFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "description", Required: true},
		&cli.StringFlag{Name: "type", Required: true, Usage: "one of: " + strings.Join(activity.Categories, ", ")},
		&cli.StringFlag{Name: "start", Required: true, Usage: "e.g. 2026-11-01T10:00"},
		&cli.StringFlag{Name: "end", Required: true},
		&cli.StringFlag{Name: "address"},
		&cli.Float64Flag{Name: "lat"},
		&cli.Float64Flag{Name: "lng"},
		&cli.StringFlag{Name: "group", Usage: "group id to attach the event to"},
	}
}

// fillForm drives the event form from flags. Coordinates come from --lat
// and --lng since there is no places provider in the terminal.
func fillForm(c *cli.Context, f *eventform.Form) error {
	fields := map[string]string{
		eventform.FieldEventName:   c.String("name"),
		eventform.FieldDescription: c.String("description"),
		eventform.FieldTimeStart:   c.String("start"),
		eventform.FieldTimeEnd:     c.String("end"),
	}
	for name, value := range fields {
		if err := f.SetField(name, value); err != nil {
			return err
		}
	}
	if err := f.SelectType(c.String("type")); err != nil {
		return err
	}

	address := c.String("address")
	if address == "" {
		return nil
	}
	if c.IsSet("lat") && c.IsSet("lng") {
		return f.SelectAddress(c.Context, address)
	}
	f.ChangeAddress(address)
	return nil
}

func flagGeocoder(c *cli.Context) geocode.Geocoder {
	places := map[string]geocode.LatLng{}
	if c.IsSet("lat") && c.IsSet("lng") && c.String("address") != "" {
		places[c.String("address")] = geocode.LatLng{Lat: c.Float64("lat"), Lng: c.Float64("lng")}
	}
	return geocode.NewFixed(places)
}

func eventsCommand() *cli.Command {
	return &cli.Command{
		Name:  "events",
		Usage: "Browse and manage events.",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List upcoming events.",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if _, err := s.store.Dispatch(c.Context, events.LoadEvents(c.Context, s.client)); err != nil {
						return err
					}
					printEvents(s.store.State().Events)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Show one event.",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if _, err := s.store.Dispatch(c.Context, events.LoadEvent(c.Context, s.client, c.Args().First())); err != nil {
						return err
					}
					printEvent(s.store.State().Event)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create an event hosted by your profile.",
				Flags: eventFormFlags(),
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if err := s.requireUser(); err != nil {
						return err
					}
					form := eventform.New(s.store, s.client, flagGeocoder(c), eventform.Options{GroupID: c.String("group")})
					if err := form.Mount(c.Context); err != nil {
						return err
					}
					if err := fillForm(c, form); err != nil {
						return err
					}
					created, err := form.Submit(c.Context)
					if err != nil {
						return err
					}
					fmt.Printf("Created %s (%s)\n", created.Name, form.Snapshot().RedirectPath())
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Replace an event you host.",
				ArgsUsage: "<id>",
				Flags:     eventFormFlags(),
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if err := s.requireUser(); err != nil {
						return err
					}
					form := eventform.New(s.store, s.client, flagGeocoder(c), eventform.Options{Editing: true, ID: c.Args().First()})
					if err := fillForm(c, form); err != nil {
						return err
					}
					if _, err := form.Submit(c.Context); err != nil {
						return err
					}
					printEvents(s.store.State().Events)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete an event you host.",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if _, err := s.store.Dispatch(c.Context, events.RemoveEvent(c.Context, s.client, c.Args().First())); err != nil {
						return err
					}
					printEvents(s.store.State().Events)
					return nil
				},
			},
		},
	}
}
