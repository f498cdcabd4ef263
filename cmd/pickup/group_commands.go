package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"pickup/client/api"
	"pickup/client/groups"
	"pickup/client/profile"
)

func printGroups(list []api.Group) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSLUG\tMEMBERS")
	for _, g := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", g.ID, g.Name, g.Slug, len(g.Members))
	}
	w.Flush()
}

func groupFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "description"},
	}
}

func groupsCommand() *cli.Command {
	return &cli.Command{
		Name:  "groups",
		Usage: "Browse and manage groups.",
		Subcommands: []*cli.Command{
			{
				Name: "list",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if _, err := s.store.Dispatch(c.Context, groups.LoadGroups(c.Context, s.client)); err != nil {
						return err
					}
					printGroups(s.store.State().Groups)
					return nil
				},
			},
			{
				Name:      "show",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if _, err := s.store.Dispatch(c.Context, groups.LoadGroup(c.Context, s.client, c.Args().First())); err != nil {
						return err
					}
					g := s.store.State().Group
					fmt.Printf("%s (%s)\n%s\nmembers: %d\n", g.Name, g.Slug, g.Description, len(g.Members))
					return nil
				},
			},
			{
				Name:  "create",
				Flags: groupFlags(),
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					g := api.Group{Name: c.String("name"), Description: c.String("description")}
					if _, err := s.store.Dispatch(c.Context, groups.AddGroup(c.Context, s.client, g)); err != nil {
						return err
					}
					created := s.store.State().Group
					fmt.Printf("Created %s (/groups/%s)\n", created.Name, created.ID)
					return nil
				},
			},
			{
				Name:      "update",
				ArgsUsage: "<id>",
				Flags:     groupFlags(),
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					g := api.Group{ID: c.Args().First(), Name: c.String("name"), Description: c.String("description")}
					if _, err := s.store.Dispatch(c.Context, groups.UpdateGroup(c.Context, s.client, g)); err != nil {
						return err
					}
					printGroups(s.store.State().Groups)
					return nil
				},
			},
			{
				Name:      "delete",
				ArgsUsage: "<id>",
				Action: func(c *cli.Context) error {
					s, err := newSession(c)
					if err != nil {
						return err
					}
					if _, err := s.store.Dispatch(c.Context, groups.RemoveGroup(c.Context, s.client, c.Args().First())); err != nil {
						return err
					}
					printGroups(s.store.State().Groups)
					return nil
				},
			},
		},
	}
}

func profilesCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show a user's profile.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Usage: "user id, defaults to the signed-in user"},
		},
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			userID := c.String("user")
			if userID == "" {
				if err := s.requireUser(); err != nil {
					return err
				}
				userID = s.store.State().Auth.User.ID
			}
			resolved, err := s.store.Dispatch(c.Context, profile.QueryProfile(c.Context, s.client, userID))
			if err != nil {
				return err
			}
			list, _ := resolved.Payload.([]api.Profile)
			if len(list) == 0 {
				return fmt.Errorf("no profile for user %s", userID)
			}
			if _, err := s.store.Dispatch(c.Context, profile.LoadUserProfile(c.Context, s.client, list[0].ID)); err != nil {
				return err
			}
			p := s.store.State().Profile
			fmt.Printf("%s\n%s\nactivities: %v\n", p.Name, p.Bio, p.Activities)
			return nil
		},
	}
}
