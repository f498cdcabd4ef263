package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/oauth2"

	"pickup/client/api"
	"pickup/client/app"
	"pickup/client/auth"
	"pickup/core/logger"
)

func credentialFlags(withName bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"PICKUP_PASSWORD"}},
	}
	if withName {
		flags = append(flags, &cli.StringFlag{Name: "name", Usage: "display name for the new profile"})
	}
	return flags
}

func authenticate(c *cli.Context, signUp bool) error {
	s, err := newSession(c)
	if err != nil {
		return err
	}
	cred := api.Credentials{Email: c.String("email"), Password: c.String("password"), Name: c.String("name")}

	action := auth.SignIn(c.Context, s.client, cred)
	if signUp {
		action = auth.SignUp(c.Context, s.client, cred)
	}
	resolved, err := s.store.Dispatch(c.Context, action)
	if err != nil {
		return err
	}

	sess := resolved.Payload.(api.Session)
	if err := saveToken(c.String("token-file"), &oauth2.Token{AccessToken: sess.Token, TokenType: "Bearer"}); err != nil {
		return err
	}
	logger.Info("signed in", "user", sess.User.ID)
	fmt.Printf("Signed in as %s\n", sess.User.Email)
	return nil
}

func signInCommand() *cli.Command {
	return &cli.Command{
		Name:   "signin",
		Usage:  "Sign in and store the session token.",
		Flags:  credentialFlags(false),
		Action: func(c *cli.Context) error { return authenticate(c, false) },
	}
}

func signUpCommand() *cli.Command {
	return &cli.Command{
		Name:   "signup",
		Usage:  "Create an account and sign in.",
		Flags:  credentialFlags(true),
		Action: func(c *cli.Context) error { return authenticate(c, true) },
	}
}

func signOutCommand() *cli.Command {
	return &cli.Command{
		Name:  "signout",
		Usage: "Revoke the stored session token.",
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			if app.GetUser(s.store.State()) != nil {
				if err := s.client.PostSignOut(c.Context); err != nil {
					logger.Warn("server sign out failed", "error", err)
				}
			}
			_, _ = s.store.Dispatch(c.Context, auth.LogoutAction())
			if err := os.Remove(c.String("token-file")); err != nil && !os.IsNotExist(err) {
				return err
			}
			fmt.Println("Signed out")
			return nil
		},
	}
}

func whoAmICommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed-in user.",
		Action: func(c *cli.Context) error {
			s, err := newSession(c)
			if err != nil {
				return err
			}
			if err := s.requireUser(); err != nil {
				return err
			}
			u := app.GetUser(s.store.State())
			fmt.Printf("%s\t%s\n", u.ID, u.Email)
			return nil
		},
	}
}
