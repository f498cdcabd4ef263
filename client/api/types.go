package api

import "time"

type Coords struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type Location struct {
	Name   string `json:"name"`
	Coords Coords `json:"coords"`
}

type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Event struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Location    Location   `json:"location"`
	Time        TimeWindow `json:"time"`
	Host        []string   `json:"host,omitempty"`
	Attendance  []string   `json:"attendance,omitempty"`
	Group       []string   `json:"group,omitempty"`
}

type Group struct {
	ID          string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Description string   `json:"description"`
	Members     []string `json:"members,omitempty"`
}

type Profile struct {
	ID         string   `json:"_id,omitempty"`
	User       string   `json:"user,omitempty"`
	Name       string   `json:"name"`
	Bio        string   `json:"bio"`
	Activities []string `json:"activities"`
}

type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}
