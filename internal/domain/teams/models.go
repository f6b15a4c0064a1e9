package teams

import (
	"slices"
	"strings"
)

// Team identifies one of the 30 NBA franchises. The string value is the wire value
// used in tool schemas and arguments.
type Team string

const (
	Celtics      Team = "celtics"
	Lakers       Team = "lakers"
	Warriors     Team = "warriors"
	Bulls        Team = "bulls"
	Heat         Team = "heat"
	Bucks        Team = "bucks"
	Nuggets      Team = "nuggets"
	Suns         Team = "suns"
	Sixers       Team = "sixers"
	Knicks       Team = "knicks"
	Nets         Team = "nets"
	Clippers     Team = "clippers"
	Jazz         Team = "jazz"
	Spurs        Team = "spurs"
	Rockets      Team = "rockets"
	Pistons      Team = "pistons"
	Kings        Team = "kings"
	Mavericks    Team = "mavericks"
	Blazers      Team = "blazers"
	Pacers       Team = "pacers"
	Hawks        Team = "hawks"
	Magic        Team = "magic"
	Timberwolves Team = "timberwolves"
	Wizards      Team = "wizards"
	Thunder      Team = "thunder"
	Grizzlies    Team = "grizzlies"
	Pelicans     Team = "pelicans"
	Raptors      Team = "raptors"
	Cavaliers    Team = "cavaliers"
	Hornets      Team = "hornets"
)

var all = []Team{
	Celtics, Lakers, Warriors, Bulls, Heat, Bucks, Nuggets, Suns, Sixers, Knicks,
	Nets, Clippers, Jazz, Spurs, Rockets, Pistons, Kings, Mavericks, Blazers, Pacers,
	Hawks, Magic, Timberwolves, Wizards, Thunder, Grizzlies, Pelicans, Raptors, Cavaliers, Hornets,
}

// All returns every team in declaration order.
func All() []Team {
	return slices.Clone(all)
}

// Values returns the wire values of every team, suitable for schema enums.
func Values() []string {
	out := make([]string, len(all))
	for i, t := range all {
		out[i] = string(t)
	}
	return out
}

// Parse resolves a wire value (case-insensitive, surrounding space ignored).
func Parse(raw string) (Team, bool) {
	t := Team(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// Valid reports whether t is a member of the enumeration.
func (t Team) Valid() bool {
	return slices.Contains(all, t)
}

func (t Team) String() string {
	return string(t)
}

// DisplayName is the nickname used in spoken sentences ("Celtics", "76ers").
func (t Team) DisplayName() string {
	if p, ok := profiles[t]; ok {
		return p.Name
	}
	return string(t)
}

// Profile returns the static franchise details for t.
func (t Team) Profile() (Profile, bool) {
	p, ok := profiles[t]
	return p, ok
}
