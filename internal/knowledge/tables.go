package knowledge

import (
	"maps"
	"slices"

	"github.com/preston-bernstein/nba-stats-agent/internal/domain/players"
	"github.com/preston-bernstein/nba-stats-agent/internal/domain/teams"
)

// SeasonRecord is a team's current win/loss record.
type SeasonRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Tables groups the reference mappings served by a Base.
type Tables struct {
	Championships map[teams.Team]int
	Records       map[teams.Team]SeasonRecord
	Positions     map[players.Position]string
	Legends       map[teams.Team][]string
}

// DefaultTables returns the built-in tables. The maps are shared process-wide and
// must not be modified; use Clone for a mutable copy.
func DefaultTables() Tables {
	return defaultTables
}

// Clone returns a deep copy of t.
func (t Tables) Clone() Tables {
	legends := make(map[teams.Team][]string, len(t.Legends))
	for team, names := range t.Legends {
		legends[team] = slices.Clone(names)
	}
	return Tables{
		Championships: maps.Clone(t.Championships),
		Records:       maps.Clone(t.Records),
		Positions:     maps.Clone(t.Positions),
		Legends:       legends,
	}
}

var defaultTables = Tables{
	Championships: championships,
	Records:       records,
	Positions:     positionDescriptions,
	Legends:       legends,
}

var championships = map[teams.Team]int{
	teams.Celtics:      17,
	teams.Lakers:       17,
	teams.Warriors:     7,
	teams.Bulls:        6,
	teams.Heat:         3,
	teams.Bucks:        2,
	teams.Nuggets:      1,
	teams.Suns:         0,
	teams.Sixers:       3,
	teams.Knicks:       2,
	teams.Nets:         0,
	teams.Clippers:     0,
	teams.Jazz:         0,
	teams.Spurs:        5,
	teams.Rockets:      2,
	teams.Pistons:      3,
	teams.Kings:        1,
	teams.Mavericks:    1,
	teams.Blazers:      1,
	teams.Pacers:       0,
	teams.Hawks:        1,
	teams.Magic:        0,
	teams.Timberwolves: 0,
	teams.Wizards:      1,
	teams.Thunder:      0,
	teams.Grizzlies:    0,
	teams.Pelicans:     0,
	teams.Raptors:      1,
	teams.Cavaliers:    1,
	teams.Hornets:      0,
}

var records = map[teams.Team]SeasonRecord{
	teams.Celtics:      {Wins: 24, Losses: 9},
	teams.Lakers:       {Wins: 18, Losses: 14},
	teams.Warriors:     {Wins: 18, Losses: 16},
	teams.Bulls:        {Wins: 15, Losses: 18},
	teams.Heat:         {Wins: 16, Losses: 14},
	teams.Bucks:        {Wins: 17, Losses: 14},
	teams.Nuggets:      {Wins: 18, Losses: 13},
	teams.Suns:         {Wins: 15, Losses: 17},
	teams.Sixers:       {Wins: 13, Losses: 17},
	teams.Knicks:       {Wins: 23, Losses: 10},
	teams.Nets:         {Wins: 12, Losses: 20},
	teams.Clippers:     {Wins: 19, Losses: 14},
	teams.Jazz:         {Wins: 7, Losses: 24},
	teams.Spurs:        {Wins: 17, Losses: 16},
	teams.Rockets:      {Wins: 21, Losses: 11},
	teams.Pistons:      {Wins: 14, Losses: 18},
	teams.Kings:        {Wins: 14, Losses: 19},
	teams.Mavericks:    {Wins: 20, Losses: 13},
	teams.Blazers:      {Wins: 11, Losses: 21},
	teams.Pacers:       {Wins: 16, Losses: 18},
	teams.Hawks:        {Wins: 18, Losses: 15},
	teams.Magic:        {Wins: 20, Losses: 14},
	teams.Timberwolves: {Wins: 17, Losses: 15},
	teams.Wizards:      {Wins: 5, Losses: 25},
	teams.Thunder:      {Wins: 27, Losses: 5},
	teams.Grizzlies:    {Wins: 23, Losses: 11},
	teams.Pelicans:     {Wins: 5, Losses: 28},
	teams.Raptors:      {Wins: 7, Losses: 26},
	teams.Cavaliers:    {Wins: 29, Losses: 4},
	teams.Hornets:      {Wins: 7, Losses: 25},
}

var positionDescriptions = map[players.Position]string{
	players.PointGuard:    "The point guard is typically the team's primary ball handler and playmaker, responsible for running the offense.",
	players.ShootingGuard: "The shooting guard is usually the team's best perimeter shooter and scorer.",
	players.SmallForward:  "The small forward is a versatile position combining outside shooting with inside play.",
	players.PowerForward:  "The power forward plays near the basket, focusing on rebounding and inside scoring.",
	players.Center:        "The center is typically the tallest player, focusing on defense, rebounding, and scoring close to the basket.",
}

// Display order matters; lists are neither sorted nor deduplicated.
var legends = map[teams.Team][]string{
	teams.Celtics:      {"Larry Bird", "Bill Russell", "Paul Pierce"},
	teams.Lakers:       {"Magic Johnson", "Kobe Bryant", "Kareem Abdul-Jabbar"},
	teams.Warriors:     {"Stephen Curry", "Klay Thompson", "Wilt Chamberlain"},
	teams.Bulls:        {"Michael Jordan", "Scottie Pippen", "Dennis Rodman"},
	teams.Heat:         {"Dwyane Wade", "LeBron James", "Alonzo Mourning"},
	teams.Bucks:        {"Kareem Abdul-Jabbar", "Giannis Antetokounmpo", "Oscar Robertson"},
	teams.Nuggets:      {"Nikola Jokic", "Carmelo Anthony", "Alex English"},
	teams.Suns:         {"Charles Barkley", "Steve Nash", "Devin Booker"},
	teams.Sixers:       {"Allen Iverson", "Julius Erving", "Wilt Chamberlain"},
	teams.Knicks:       {"Patrick Ewing", "Walt Frazier", "Willis Reed"},
	teams.Nets:         {"Jason Kidd", "Vince Carter", "Julius Erving"},
	teams.Clippers:     {"Chris Paul", "Blake Griffin", "Bob McAdoo"},
	teams.Jazz:         {"John Stockton", "Karl Malone", "Adrian Dantley"},
	teams.Spurs:        {"Tim Duncan", "David Robinson", "George Gervin"},
	teams.Rockets:      {"Hakeem Olajuwon", "Clyde Drexler", "James Harden"},
	teams.Pistons:      {"Isiah Thomas", "Joe Dumars", "Ben Wallace"},
	teams.Kings:        {"Chris Webber", "Oscar Robertson", "Mitch Richmond"},
	teams.Mavericks:    {"Dirk Nowitzki", "Steve Nash", "Jason Kidd"},
	teams.Blazers:      {"Clyde Drexler", "Bill Walton", "Damian Lillard"},
	teams.Pacers:       {"Reggie Miller", "Paul George", "Jermaine O'Neal"},
	teams.Hawks:        {"Dominique Wilkins", "Bob Pettit", "Dikembe Mutombo"},
	teams.Magic:        {"Shaquille O'Neal", "Dwight Howard", "Tracy McGrady"},
	teams.Timberwolves: {"Kevin Garnett", "Kevin Love", "Karl-Anthony Towns"},
	teams.Wizards:      {"Michael Jordan", "Wes Unseld", "Elvin Hayes"},
	teams.Thunder:      {"Kevin Durant", "Russell Westbrook", "Gary Payton"},
	teams.Grizzlies:    {"Marc Gasol", "Zach Randolph", "Mike Conley"},
	teams.Pelicans:     {"Anthony Davis", "Chris Paul", "Zion Williamson"},
	teams.Raptors:      {"Vince Carter", "Chris Bosh", "Kyle Lowry"},
	teams.Cavaliers:    {"LeBron James", "Kyrie Irving", "Mark Price"},
	teams.Hornets:      {"Larry Johnson", "Alonzo Mourning", "Kemba Walker"},
}
