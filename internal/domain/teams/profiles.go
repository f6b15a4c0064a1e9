package teams

// Profile represents the normalized franchise shape.
type Profile struct {
	ID           Team   `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

// Profiles returns the profile of every team in declaration order.
func Profiles() []Profile {
	out := make([]Profile, 0, len(all))
	for _, t := range all {
		out = append(out, profiles[t])
	}
	return out
}

var profiles = map[Team]Profile{
	Celtics:      {ID: Celtics, Name: "Celtics", FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic"},
	Lakers:       {ID: Lakers, Name: "Lakers", FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific"},
	Warriors:     {ID: Warriors, Name: "Warriors", FullName: "Golden State Warriors", Abbreviation: "GSW", City: "San Francisco", Conference: "West", Division: "Pacific"},
	Bulls:        {ID: Bulls, Name: "Bulls", FullName: "Chicago Bulls", Abbreviation: "CHI", City: "Chicago", Conference: "East", Division: "Central"},
	Heat:         {ID: Heat, Name: "Heat", FullName: "Miami Heat", Abbreviation: "MIA", City: "Miami", Conference: "East", Division: "Southeast"},
	Bucks:        {ID: Bucks, Name: "Bucks", FullName: "Milwaukee Bucks", Abbreviation: "MIL", City: "Milwaukee", Conference: "East", Division: "Central"},
	Nuggets:      {ID: Nuggets, Name: "Nuggets", FullName: "Denver Nuggets", Abbreviation: "DEN", City: "Denver", Conference: "West", Division: "Northwest"},
	Suns:         {ID: Suns, Name: "Suns", FullName: "Phoenix Suns", Abbreviation: "PHX", City: "Phoenix", Conference: "West", Division: "Pacific"},
	Sixers:       {ID: Sixers, Name: "76ers", FullName: "Philadelphia 76ers", Abbreviation: "PHI", City: "Philadelphia", Conference: "East", Division: "Atlantic"},
	Knicks:       {ID: Knicks, Name: "Knicks", FullName: "New York Knicks", Abbreviation: "NYK", City: "New York", Conference: "East", Division: "Atlantic"},
	Nets:         {ID: Nets, Name: "Nets", FullName: "Brooklyn Nets", Abbreviation: "BKN", City: "Brooklyn", Conference: "East", Division: "Atlantic"},
	Clippers:     {ID: Clippers, Name: "Clippers", FullName: "LA Clippers", Abbreviation: "LAC", City: "Los Angeles", Conference: "West", Division: "Pacific"},
	Jazz:         {ID: Jazz, Name: "Jazz", FullName: "Utah Jazz", Abbreviation: "UTA", City: "Salt Lake City", Conference: "West", Division: "Northwest"},
	Spurs:        {ID: Spurs, Name: "Spurs", FullName: "San Antonio Spurs", Abbreviation: "SAS", City: "San Antonio", Conference: "West", Division: "Southwest"},
	Rockets:      {ID: Rockets, Name: "Rockets", FullName: "Houston Rockets", Abbreviation: "HOU", City: "Houston", Conference: "West", Division: "Southwest"},
	Pistons:      {ID: Pistons, Name: "Pistons", FullName: "Detroit Pistons", Abbreviation: "DET", City: "Detroit", Conference: "East", Division: "Central"},
	Kings:        {ID: Kings, Name: "Kings", FullName: "Sacramento Kings", Abbreviation: "SAC", City: "Sacramento", Conference: "West", Division: "Pacific"},
	Mavericks:    {ID: Mavericks, Name: "Mavericks", FullName: "Dallas Mavericks", Abbreviation: "DAL", City: "Dallas", Conference: "West", Division: "Southwest"},
	Blazers:      {ID: Blazers, Name: "Trail Blazers", FullName: "Portland Trail Blazers", Abbreviation: "POR", City: "Portland", Conference: "West", Division: "Northwest"},
	Pacers:       {ID: Pacers, Name: "Pacers", FullName: "Indiana Pacers", Abbreviation: "IND", City: "Indianapolis", Conference: "East", Division: "Central"},
	Hawks:        {ID: Hawks, Name: "Hawks", FullName: "Atlanta Hawks", Abbreviation: "ATL", City: "Atlanta", Conference: "East", Division: "Southeast"},
	Magic:        {ID: Magic, Name: "Magic", FullName: "Orlando Magic", Abbreviation: "ORL", City: "Orlando", Conference: "East", Division: "Southeast"},
	Timberwolves: {ID: Timberwolves, Name: "Timberwolves", FullName: "Minnesota Timberwolves", Abbreviation: "MIN", City: "Minneapolis", Conference: "West", Division: "Northwest"},
	Wizards:      {ID: Wizards, Name: "Wizards", FullName: "Washington Wizards", Abbreviation: "WAS", City: "Washington", Conference: "East", Division: "Southeast"},
	Thunder:      {ID: Thunder, Name: "Thunder", FullName: "Oklahoma City Thunder", Abbreviation: "OKC", City: "Oklahoma City", Conference: "West", Division: "Northwest"},
	Grizzlies:    {ID: Grizzlies, Name: "Grizzlies", FullName: "Memphis Grizzlies", Abbreviation: "MEM", City: "Memphis", Conference: "West", Division: "Southwest"},
	Pelicans:     {ID: Pelicans, Name: "Pelicans", FullName: "New Orleans Pelicans", Abbreviation: "NOP", City: "New Orleans", Conference: "West", Division: "Southwest"},
	Raptors:      {ID: Raptors, Name: "Raptors", FullName: "Toronto Raptors", Abbreviation: "TOR", City: "Toronto", Conference: "East", Division: "Atlantic"},
	Cavaliers:    {ID: Cavaliers, Name: "Cavaliers", FullName: "Cleveland Cavaliers", Abbreviation: "CLE", City: "Cleveland", Conference: "East", Division: "Central"},
	Hornets:      {ID: Hornets, Name: "Hornets", FullName: "Charlotte Hornets", Abbreviation: "CHA", City: "Charlotte", Conference: "East", Division: "Southeast"},
}
