package seed

import (
	"fmt"
	"strings"
)

// Word pools for the synthetic population. Nothing here is load-bearing;
// the pools only need to be large enough that generated records look varied.

var firstNames = []string{
	"Olivia", "Liam", "Emma", "Noah", "Ava", "Ethan", "Sophia", "Mason",
	"Isabella", "Logan", "Mia", "Lucas", "Charlotte", "Jackson", "Amelia",
	"Aiden", "Harper", "Elijah", "Evelyn", "James", "Abigail", "Benjamin",
	"Emily", "Carter", "Ella", "Michael", "Scarlett", "Daniel", "Grace",
	"Henry", "Chloe", "Sebastian", "Priya", "Mateo", "Yuki", "Omar",
	"Ingrid", "Kwame", "Leila", "Dmitri",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
	"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
	"Thompson", "White", "Harris", "Clark", "Lewis", "Walker", "Hall",
	"Nguyen", "Kim", "Patel", "Okafor", "Silva", "Petrov", "Tanaka",
}

var emailDomains = []string{
	"example.com", "mail.test", "inbox.demo", "fastmail.demo",
}

var titleAdjectives = []string{
	"Electric", "Midnight", "Golden", "Neon", "Crimson", "Silver",
	"Infinite", "Radiant", "Velvet", "Cosmic", "Emerald", "Wild",
}

var titleNouns = []string{
	"Summit", "Festival", "Sessions", "Nights", "Experience", "Showcase",
	"Gathering", "Jam", "Carnival", "Expo", "Soundwave", "Circuit",
}

var titleSuffixes = []string{
	"Live", "2026", "Tour", "Weekend", "After Dark", "Unplugged",
}

var descriptionLines = []string{
	"An unforgettable night featuring headline acts from around the world.",
	"Join thousands of fans for a one-of-a-kind live experience.",
	"Food trucks, art installations, and non-stop entertainment.",
	"Doors open one hour before showtime. All ages welcome.",
	"Limited capacity venue with immersive sound and lighting.",
	"Surprise guests announced on the day of the show.",
	"A celebration of music, culture, and community.",
	"Premium bars and lounge areas available throughout the venue.",
}

var cities = []string{
	"Berlin", "Lisbon", "Austin", "Tokyo", "Melbourne", "Toronto",
	"Amsterdam", "Seoul", "Barcelona", "Portland", "Dublin", "Oslo",
}

var countries = []string{
	"Germany", "Portugal", "USA", "Japan", "Australia", "Canada",
	"Netherlands", "South Korea", "Spain", "Ireland", "Norway",
}

func (g *Generator) fullName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

// email derives an address from the name plus an index so generated
// addresses never collide.
func (g *Generator) email(name string, index int) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	domain := emailDomains[g.rng.Intn(len(emailDomains))]
	return fmt.Sprintf("%s%d@%s", local, index, domain)
}

func (g *Generator) avatar() string {
	return fmt.Sprintf("https://i.pravatar.cc/150?img=%d", g.rng.Intn(70))
}

func (g *Generator) eventTitle() string {
	title := titleAdjectives[g.rng.Intn(len(titleAdjectives))] + " " +
		titleNouns[g.rng.Intn(len(titleNouns))]
	if g.rng.Float64() < 0.5 {
		title += " " + titleSuffixes[g.rng.Intn(len(titleSuffixes))]
	}
	return title
}

func (g *Generator) eventDescription() string {
	first := descriptionLines[g.rng.Intn(len(descriptionLines))]
	second := first
	for second == first {
		second = descriptionLines[g.rng.Intn(len(descriptionLines))]
	}
	return first + " " + second
}

func (g *Generator) location() string {
	return cities[g.rng.Intn(len(cities))] + ", " + countries[g.rng.Intn(len(countries))]
}
