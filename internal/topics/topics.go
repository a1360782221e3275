// Package topics holds the built-in catalog of space science topics.
package topics

// Topic is one entry in the learning catalog.
type Topic struct {
	ID          int
	Name        string
	Description string
}

// Catalog returns the built-in topics in display order.
func Catalog() []Topic {
	return []Topic{
		{ID: 1, Name: "Black Holes", Description: "Regions where gravity traps even light"},
		{ID: 2, Name: "Planets", Description: "Worlds orbiting the Sun and other stars"},
		{ID: 3, Name: "The Big Bang", Description: "How the universe began"},
		{ID: 4, Name: "Milky Way Galaxy", Description: "Our home in the cosmos"},
		{ID: 5, Name: "Solar System", Description: "The Sun and everything bound to it"},
		{ID: 6, Name: "Stars", Description: "Giant balls of burning plasma"},
		{ID: 7, Name: "Galaxies", Description: "Vast cities of stars, gas and dust"},
		{ID: 8, Name: "Nebulae", Description: "Clouds where stars are born"},
		{ID: 9, Name: "Dark Matter", Description: "The invisible mass shaping the universe"},
		{ID: 10, Name: "Exoplanets", Description: "Planets around distant suns"},
		{ID: 11, Name: "Space Exploration", Description: "Humanity's journey beyond Earth"},
		{ID: 12, Name: "Constellations", Description: "Star patterns in the night sky"},
	}
}

// ByName looks up a catalog topic by exact name. Returns (Topic{}, false)
// when absent.
func ByName(name string) (Topic, bool) {
	for _, t := range Catalog() {
		if t.Name == name {
			return t, true
		}
	}
	return Topic{}, false
}
