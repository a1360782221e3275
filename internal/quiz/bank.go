package quiz

// DefaultStandardCount is the number of questions drawn from the bank
// for a standard quiz.
const DefaultStandardCount = 10

// DefaultCustomCount is the number of questions requested from the
// Synthesizer for a quiz built from a saved explanation.
const DefaultCustomCount = 4

// AstronomyBank returns the hand-authored astronomy question pool.
// A fresh copy is returned on every call so callers may shuffle freely.
func AstronomyBank() []Question {
	return []Question{
		{
			ID:           1,
			Prompt:       "What is the largest planet in our solar system?",
			Options:      []string{"Earth", "Jupiter", "Saturn", "Mars"},
			CorrectIndex: 1,
			Rationale:    "Jupiter is the largest planet in our solar system, with a mass greater than all other planets combined.",
		},
		{
			ID:           2,
			Prompt:       "How many moons does Earth have?",
			Options:      []string{"0", "1", "2", "3"},
			CorrectIndex: 1,
			Rationale:    "Earth has one natural satellite, the Moon, which orbits our planet approximately every 27.3 days.",
		},
		{
			ID:           3,
			Prompt:       "What is the closest star to Earth (other than the Sun)?",
			Options:      []string{"Alpha Centauri", "Proxima Centauri", "Sirius", "Vega"},
			CorrectIndex: 1,
			Rationale:    "Proxima Centauri is the closest star to Earth at about 4.24 light-years away.",
		},
		{
			ID:           4,
			Prompt:       "Which galaxy is Earth located in?",
			Options:      []string{"Andromeda Galaxy", "Whirlpool Galaxy", "Milky Way Galaxy", "Triangulum Galaxy"},
			CorrectIndex: 2,
			Rationale:    "Earth is located in the Milky Way Galaxy, a barred spiral galaxy containing billions of stars.",
		},
		{
			ID:     5,
			Prompt: "What causes the phases of the Moon?",
			Options: []string{
				"Earth's shadow on the Moon",
				"The Moon's changing position relative to Earth and Sun",
				"Clouds covering the Moon",
				"The Moon rotating on its axis",
			},
			CorrectIndex: 1,
			Rationale:    "Moon phases are caused by the changing positions of the Moon, Earth, and Sun, which affects how much of the Moon's illuminated side we can see.",
		},
		{
			ID:     6,
			Prompt: "What is a black hole?",
			Options: []string{
				"A hole in space",
				"A region where gravity is so strong that nothing can escape",
				"A dark planet",
				"An empty area between galaxies",
			},
			CorrectIndex: 1,
			Rationale:    "A black hole is a region of spacetime where gravity is so strong that nothing, not even light, can escape once it crosses the event horizon.",
		},
		{
			ID:           7,
			Prompt:       "How long does it take for light from the Sun to reach Earth?",
			Options:      []string{"8 minutes", "1 hour", "1 day", "Instantly"},
			CorrectIndex: 0,
			Rationale:    "Light from the Sun takes approximately 8 minutes and 20 seconds to travel the 93 million miles to Earth.",
		},
		{
			ID:           8,
			Prompt:       "What is the hottest planet in our solar system?",
			Options:      []string{"Mercury", "Venus", "Mars", "Jupiter"},
			CorrectIndex: 1,
			Rationale:    "Venus is the hottest planet due to its thick atmosphere that traps heat, with surface temperatures around 900°F (475°C).",
		},
		{
			ID:     9,
			Prompt: "What causes a supernova?",
			Options: []string{
				"A planet exploding",
				"Two stars colliding",
				"A massive star running out of fuel and collapsing",
				"A comet hitting a star",
			},
			CorrectIndex: 2,
			Rationale:    "A supernova occurs when a massive star exhausts its nuclear fuel and collapses under its own gravity, then explodes outward.",
		},
		{
			ID:     10,
			Prompt: "What is the Great Red Spot on Jupiter?",
			Options: []string{
				"A volcano",
				"A giant storm",
				"A moon shadow",
				"An impact crater",
			},
			CorrectIndex: 1,
			Rationale:    "The Great Red Spot is a giant storm on Jupiter that has been raging for hundreds of years and is larger than Earth.",
		},
		{
			ID:           11,
			Prompt:       "Which planet has the most extensive ring system?",
			Options:      []string{"Jupiter", "Saturn", "Uranus", "Neptune"},
			CorrectIndex: 1,
			Rationale:    "Saturn has the most extensive and visible ring system, made up of countless ice and rock particles.",
		},
		{
			ID:           12,
			Prompt:       "What is the main component of the Sun?",
			Options:      []string{"Helium", "Hydrogen", "Oxygen", "Carbon"},
			CorrectIndex: 1,
			Rationale:    "The Sun is primarily composed of hydrogen (about 73%) which is converted to helium through nuclear fusion in its core.",
		},
		{
			ID:           13,
			Prompt:       "How many planets are in our solar system?",
			Options:      []string{"7", "8", "9", "10"},
			CorrectIndex: 1,
			Rationale:    "There are 8 planets in our solar system: Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, and Neptune.",
		},
		{
			ID:     14,
			Prompt: "What is a light-year?",
			Options: []string{
				"The time it takes light to travel one year",
				"The distance light travels in one year",
				"The age of starlight",
				"A unit of time in space",
			},
			CorrectIndex: 1,
			Rationale:    "A light-year is the distance that light travels in one year, approximately 6 trillion miles or 9.5 trillion kilometers.",
		},
		{
			ID:     15,
			Prompt: "What creates the beautiful colors in nebulae?",
			Options: []string{
				"Different colored stars",
				"Glowing gases excited by nearby stars",
				"Reflected sunlight",
				"Space dust",
			},
			CorrectIndex: 1,
			Rationale:    "Nebulae get their colors from gases that glow when energized by radiation from nearby hot stars. Different gases produce different colors.",
		},
	}
}

// StandardQuestions samples count questions from the astronomy bank
// without replacement. Requesting more than the bank holds returns the
// whole bank, shuffled. A nil rng selects the process-wide generator.
func StandardQuestions(rng Rand, count int) []Question {
	if rng == nil {
		rng = SystemRand()
	}
	if count < 0 {
		count = 0
	}
	bank := AstronomyBank()
	rng.Shuffle(len(bank), func(i, j int) { bank[i], bank[j] = bank[j], bank[i] })
	if count < len(bank) {
		bank = bank[:count]
	}
	return bank
}
