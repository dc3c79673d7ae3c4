package facts

import "math/rand/v2"

// All is the fixed trivia list the banner draws from.
var All = [...]string{
	"Did you know? One million Earths could fit inside the Sun!",
	"Did you know? A day on Venus is longer than a year on Venus.",
	"Did you know? Neutron stars can spin 600 times per second.",
	"Did you know? There are more trees on Earth than stars in the Milky Way.",
	"Did you know? The footprints on the Moon will be there for millions of years.",
	"Did you know? Jupiter has 95 known moons as of 2024.",
	"Did you know? Space is completely silent, there's no air for sound to travel.",
	"Did you know? The hottest planet in our solar system is Venus.",
	"Did you know? Saturn would float if you could put it in water.",
	"Did you know? The largest volcano in the solar system is on Mars: Olympus Mons.",
}

// Random picks one fact uniformly at random.
func Random() string {
	return All[rand.IntN(len(All))]
}

// Pick picks one fact using r.
func Pick(r *rand.Rand) string {
	return All[r.IntN(len(All))]
}
