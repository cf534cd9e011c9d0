package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Bluffing", "Limping", "Raising", "Folding", "Checking", "Shoving", "Grinding", "Stacking",
	"Lucky", "Patient", "Fearless", "Crafty", "Tilted", "Steady", "Loose", "Tight",
	"Rivered", "Suited", "Offsuit", "Wired",
}

var animals = []string{
	"Shark", "Fish", "Donkey", "Whale", "Rock", "Maniac", "Otter", "Fox",
	"Wolf", "Owl", "Badger", "Mongoose", "Raccoon", "Viper", "Falcon", "Walrus",
	"Coyote", "Lynx",
}

// GetRandomName returns a random display name by combining an adjective with
// an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
