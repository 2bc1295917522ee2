package repository

import (
	"fmt"
	"math/rand"
	"time"
)

func GenerateRandomCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	letters := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	prefix := string(letters[rng.Intn(len(letters))]) + string(letters[rng.Intn(len(letters))])
	number := rng.Intn(90000) + 10000

	return fmt.Sprintf("%s%d", prefix, number)
}

// GenerateProjectReference builds a human-readable project reference,
// e.g. "PRJ-AB12345".
func GenerateProjectReference() string {
	return "PRJ-" + GenerateRandomCode()
}

// GenerateChantierReference builds a chantier reference, e.g. "CH-XY67890".
func GenerateChantierReference() string {
	return "CH-" + GenerateRandomCode()
}

// GenerateQuoteReference builds a quote reference, e.g. "DEV-CD54321".
func GenerateQuoteReference() string {
	return "DEV-" + GenerateRandomCode()
}
