package swapi

import (
	"slices"

	"github.com/mmcdole/datapad/internal/domain"
)

// MapCharacters converts API people to domain characters, preserving order
func MapCharacters(people []Person) []domain.Character {
	characters := make([]domain.Character, 0, len(people))
	for _, p := range people {
		characters = append(characters, MapCharacter(p))
	}
	return characters
}

// MapCharacter converts a single API person to a domain character
func MapCharacter(p Person) domain.Character {
	return domain.Character{
		Name:      p.Name,
		Gender:    p.Gender,
		Films:     slices.Clone(p.Films),
		Height:    p.Height,
		Mass:      p.Mass,
		HairColor: p.HairColor,
		SkinColor: p.SkinColor,
		EyeColor:  p.EyeColor,
		BirthYear: p.BirthYear,
		Homeworld: p.Homeworld,
		URL:       p.URL,
	}
}
