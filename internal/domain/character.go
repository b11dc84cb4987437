package domain

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Well-known gender values in the dataset. The field is open-ended, so any
// other string is passed through untouched.
const (
	GenderMale          = "male"
	GenderFemale        = "female"
	GenderNotApplicable = "n/a"
	GenderHermaphrodite = "hermaphrodite"
	GenderNone          = "none"

	// GenderAll is the filter sentinel that matches every record
	GenderAll = "all"
)

// Character is one record of the people collection.
// Name doubles as the identity key; the dataset does not guarantee uniqueness.
type Character struct {
	Name      string   // Display name and lookup key
	Gender    string   // See Gender* constants
	Films     []string // Film resource URLs
	Height    string   // Centimeters, "unknown" when missing
	Mass      string   // Kilograms, "unknown" when missing
	HairColor string
	SkinColor string
	EyeColor  string
	BirthYear string // e.g. "19BBY"
	Homeworld string // Planet resource URL
	URL       string // Canonical resource URL
}

// FilmCount returns the number of films the character appears in
func (c Character) FilmCount() int {
	return len(c.Films)
}

// FilmsLabel returns the list-column rendering of the film count
func (c Character) FilmsLabel() string {
	return fmt.Sprintf("%d films", c.FilmCount())
}

// HeightLabel returns the height with its unit, or the raw value when it is not numeric
func (c Character) HeightLabel() string {
	if c.Height == "" || c.Height == "unknown" {
		return "unknown"
	}
	return c.Height + " cm"
}

// MassLabel returns the mass with its unit, or the raw value when it is not numeric
func (c Character) MassLabel() string {
	if c.Mass == "" || c.Mass == "unknown" {
		return "unknown"
	}
	return c.Mass + " kg"
}

// Field is one labeled line of the detail card
type Field struct {
	Label string
	Value string
}

// Fields returns the detail card lines in display order
func (c Character) Fields() []Field {
	return []Field{
		{Label: "Height", Value: c.HeightLabel()},
		{Label: "Mass", Value: c.MassLabel()},
		{Label: "Birth Year", Value: orUnknown(c.BirthYear)},
		{Label: "Gender", Value: orUnknown(c.Gender)},
		{Label: "Hair Color", Value: orUnknown(c.HairColor)},
		{Label: "Skin Color", Value: orUnknown(c.SkinColor)},
		{Label: "Eye Color", Value: orUnknown(c.EyeColor)},
		{Label: "Films", Value: c.FilmsLabel()},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

// GenderLabel returns the display label for a gender value
func GenderLabel(gender string) string {
	if gender == "" {
		return "Unknown"
	}
	return cases.Title(language.English).String(gender)
}
