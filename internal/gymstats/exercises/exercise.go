package exercises

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Exercise struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Description  string `json:"description,omitempty" db:"description"`
	BodyPartID   string `json:"bodyPartId" db:"body_part_id"`
	BodyPartName string `json:"bodyPartName" db:"body_part_name"`
	Equipment    string `json:"equipment,omitempty" db:"equipment"`
	ImageURL     string `json:"imageUrl,omitempty" db:"image_url"`
}

// ExerciseUpdate is a partial update, nil fields are left untouched.
type ExerciseUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	BodyPartID  *string `json:"bodyPartId,omitempty"`
	Equipment   *string `json:"equipment,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

func (u ExerciseUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.BodyPartID == nil && u.Equipment == nil && u.ImageURL == nil
}

type BodyPart struct {
	ID       string `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	ImageURL string `json:"imageUrl,omitempty" db:"image_url"`
}

var EquipmentOptions = []string{
	"Jednoručky",
	"Tyčka",
	"Multipress",
	"Kladka",
	"Kettlebell",
	"Stroj",
}

// SortedEquipment returns a sorted copy of EquipmentOptions, using Slovak collation.
func SortedEquipment() []string {
	options := slices.Clone(EquipmentOptions)
	collate.New(language.Slovak).SortStrings(options)
	return options
}

func ValidEquipment(equipment string) bool {
	return equipment == "" || slices.Contains(EquipmentOptions, equipment)
}
