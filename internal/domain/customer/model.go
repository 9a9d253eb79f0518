package customer

import (
	"time"

	"github.com/lunaria/lunaria/internal/types"
)

// Customer represents a WhatsApp subscriber. Rows are created and enriched by
// the onboarding flow outside this service; the dashboard reads them and only
// ever mutates the narrow set of fields in UpdateParams.
type Customer struct {
	// ID is the unique identifier for the customer
	ID string `db:"id" json:"id"`

	// Name is the display name of the customer
	Name string `db:"name" json:"name"`

	// PhoneNumber is the WhatsApp number the customer subscribed with
	PhoneNumber string `db:"phone_number" json:"phone_number"`

	// BirthDate is the customer's birth date used for chart computation
	BirthDate *time.Time `db:"birth_date" json:"birth_date"`

	// BirthPlace is the customer's birth place used for chart computation
	BirthPlace string `db:"birth_place" json:"birth_place"`

	// Gender is the customer's declared gender
	Gender types.Gender `db:"gender" json:"gender"`

	// ZodiacSign is the customer's sun sign, computed at onboarding
	ZodiacSign string `db:"zodiac_sign" json:"zodiac_sign"`

	// Ascendant is the customer's rising sign, computed at onboarding
	Ascendant string `db:"ascendant" json:"ascendant"`

	types.BaseModel
}

// UpdateParams is the whitelist of customer fields the dashboard may edit.
// Anything else on the row belongs to the onboarding process and is not
// representable here.
type UpdateParams struct {
	Name        *string       `json:"name,omitempty"`
	PhoneNumber *string       `json:"phone_number,omitempty"`
	BirthPlace  *string       `json:"birth_place,omitempty"`
	Ascendant   *string       `json:"ascendant,omitempty"`
	Gender      *types.Gender `json:"gender,omitempty"`
}

// Apply copies the set fields onto the customer and bumps UpdatedAt
func (p UpdateParams) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	if p.BirthPlace != nil {
		c.BirthPlace = *p.BirthPlace
	}
	if p.Ascendant != nil {
		c.Ascendant = *p.Ascendant
	}
	if p.Gender != nil {
		c.Gender = *p.Gender
	}
	c.UpdatedAt = time.Now().UTC()
}

// ZodiacCombination returns the customer's (sign, ascendant) pair and whether
// both fields are present
func (c *Customer) ZodiacCombination() (types.ZodiacCombination, bool) {
	if c.ZodiacSign == "" || c.Ascendant == "" {
		return types.ZodiacCombination{}, false
	}
	return types.ZodiacCombination{
		ZodiacSign: c.ZodiacSign,
		Ascendant:  c.Ascendant,
	}, true
}
