package horoscope

import (
	"time"

	"github.com/lunaria/lunaria/internal/types"
)

// DailyHoroscope is one generated horoscope text for a (date, sign, ascendant)
// combination. Generation happens in an external process; the dashboard only
// reads these rows.
type DailyHoroscope struct {
	// ID is the unique identifier for the horoscope
	ID string `db:"id" json:"id"`

	// HoroscopeDate is the day the text is written for
	HoroscopeDate time.Time `db:"horoscope_date" json:"horoscope_date"`

	// ZodiacSign is the sun sign the text targets
	ZodiacSign string `db:"zodiac_sign" json:"zodiac_sign"`

	// Ascendant is the rising sign the text targets
	Ascendant string `db:"ascendant" json:"ascendant"`

	// Text is the generated horoscope body
	Text string `db:"text" json:"text"`

	types.BaseModel
}

// Combination returns the (sign, ascendant) pair the horoscope covers
func (h *DailyHoroscope) Combination() types.ZodiacCombination {
	return types.ZodiacCombination{
		ZodiacSign: h.ZodiacSign,
		Ascendant:  h.Ascendant,
	}
}
