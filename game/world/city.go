package world

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// City identifies one of the 48 cities on the board. The zero value is NoCity.
type City int

const (
	NoCity City = iota
	Algiers
	Atlanta
	Baghdad
	Bangkok
	Beijing
	Bogota
	BuenosAires
	Cairo
	Chennai
	Chicago
	Delhi
	Essen
	HoChiMinhCity
	HongKong
	Istanbul
	Jakarta
	Johannesburg
	Karachi
	Khartoum
	Kinshasa
	Kolkata
	Lagos
	Lima
	London
	LosAngeles
	Madrid
	Manila
	MexicoCity
	Miami
	Milan
	Montreal
	Moscow
	Mumbai
	NewYork
	Osaka
	Paris
	Riyadh
	SaintPetersburg
	SanFrancisco
	Santiago
	SaoPaulo
	Seoul
	Shanghai
	Sydney
	Taipei
	Tehran
	Tokyo
	Washington
)

// NumCities is the number of cities on the board.
const NumCities = 48

// CityInfo is the static description of a city.
type CityInfo struct {
	ID         City
	Name       string
	Color      Color
	Country    string
	Population int
	Density    int
	Neighbors  []City
}

func (c City) String() string {
	if c.Valid() {
		return cityTable[c].Name
	}
	if c == NoCity {
		return "None"
	}
	return fmt.Sprintf("City(%d)", int(c))
}

// Valid reports whether c names a city on the board.
func (c City) Valid() bool {
	return c > NoCity && c <= NumCities
}

// Index returns the zero-based position of c, suitable for fixed arrays of
// per-city state.
func (c City) Index() int {
	return int(c) - 1
}

// Color returns the native disease color of c.
func (c City) Color() Color {
	if !c.Valid() {
		return NoColor
	}
	return cityTable[c].Color
}

// MarshalText encodes the city by display name.
func (c City) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return []byte(""), nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a city name accepted by ParseCity.
func (c *City) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*c = NoCity
		return nil
	}
	parsed, err := ParseCity(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

var cityKeys = func() map[string]City {
	keys := make(map[string]City, NumCities)
	for id := City(1); id <= NumCities; id++ {
		keys[cityKey(cityTable[id].Name)] = id
	}
	return keys
}()

// cityKey folds case, accents, spaces and punctuation so that "sao paulo",
// "SaoPaulo" and "São Paulo" resolve to the same city.
func cityKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseCity resolves a city by name. Matching ignores case, accents, spaces
// and punctuation.
func ParseCity(s string) (City, error) {
	if id, ok := cityKeys[cityKey(s)]; ok {
		return id, nil
	}
	return NoCity, fmt.Errorf("unknown city %q", s)
}
