package places

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// textSearchResponse is the legacy textsearch/json payload.
type textSearchResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	Results      []textSearchResult `json:"results"`
}

type textSearchResult struct {
	Name             string `json:"name"`
	FormattedAddress string `json:"formatted_address"`
	Geometry         struct {
		Location struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// nearbyRequest is the body of a places:searchNearby call.
type nearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng `json:"center"`
	Radius int    `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type nearbyResponse struct {
	Places []place `json:"places"`
}

type place struct {
	ID          string `json:"id"`
	DisplayName *struct {
		Text string `json:"text"`
	} `json:"displayName"`
	ShortFormattedAddress string     `json:"shortFormattedAddress"`
	Types                 []string   `json:"types"`
	Rating                *float64   `json:"rating"`
	PriceLevel            PriceLevel `json:"priceLevel"`
}

var priceLevelNames = map[string]int{
	"PRICE_LEVEL_FREE":           0,
	"PRICE_LEVEL_INEXPENSIVE":    1,
	"PRICE_LEVEL_MODERATE":       2,
	"PRICE_LEVEL_EXPENSIVE":      3,
	"PRICE_LEVEL_VERY_EXPENSIVE": 4,
}

// PriceLevel decodes a provider price level given either as a number or as an enum name.
// Valid is false when the field is missing, null, PRICE_LEVEL_UNSPECIFIED or an enum name this
// client does not know; Unknown keeps such a name.
type PriceLevel struct {
	Level   int
	Valid   bool
	Unknown string
}

func (p *PriceLevel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = PriceLevel{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		if name == "PRICE_LEVEL_UNSPECIFIED" || name == "" {
			*p = PriceLevel{}
			return nil
		}
		level, ok := priceLevelNames[name]
		if !ok {
			*p = PriceLevel{Unknown: name}
			return nil
		}
		*p = PriceLevel{Level: level, Valid: true}
		return nil
	}

	var level int
	if err := json.Unmarshal(data, &level); err != nil {
		return fmt.Errorf("invalid price level %s: %w", data, err)
	}
	*p = PriceLevel{Level: level, Valid: true}
	return nil
}
