package models

// RestaurantCandidate is one place returned by the provider. Rating and PriceLevel are nil
// when the provider did not report them.
type RestaurantCandidate struct {
	Name       string
	Address    string
	PlaceID    string
	Rating     *float64
	PriceLevel *int
}

// Tuple renders the candidate as the [name, address, placeId, rating, priceLevel] array
// returned to clients.
func (c RestaurantCandidate) Tuple() []any {
	var rating, price any
	if c.Rating != nil {
		rating = *c.Rating
	}
	if c.PriceLevel != nil {
		price = *c.PriceLevel
	}
	return []any{c.Name, c.Address, c.PlaceID, rating, price}
}
