package listing

// Payload is the flattened answer set of a completed wizard.
type Payload struct {
	Category     string
	Pricing      string
	Title        string
	Privacy      string
	Address      string
	Guests       int
	Bedrooms     int
	Beds         int
	HasLock      *bool
	Occupancy    string
	Capacity     int
	Amenities    []string
	Photos       []string
	Discounts    []string
	Price        *float64
	WeekendPrice *float64
	HourlyRate   *float64
}
