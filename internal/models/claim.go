package models

// DateLayout is the wire format for all claim dates. Dates travel as plain
// strings because the persisted claim state is an opaque JSON blob and an
// absent date must degrade to a zero day count instead of failing.
const DateLayout = "2006-01-02"

// HotelExpense is one hotel stay owned by exactly one trip.
type HotelExpense struct {
	ID               string  `json:"id"`
	DateFrom         string  `json:"date_from"`
	DateTo           string  `json:"date_to"`
	Particulars      string  `json:"particulars"`
	RoomRentPerDay   float64 `json:"room_rent_per_day"`
	TaxPerDay        float64 `json:"tax_per_day"`
	CompanyPaidTotal float64 `json:"company_paid_total"`
}

// ConveyanceEntry is one local conveyance expense owned by exactly one trip.
type ConveyanceEntry struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	ModeOfTravel string  `json:"mode_of_travel"`
	Amount       float64 `json:"amount"`
}

// TripRecord is one journey segment. The advance is scoped to this trip;
// there is no claim-wide advance field.
type TripRecord struct {
	ID              string            `json:"id"`
	DateFrom        string            `json:"date_from"`
	DateTo          string            `json:"date_to"`
	FromLocation    string            `json:"from_location"`
	ToLocation      string            `json:"to_location"`
	ModeClass       string            `json:"mode_class"`
	Fare            float64           `json:"fare"`
	Advance         float64           `json:"advance"`
	MiscExpenses    float64           `json:"misc_expenses"`
	BusinessDisc    float64           `json:"business_disc"`
	TouristTaxi     bool              `json:"tourist_taxi"`
	CompanyCar      bool              `json:"company_car"`
	HotelExpenses   []HotelExpense    `json:"hotel_expenses"`
	LocalConveyance []ConveyanceEntry `json:"local_conveyance"`
}

// Clone returns a deep copy of the trip, including nested records.
func (t *TripRecord) Clone() *TripRecord {
	cp := *t
	cp.HotelExpenses = append([]HotelExpense(nil), t.HotelExpenses...)
	cp.LocalConveyance = append([]ConveyanceEntry(nil), t.LocalConveyance...)
	return &cp
}

// Claim is the complete set of trips and summary data for one employee's
// reimbursement request. Insertion order of trips is display order.
type Claim struct {
	Trips          []TripRecord `json:"trips"`
	PurposeOfVisit string       `json:"purpose_of_visit"`
}

// Clone returns a deep copy of the claim.
func (c *Claim) Clone() *Claim {
	cp := &Claim{PurposeOfVisit: c.PurposeOfVisit}
	for i := range c.Trips {
		cp.Trips = append(cp.Trips, *c.Trips[i].Clone())
	}
	return cp
}

// TripIndex returns the position of the trip with the given id, or -1.
func (c *Claim) TripIndex(id string) int {
	for i := range c.Trips {
		if c.Trips[i].ID == id {
			return i
		}
	}
	return -1
}
