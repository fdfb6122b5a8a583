package domain

import "time"

type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinPremium  CabinClass = "premium"
	CabinBusiness CabinClass = "business"
	CabinFirst    CabinClass = "first"
)

type TransferMode string

const (
	TransferPrivate TransferMode = "private"
	TransferShared  TransferMode = "shared"
)

type Resort struct {
	ID               string
	Name             string
	Country          string
	ImageURL         string
	Description      string
	PackagePriceFrom float64
	LiftCount        int
	SlopeKilometers  int
	HighestElevation int
	LowestElevation  int
	NearestAirports  []string
	Features         []string
	Rating           float64
}

type Hotel struct {
	ID                 string
	ResortID           string
	Name               string
	ImageURL           string
	StarRating         int
	LiftDistanceMeters int
	PricePerNight      float64
	Amenities          []string
	Lat                float64
	Lng                float64
}

type Flight struct {
	ID            string
	Origin        string
	Destination   string
	Carrier       string
	DepartureTime time.Time
	ArrivalTime   time.Time
	Price         float64
	CabinClass    CabinClass
}

type Transfer struct {
	ID          string
	Mode        TransferMode
	Origin      string
	Destination string
	Price       float64
	// DurationMinutes is the ride time, door to door.
	DurationMinutes int
}
