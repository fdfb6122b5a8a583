package catalog

import (
	"time"

	"github.com/alpinetrips/skipack/internal/domain"
)

// Airports lists the airport codes known to the catalog.
var Airports = map[string]string{
	"LHR": "London Heathrow",
	"LGW": "London Gatwick",
	"GVA": "Geneva",
	"ZRH": "Zurich",
	"INN": "Innsbruck",
	"SZG": "Salzburg",
	"LYS": "Lyon",
	"MUC": "Munich",
	"CMF": "Chambery",
	"BRN": "Bern",
}

var resorts = []domain.Resort{
	{
		ID:               "chamonix",
		Name:             "Chamonix",
		Country:          "France",
		ImageURL:         "https://images.pexels.com/photos/280221/pexels-photo-280221.jpeg",
		Description:      "Chamonix is situated near the massive peaks of the Aiguilles Rouges and offers a wide range of slopes for beginners, intermediates and experts alike.",
		PackagePriceFrom: 1200,
		LiftCount:        49,
		SlopeKilometers:  150,
		HighestElevation: 3842,
		LowestElevation:  1035,
		NearestAirports:  []string{"GVA", "LYS"},
		Features:         []string{"Apres-ski", "Family-friendly", "Off-piste", "Nightlife"},
		Rating:           4.7,
	},
	{
		ID:               "zermatt",
		Name:             "Zermatt",
		Country:          "Switzerland",
		ImageURL:         "https://images.pexels.com/photos/352093/pexels-photo-352093.jpeg",
		Description:      "Zermatt is famed for the iconic Matterhorn peak, with 360km of slopes and fantastic snow reliability due to its high-alpine location.",
		PackagePriceFrom: 1800,
		LiftCount:        53,
		SlopeKilometers:  360,
		HighestElevation: 3899,
		LowestElevation:  1620,
		NearestAirports:  []string{"GVA", "ZRH"},
		Features:         []string{"Glacier skiing", "Luxury", "Car-free village", "Gourmet dining"},
		Rating:           4.9,
	},
	{
		ID:               "stanton",
		Name:             "St. Anton",
		Country:          "Austria",
		ImageURL:         "https://images.pexels.com/photos/730426/pexels-photo-730426.jpeg",
		Description:      "St. Anton is part of the Arlberg ski area, with 305km of pistes and 200km of off-piste itineraries, known for challenging terrain and lively apres-ski.",
		PackagePriceFrom: 1450,
		LiftCount:        88,
		SlopeKilometers:  305,
		HighestElevation: 2811,
		LowestElevation:  1304,
		NearestAirports:  []string{"INN", "ZRH"},
		Features:         []string{"Nightlife", "Advanced slopes", "Off-piste", "Ski schools"},
		Rating:           4.6,
	},
	{
		ID:               "valthorens",
		Name:             "Val Thorens",
		Country:          "France",
		ImageURL:         "https://images.pexels.com/photos/356807/pexels-photo-356807.jpeg",
		Description:      "Europe's highest ski resort at 2300m, Val Thorens offers reliable snow from November to May and is part of the Three Valleys, the world's largest ski area.",
		PackagePriceFrom: 1350,
		LiftCount:        32,
		SlopeKilometers:  150,
		HighestElevation: 3230,
		LowestElevation:  2300,
		NearestAirports:  []string{"GVA", "LYS", "CMF"},
		Features:         []string{"Snow-sure", "Ski-in/ski-out", "Beginner-friendly", "Nightlife"},
		Rating:           4.8,
	},
	{
		ID:               "kitzbuhel",
		Name:             "Kitzbühel",
		Country:          "Austria",
		ImageURL:         "https://images.pexels.com/photos/847398/pexels-photo-847398.jpeg",
		Description:      "Kitzbühel is a medieval town with a modern ski resort, host of the famous Hahnenkamm downhill race, offering 230km of groomed pistes.",
		PackagePriceFrom: 1250,
		LiftCount:        57,
		SlopeKilometers:  230,
		HighestElevation: 2000,
		LowestElevation:  800,
		NearestAirports:  []string{"INN", "SZG", "MUC"},
		Features:         []string{"Historic town", "Intermediate terrain", "Dining", "Events"},
		Rating:           4.5,
	},
	{
		ID:               "verbier",
		Name:             "Verbier",
		Country:          "Switzerland",
		ImageURL:         "https://images.pexels.com/photos/273909/pexels-photo-273909.jpeg",
		Description:      "Verbier is the main resort in Switzerland's 4 Valleys ski area, with 410km of runs, renowned for its off-piste terrain and vibrant nightlife.",
		PackagePriceFrom: 1700,
		LiftCount:        92,
		SlopeKilometers:  410,
		HighestElevation: 3330,
		LowestElevation:  1500,
		NearestAirports:  []string{"GVA", "BRN"},
		Features:         []string{"Freeride", "Luxury", "Nightlife", "Advanced"},
		Rating:           4.7,
	},
}

var hotelsByResort = map[string][]domain.Hotel{
	"chamonix": {
		{
			ID:                 "hotel-1",
			ResortID:           "chamonix",
			Name:               "Hotel Mont Blanc",
			ImageURL:           "https://images.pexels.com/photos/261102/pexels-photo-261102.jpeg",
			StarRating:         4,
			LiftDistanceMeters: 150,
			PricePerNight:      250,
			Amenities:          []string{"Spa", "Restaurant", "Free WiFi", "Ski Storage"},
			Lat:                45.923697,
			Lng:                6.869433,
		},
		{
			ID:                 "hotel-2",
			ResortID:           "chamonix",
			Name:               "Alpina Eclectic Hotel",
			ImageURL:           "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg",
			StarRating:         5,
			LiftDistanceMeters: 200,
			PricePerNight:      350,
			Amenities:          []string{"Spa", "Pool", "Restaurant", "Bar", "Free WiFi", "Ski Storage"},
			Lat:                45.923897,
			Lng:                6.867433,
		},
	},
	"zermatt": {
		{
			ID:                 "hotel-3",
			ResortID:           "zermatt",
			Name:               "Grand Hotel Zermatterhof",
			ImageURL:           "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg",
			StarRating:         5,
			LiftDistanceMeters: 300,
			PricePerNight:      450,
			Amenities:          []string{"Spa", "Pool", "Restaurant", "Bar", "Free WiFi", "Ski Storage"},
			Lat:                46.024059,
			Lng:                7.747256,
		},
	},
}

var flights = []domain.Flight{
	{
		ID:            "flight-1",
		Origin:        "LHR",
		Destination:   "GVA",
		Carrier:       "British Airways",
		DepartureTime: time.Date(2025, time.December, 15, 8, 30, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, time.December, 15, 11, 15, 0, 0, time.UTC),
		Price:         250,
		CabinClass:    domain.CabinEconomy,
	},
	{
		ID:            "flight-2",
		Origin:        "LHR",
		Destination:   "GVA",
		Carrier:       "Swiss",
		DepartureTime: time.Date(2025, time.December, 15, 10, 45, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, time.December, 15, 13, 30, 0, 0, time.UTC),
		Price:         220,
		CabinClass:    domain.CabinEconomy,
	},
	{
		ID:            "flight-3",
		Origin:        "LGW",
		Destination:   "GVA",
		Carrier:       "EasyJet",
		DepartureTime: time.Date(2025, time.December, 15, 7, 15, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2025, time.December, 15, 10, 0, 0, 0, time.UTC),
		Price:         150,
		CabinClass:    domain.CabinEconomy,
	},
}

var transfers = []domain.Transfer{
	{
		ID:              "transfer-1",
		Mode:            domain.TransferPrivate,
		Origin:          "GVA",
		Destination:     "Chamonix",
		Price:           80,
		DurationMinutes: 75,
	},
	{
		ID:              "transfer-2",
		Mode:            domain.TransferShared,
		Origin:          "GVA",
		Destination:     "Chamonix",
		Price:           40,
		DurationMinutes: 90,
	},
	{
		ID:              "transfer-3",
		Mode:            domain.TransferPrivate,
		Origin:          "GVA",
		Destination:     "Zermatt",
		Price:           120,
		DurationMinutes: 160,
	},
}
