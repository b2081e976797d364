package catalog

import "atlas/internal/domain"

var marsFeatures = []domain.Feature{
	{
		Name: "Olympus Mons", Type: "Mons, montes",
		Latitude: 18.65, Longitude: -133.8,
		DiameterKm: domain.Km(610), Origin: "Classical albedo feature name",
		ApprovalDate: "1973", Source: domain.SourceCurated,
		WithinRegion: "Tharsis",
	},
	{
		Name: "Valles Marineris", Type: "Vallis, valles",
		Latitude: -13.9, Longitude: -59.2,
		DiameterKm: domain.Km(3761), Origin: "Named for the Mariner 9 spacecraft",
		ApprovalDate: "1973", Source: domain.SourceCurated,
	},
	{
		Name: "Gale", Type: "Crater, craters",
		Latitude: -5.4, Longitude: 137.8,
		DiameterKm: domain.Km(154), Origin: "Walter F. Gale; Australian astronomer (1865-1945)",
		ApprovalDate: "1991", Source: domain.SourceCurated,
	},
	{
		Name: "Hellas Planitia", Type: "Planitia, planitiae",
		Latitude: -42.4, Longitude: 70.5,
		DiameterKm: domain.Km(2299), Origin: "Classical albedo feature name",
		ApprovalDate: "1973", Source: domain.SourceCurated,
	},
	{
		Name: "Elysium Mons", Type: "Mons, montes",
		Latitude: 25.0, Longitude: 147.2,
		DiameterKm: domain.Km(401), Origin: "Classical albedo feature name",
		ApprovalDate: "1973", Source: domain.SourceCurated,
	},
}

var marsRegions = []domain.Region{
	{Name: "Tharsis", Bounds: domain.BoundingBox{North: 40, South: -20, West: -140, East: -90}},
	{Name: "Hellas", Bounds: domain.BoundingBox{North: -25, South: -55, West: 50, East: 95}},
	{Name: "Elysium", Bounds: domain.BoundingBox{North: 40, South: 10, West: 130, East: 160}},
	{Name: "Utopia Planitia", Bounds: domain.BoundingBox{North: 60, South: 30, West: 80, East: 130}},
}

var curated = map[string][]domain.Feature{
	"moon": moonFeatures,
	"mars": marsFeatures,
}

var regions = map[string][]domain.Region{
	"moon": moonRegions,
	"mars": marsRegions,
}
