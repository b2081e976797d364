package catalog

import "atlas/internal/domain"

// Curated lunar features: the notable set shown when the nomenclature archive
// is thin or unavailable. Coordinates are degrees, east-positive.
var moonFeatures = []domain.Feature{
	{
		Name: "Tycho", Type: "Crater, craters",
		Latitude: -43.31, Longitude: -11.36,
		DiameterKm: domain.Km(85), Origin: "Tycho Brahe; Danish astronomer (1546-1601)",
		ApprovalDate: "1935", Source: domain.SourceCurated,
	},
	{
		Name: "Copernicus", Type: "Crater, craters",
		Latitude: 9.62, Longitude: -20.08,
		DiameterKm: domain.Km(93), Origin: "Nicolaus Copernicus; Polish astronomer (1473-1543)",
		ApprovalDate: "1935", Source: domain.SourceCurated,
	},
	{
		Name: "Mare Imbrium", Type: "Mare, maria",
		Latitude: 32.8, Longitude: -15.6,
		DiameterKm: domain.Km(1145), Origin: "Sea of Showers",
		ApprovalDate: "1935", Source: domain.SourceCurated,
		WithinRegion: "Mare Imbrium",
	},
	{
		Name: "Mare Tranquillitatis", Type: "Mare, maria",
		Latitude: 8.5, Longitude: 31.4,
		DiameterKm: domain.Km(873), Origin: "Sea of Tranquility",
		ApprovalDate: "1935", Source: domain.SourceCurated,
		WithinRegion: "Mare Tranquillitatis",
	},
	{
		Name: "Montes Apenninus", Type: "Mons, montes",
		Latitude: 18.9, Longitude: -3.7,
		DiameterKm: domain.Km(401), Origin: "Named after the Apennine mountains in Italy",
		ApprovalDate: "1935", Source: domain.SourceCurated,
	},
	{
		Name: "Vallis Schroteri", Type: "Vallis, valles",
		Latitude: 26.2, Longitude: -50.8,
		DiameterKm: domain.Km(168), Origin: "Johann H. Schroter; German astronomer (1745-1816)",
		ApprovalDate: "1964", Source: domain.SourceCurated,
	},
}

// Large lunar regions in assignment order. Overlaps are resolved by this
// ordering, so more specific areas come before broader ones.
var moonRegions = []domain.Region{
	{Name: "Mare Imbrium", Bounds: domain.BoundingBox{North: 45, South: 20, West: -40, East: 0}},
	{Name: "Mare Tranquillitatis", Bounds: domain.BoundingBox{North: 20, South: 0, West: 18, East: 45}},
	{Name: "Mare Serenitatis", Bounds: domain.BoundingBox{North: 38, South: 15, West: 5, East: 25}},
	{Name: "Oceanus Procellarum", Bounds: domain.BoundingBox{North: 50, South: -12, West: -80, East: -40}},
	{Name: "Southern Highlands", Bounds: domain.BoundingBox{North: -20, South: -80, West: -45, East: 45}},
}
