// File: /models/vehicle.go
package models

// VehiclePreset is a selectable vehicle with its typical fuel efficiency.
// Picking a preset pre-fills the km/L field; the driver can still override it.
type VehiclePreset struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	KmPerLiter float64 `json:"km_per_liter"`
}

var vehiclePresets = []VehiclePreset{
	{ID: "onix-10", Name: "Chevrolet Onix 1.0", KmPerLiter: 13.5},
	{ID: "hb20-10", Name: "Hyundai HB20 1.0", KmPerLiter: 13.0},
	{ID: "gol-16", Name: "Volkswagen Gol 1.6", KmPerLiter: 11.5},
	{ID: "ka-10", Name: "Ford Ka 1.0", KmPerLiter: 13.2},
	{ID: "prisma-14", Name: "Chevrolet Prisma 1.4", KmPerLiter: 12.0},
	{ID: "versa-16", Name: "Nissan Versa 1.6", KmPerLiter: 12.3},
	{ID: "voyage-16", Name: "Volkswagen Voyage 1.6", KmPerLiter: 11.8},
	{ID: "mobi-10", Name: "Fiat Mobi 1.0", KmPerLiter: 13.8},
	{ID: "cg160", Name: "Honda CG 160", KmPerLiter: 40.0},
	{ID: "factor150", Name: "Yamaha Factor 150", KmPerLiter: 42.0},
	{ID: "other", Name: "Outro veículo", KmPerLiter: 10.0},
}

// VehiclePresets returns every selectable vehicle.
func VehiclePresets() []VehiclePreset {
	return vehiclePresets
}

// FindVehiclePreset looks a preset up by id.
func FindVehiclePreset(id string) (VehiclePreset, bool) {
	for _, v := range vehiclePresets {
		if v.ID == id {
			return v, true
		}
	}
	return VehiclePreset{}, false
}
