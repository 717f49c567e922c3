package directory

import "github.com/m04kA/SMC-GarageService/internal/domain"

// catalog услуги гаража, цены в центах
var catalog = []domain.CarService{
	{
		ID:          1,
		Title:       "Oil Change",
		Description: "Complete oil change service with premium quality oil and filter replacement.",
		PriceCents:  4999,
	},
	{
		ID:          2,
		Title:       "Brake Service",
		Description: "Full brake inspection, pad replacement, and rotor resurfacing or replacement.",
		PriceCents:  12999,
	},
	{
		ID:          3,
		Title:       "Tire Rotation",
		Description: "Professional tire rotation and balance to ensure even wear and optimal performance.",
		PriceCents:  3999,
	},
	{
		ID:          4,
		Title:       "Engine Diagnostics",
		Description: "Comprehensive engine diagnostics using advanced computer systems.",
		PriceCents:  8999,
	},
	{
		ID:          5,
		Title:       "Air Conditioning",
		Description: "AC system inspection, recharge, and repair services.",
		PriceCents:  9999,
	},
	{
		ID:          6,
		Title:       "Battery Service",
		Description: "Battery testing, cleaning, and replacement with quality batteries.",
		PriceCents:  7999,
	},
	{
		ID:          7,
		Title:       "Transmission Service",
		Description: "Complete transmission fluid change and system inspection.",
		PriceCents:  14999,
	},
	{
		ID:          8,
		Title:       "Wheel Alignment",
		Description: "Precision wheel alignment for improved handling and tire life.",
		PriceCents:  7499,
	},
	{
		ID:          9,
		Title:       "General Inspection",
		Description: "Comprehensive vehicle inspection covering all major systems.",
		PriceCents:  5999,
	},
}
