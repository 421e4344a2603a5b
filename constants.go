package aerosim

// Standard sea-level atmosphere and gravity constants (SI).
const (
	// Gravity is the gravitational acceleration used throughout the model (m/s²).
	Gravity = 9.81
	// RhoSeaLevel is the ISA sea-level air density (kg/m³ at 15°C).
	RhoSeaLevel = 1.225
	// TempSeaLevel is the ISA sea-level temperature (K).
	TempSeaLevel = 288.15
	// LapseRate is the tropospheric temperature lapse rate (K/m).
	LapseRate = 0.0065
	// GasConstant is the specific gas constant of dry air (J/(kg·K)).
	GasConstant = 287.05
	// PressureSeaLevel is the ISA sea-level static pressure (Pa).
	PressureSeaLevel = 101325.0
	// Tropopause is the troposphere/stratosphere boundary altitude (m).
	Tropopause = 11000.0
	// airMolarMass is the molar mass of dry air (kg/mol).
	airMolarMass = 0.0289644
)
