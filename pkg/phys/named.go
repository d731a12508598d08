package phys

// Quantities measured in SI units.
type (
	TimeSI         = Quantity[SITime]
	MassSI         = Quantity[SIMass]
	TempSI         = Quantity[SITemperature]
	DistSI         = Quantity[SILength]
	VelocitySI     = Quantity[SIVelocity]
	AccelerationSI = Quantity[SIAcceleration]
)

// Scalars of the flat simulation frame.
type (
	TimeSpan = Scalar[Time, SITime]
	MassQuan = Scalar[Mass, SIMass]
	TempQuan = Scalar[Temperature, SITemperature]

	Longitude = Scalar[Along, SILength]
	Latitude  = Scalar[Across, SILength]
	Altitude  = Scalar[Upward, SILength]

	VelAlong  = Scalar[Along, SIVelocity]
	VelAcross = Scalar[Across, SIVelocity]
	VelUpward = Scalar[Upward, SIVelocity]

	AccAlong  = Scalar[Along, SIAcceleration]
	AccAcross = Scalar[Across, SIAcceleration]
	AccUpward = Scalar[Upward, SIAcceleration]
)

// Vectors of the flat simulation frame.
type (
	PlanePosition     = Vec2D[Along, Across, SILength]
	PlaneVelocity     = Vec2D[Along, Across, SIVelocity]
	PlaneAcceleration = Vec2D[Along, Across, SIAcceleration]

	VolumePosition     = Vec3D[Along, Across, Upward, SILength]
	VolumeVelocity     = Vec3D[Along, Across, Upward, SIVelocity]
	VolumeAcceleration = Vec3D[Along, Across, Upward, SIAcceleration]
)

// Seconds creates a time quantity in [s].
func Seconds[N Number](v N) TimeSI { return New[SITime](v) }

// Kilograms creates a mass quantity in [kg].
func Kilograms[N Number](v N) MassSI { return New[SIMass](v) }

// Kelvins creates a temperature quantity in [K].
func Kelvins[N Number](v N) TempSI { return New[SITemperature](v) }

// Meters creates a distance quantity in [m].
func Meters[N Number](v N) DistSI { return New[SILength](v) }

// MetersPerSecond creates a velocity quantity in [m/s].
func MetersPerSecond[N Number](v N) VelocitySI { return New[SIVelocity](v) }

// MetersPerSecond2 creates an acceleration quantity in [m/s^2].
func MetersPerSecond2[N Number](v N) AccelerationSI { return New[SIAcceleration](v) }

// Span pins a time quantity to the time pseudo-axis.
func Span(t TimeSI) TimeSpan { return On(t, OnTime) }

// MassOf pins a mass quantity to the mass pseudo-axis.
func MassOf(m MassSI) MassQuan { return On(m, OnMass) }

// TempOf pins a temperature quantity to the temperature pseudo-axis.
func TempOf(t TempSI) TempQuan { return On(t, OnTemperature) }
