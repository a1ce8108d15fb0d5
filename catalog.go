// Copyright 2025 GreenOpposite
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package tantalum

import "math/big"

// atom identifies one entry in the unit catalog.
type atom uint8

const (
	atomNewton atom = iota
	atomJoule
	atomOhm
	atomHertz
	atomVolt
	atomKelvin
	atomCelsius
	atomFahrenheit
	atomHectare
	atomTesla
	atomBit
	atomByte
	atomSiemens
	atomWatt
	atomLiter
	atomCubicInch
	atomCubicFeet
	atomCubicYard
	atomPint
	atomQuart
	atomGallon
	atomPascal
	atomHenry
	atomQuecto
	atomRonto
	atomYocto
	atomZepto
	atomAtto
	atomFemto
	atomPico
	atomNano
	atomMicro
	atomMilli
	atomCenti
	atomDeci
	atomHecto
	atomKilo
	atomMega
	atomGiga
	atomTera
	atomPeta
	atomExa
	atomZetta
	atomYotta
	atomRonna
	atomQuetta
	atomMole
	atomCandela
	atomAmpere
	atomWeber
	atomKibi
	atomMebi
	atomGibi
	atomTebi
	atomPebi
	atomExbi
	atomMeter
	atomAU
	atomInch
	atomFeet
	atomYard
	atomMile
	atomNauticalMile
	atomLightYear
	atomParsec
	atomCoulomb
	atomGram
	atomTonne
	atomDram
	atomOunce
	atomPound
	atomFarad
	atomSecond
	atomMinute
	atomHour
	atomDay
	atomMonth
	atomYear
	numAtoms
)

// The atomic units of the catalog.
var (
	// Force
	Newton = Unit{atom: atomNewton}

	// Energy
	Joule = Unit{atom: atomJoule}

	// Electric resistance
	Ohm = Unit{atom: atomOhm}

	// Frequency
	Hertz = Unit{atom: atomHertz}

	// Voltage
	Volt = Unit{atom: atomVolt}

	// Temperature
	Kelvin     = Unit{atom: atomKelvin}
	Celsius    = Unit{atom: atomCelsius}
	Fahrenheit = Unit{atom: atomFahrenheit}

	// Area
	Hectare = Unit{atom: atomHectare}

	// Magnetic field strength
	Tesla = Unit{atom: atomTesla}

	// Information
	Bit  = Unit{atom: atomBit}
	Byte = Unit{atom: atomByte}

	// Electric conductance
	Siemens = Unit{atom: atomSiemens}

	// Power
	Watt = Unit{atom: atomWatt}

	// Volume
	Liter     = Unit{atom: atomLiter}
	CubicInch = Unit{atom: atomCubicInch}
	CubicFeet = Unit{atom: atomCubicFeet}
	CubicYard = Unit{atom: atomCubicYard}
	Pint      = Unit{atom: atomPint}
	Quart     = Unit{atom: atomQuart}
	Gallon    = Unit{atom: atomGallon}

	// Pressure
	Pascal = Unit{atom: atomPascal}

	// Inductance
	Henry = Unit{atom: atomHenry}

	// SI decimal prefixes
	Quecto = Unit{atom: atomQuecto}
	Ronto  = Unit{atom: atomRonto}
	Yocto  = Unit{atom: atomYocto}
	Zepto  = Unit{atom: atomZepto}
	Atto   = Unit{atom: atomAtto}
	Femto  = Unit{atom: atomFemto}
	Pico   = Unit{atom: atomPico}
	Nano   = Unit{atom: atomNano}
	Micro  = Unit{atom: atomMicro}
	Milli  = Unit{atom: atomMilli}
	Centi  = Unit{atom: atomCenti}
	Deci   = Unit{atom: atomDeci}
	Hecto  = Unit{atom: atomHecto}
	Kilo   = Unit{atom: atomKilo}
	Mega   = Unit{atom: atomMega}
	Giga   = Unit{atom: atomGiga}
	Tera   = Unit{atom: atomTera}
	Peta   = Unit{atom: atomPeta}
	Exa    = Unit{atom: atomExa}
	Zetta  = Unit{atom: atomZetta}
	Yotta  = Unit{atom: atomYotta}
	Ronna  = Unit{atom: atomRonna}
	Quetta = Unit{atom: atomQuetta}

	// Amount of substance
	Mole = Unit{atom: atomMole}

	// Luminous intensity
	Candela = Unit{atom: atomCandela}

	// Electric current
	Ampere = Unit{atom: atomAmpere}

	// Magnetic flux
	Weber = Unit{atom: atomWeber}

	// IEC binary prefixes
	Kibi = Unit{atom: atomKibi}
	Mebi = Unit{atom: atomMebi}
	Gibi = Unit{atom: atomGibi}
	Tebi = Unit{atom: atomTebi}
	Pebi = Unit{atom: atomPebi}
	Exbi = Unit{atom: atomExbi}

	// Length
	Meter        = Unit{atom: atomMeter}
	AU           = Unit{atom: atomAU}
	Inch         = Unit{atom: atomInch}
	Feet         = Unit{atom: atomFeet}
	Yard         = Unit{atom: atomYard}
	Mile         = Unit{atom: atomMile}
	NauticalMile = Unit{atom: atomNauticalMile}
	LightYear    = Unit{atom: atomLightYear}
	Parsec       = Unit{atom: atomParsec}

	// Electric charge
	Coulomb = Unit{atom: atomCoulomb}

	// Mass
	Gram  = Unit{atom: atomGram}
	Tonne = Unit{atom: atomTonne}
	Dram  = Unit{atom: atomDram}
	Ounce = Unit{atom: atomOunce}
	Pound = Unit{atom: atomPound}

	// Electric capacitance
	Farad = Unit{atom: atomFarad}

	// Time
	Second = Unit{atom: atomSecond}
	Minute = Unit{atom: atomMinute}
	Hour   = Unit{atom: atomHour}
	Day    = Unit{atom: atomDay}
	Month  = Unit{atom: atomMonth}
	Year   = Unit{atom: atomYear}
)

// unitDef is one catalog record: display strings plus the fixed conversion
// triple (offset, slope, SI expression) such that si = (value+offset)*slope.
type unitDef struct {
	name     string
	symbol   string
	offset   Rat
	slope    Rat
	si       Unit
	modifier bool
}

func ratio(num, den int64) Rat {
	return NewRat64(num, den)
}

// tenPow returns 10^exp as an Int, stored at the smallest fitting tier.
func tenPow(exp int) Int {
	return IntFromBig(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil))
}

// decimalPrefix returns 10^exp as a Rat, for negative and positive exp.
func decimalPrefix(exp int) Rat {
	if exp < 0 {
		return NewRat(intOne, tenPow(-exp))
	}
	return NewRat(tenPow(exp), intOne)
}

// defs is the single source of conversion truth, indexed by atom. The SI
// expressions are built from SI base units and the Kilo prefix only; mass is
// expressed through Kilo*Gram.
var defs = [numAtoms]unitDef{
	atomNewton: {name: "newton", symbol: "N", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Mul(Meter).Div(Second.Mul(Second))},
	atomJoule: {name: "joule", symbol: "J", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Mul(Meter).Mul(Meter).Div(Second.Mul(Second))},
	atomOhm: {name: "ohm", symbol: "ohm", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Mul(Meter).Mul(Meter).Div(Second.Mul(Second).Mul(Second).Mul(Ampere).Mul(Ampere))},
	atomHertz: {name: "hertz", symbol: "Hz", offset: ratZero, slope: ratOne,
		si: Unitless.Div(Second)},
	atomVolt: {name: "volt", symbol: "V", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Mul(Meter).Mul(Meter).Div(Second.Mul(Second).Mul(Second).Mul(Ampere))},

	atomKelvin:     {name: "kelvin", symbol: "K", offset: ratZero, slope: ratOne, si: Kelvin},
	atomCelsius:    {name: "celsius", symbol: "C", offset: ratio(5463, 20), slope: ratOne, si: Kelvin},
	atomFahrenheit: {name: "fahrenheit", symbol: "F", offset: ratio(45967, 100), slope: ratio(13889, 25000), si: Kelvin},

	atomHectare: {name: "hectare", symbol: "ha", offset: ratZero, slope: ratio(10000, 1),
		si: Meter.Mul(Meter)},
	atomTesla: {name: "tesla", symbol: "T", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Div(Second.Mul(Second).Mul(Ampere))},

	atomBit:  {name: "bit", symbol: "b", offset: ratZero, slope: ratOne, si: Bit},
	atomByte: {name: "byte", symbol: "B", offset: ratZero, slope: ratio(8, 1), si: Bit},

	atomSiemens: {name: "siemens", symbol: "S", offset: ratZero, slope: ratOne,
		si: Second.Mul(Second).Mul(Second).Mul(Ampere).Mul(Ampere).Div(Kilo.Mul(Gram).Mul(Meter).Mul(Meter))},
	atomWatt: {name: "watt", symbol: "W", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Mul(Meter).Mul(Meter).Div(Second.Mul(Second).Mul(Second))},

	atomLiter:     {name: "liter", symbol: "L", offset: ratZero, slope: ratio(1, 1000), si: Meter.Mul(Meter).Mul(Meter)},
	atomCubicInch: {name: "cubic inch", symbol: "in^3", offset: ratZero, slope: ratio(2048383, 125000000000), si: Meter.Mul(Meter).Mul(Meter)},
	atomCubicFeet: {name: "cubic feet", symbol: "ft^3", offset: ratZero, slope: ratio(55306341, 1953125000), si: Meter.Mul(Meter).Mul(Meter)},
	atomCubicYard: {name: "cubic yard", symbol: "yd^3", offset: ratZero, slope: ratio(1493271207, 1953125000), si: Meter.Mul(Meter).Mul(Meter)},
	atomPint:      {name: "pint", symbol: "pt", offset: ratZero, slope: ratio(473176473, 1000000000000), si: Meter.Mul(Meter).Mul(Meter)},
	atomQuart:     {name: "quart", symbol: "qt", offset: ratZero, slope: ratio(473176473, 500000000000), si: Meter.Mul(Meter).Mul(Meter)},
	atomGallon:    {name: "gallon", symbol: "gal", offset: ratZero, slope: ratio(473176473, 125000000000), si: Meter.Mul(Meter).Mul(Meter)},

	atomPascal: {name: "pascal", symbol: "Pa", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Div(Meter.Mul(Second).Mul(Second))},
	atomHenry: {name: "henry", symbol: "H", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Mul(Meter).Mul(Meter).Div(Second.Mul(Second).Mul(Ampere).Mul(Ampere))},

	atomQuecto: {name: "quecto", symbol: "q", offset: ratZero, slope: decimalPrefix(-30), si: Unitless, modifier: true},
	atomRonto:  {name: "ronto", symbol: "r", offset: ratZero, slope: decimalPrefix(-27), si: Unitless, modifier: true},
	atomYocto:  {name: "yocto", symbol: "y", offset: ratZero, slope: decimalPrefix(-24), si: Unitless, modifier: true},
	atomZepto:  {name: "zepto", symbol: "z", offset: ratZero, slope: decimalPrefix(-21), si: Unitless, modifier: true},
	atomAtto:   {name: "atto", symbol: "a", offset: ratZero, slope: decimalPrefix(-18), si: Unitless, modifier: true},
	atomFemto:  {name: "femto", symbol: "f", offset: ratZero, slope: decimalPrefix(-15), si: Unitless, modifier: true},
	atomPico:   {name: "pico", symbol: "p", offset: ratZero, slope: decimalPrefix(-12), si: Unitless, modifier: true},
	atomNano:   {name: "nano", symbol: "n", offset: ratZero, slope: decimalPrefix(-9), si: Unitless, modifier: true},
	atomMicro:  {name: "micro", symbol: "µ", offset: ratZero, slope: decimalPrefix(-6), si: Unitless, modifier: true},
	atomMilli:  {name: "milli", symbol: "m", offset: ratZero, slope: decimalPrefix(-3), si: Unitless, modifier: true},
	atomCenti:  {name: "centi", symbol: "c", offset: ratZero, slope: decimalPrefix(-2), si: Unitless, modifier: true},
	atomDeci:   {name: "deci", symbol: "d", offset: ratZero, slope: decimalPrefix(-1), si: Unitless, modifier: true},
	atomHecto:  {name: "hecto", symbol: "h", offset: ratZero, slope: decimalPrefix(2), si: Unitless, modifier: true},
	atomKilo:   {name: "kilo", symbol: "k", offset: ratZero, slope: decimalPrefix(3), si: Unitless, modifier: true},
	atomMega:   {name: "mega", symbol: "M", offset: ratZero, slope: decimalPrefix(6), si: Unitless, modifier: true},
	atomGiga:   {name: "giga", symbol: "G", offset: ratZero, slope: decimalPrefix(9), si: Unitless, modifier: true},
	atomTera:   {name: "tera", symbol: "T", offset: ratZero, slope: decimalPrefix(12), si: Unitless, modifier: true},
	atomPeta:   {name: "peta", symbol: "P", offset: ratZero, slope: decimalPrefix(15), si: Unitless, modifier: true},
	atomExa:    {name: "exa", symbol: "E", offset: ratZero, slope: decimalPrefix(18), si: Unitless, modifier: true},
	atomZetta:  {name: "zetta", symbol: "Z", offset: ratZero, slope: decimalPrefix(21), si: Unitless, modifier: true},
	atomYotta:  {name: "yotta", symbol: "Y", offset: ratZero, slope: decimalPrefix(24), si: Unitless, modifier: true},
	atomRonna:  {name: "ronna", symbol: "R", offset: ratZero, slope: decimalPrefix(27), si: Unitless, modifier: true},
	atomQuetta: {name: "quetta", symbol: "Q", offset: ratZero, slope: decimalPrefix(30), si: Unitless, modifier: true},

	atomMole:    {name: "mole", symbol: "mol", offset: ratZero, slope: ratOne, si: Mole},
	atomCandela: {name: "candela", symbol: "cd", offset: ratZero, slope: ratOne, si: Candela},
	atomAmpere:  {name: "ampere", symbol: "A", offset: ratZero, slope: ratOne, si: Ampere},
	atomWeber: {name: "weber", symbol: "Wb", offset: ratZero, slope: ratOne,
		si: Kilo.Mul(Gram).Mul(Meter).Mul(Meter).Div(Second.Mul(Second).Mul(Ampere))},

	atomKibi: {name: "kibi", symbol: "Ki", offset: ratZero, slope: ratio(1024, 1), si: Unitless, modifier: true},
	atomMebi: {name: "mebi", symbol: "Mi", offset: ratZero, slope: ratio(1048576, 1), si: Unitless, modifier: true},
	atomGibi: {name: "gibi", symbol: "Gi", offset: ratZero, slope: ratio(1073741824, 1), si: Unitless, modifier: true},
	atomTebi: {name: "tebi", symbol: "Ti", offset: ratZero, slope: ratio(1099511627776, 1), si: Unitless, modifier: true},
	atomPebi: {name: "pebi", symbol: "Pi", offset: ratZero, slope: ratio(1125899906842624, 1), si: Unitless, modifier: true},
	atomExbi: {name: "exbi", symbol: "Ei", offset: ratZero, slope: ratio(1152921504606846976, 1), si: Unitless, modifier: true},

	atomMeter:        {name: "meter", symbol: "m", offset: ratZero, slope: ratOne, si: Meter},
	atomAU:           {name: "astronomical unit", symbol: "ua", offset: ratZero, slope: ratio(149597870691, 1), si: Meter},
	atomInch:         {name: "inch", symbol: "in", offset: ratZero, slope: ratio(127, 5000), si: Meter},
	atomFeet:         {name: "feet", symbol: "ft", offset: ratZero, slope: ratio(381, 1250), si: Meter},
	atomYard:         {name: "yard", symbol: "yd", offset: ratZero, slope: ratio(1143, 1250), si: Meter},
	atomMile:         {name: "mile", symbol: "mi", offset: ratZero, slope: ratio(201168, 125), si: Meter},
	atomNauticalMile: {name: "nautical mile", symbol: "nmi", offset: ratZero, slope: ratio(1852, 1), si: Meter},
	atomLightYear:    {name: "light year", symbol: "ly", offset: ratZero, slope: ratio(9460730472580800, 1), si: Meter},
	atomParsec:       {name: "parsec", symbol: "pc", offset: ratZero, slope: ratio(30857000000000000, 1), si: Meter},

	atomCoulomb: {name: "coulomb", symbol: "C", offset: ratZero, slope: ratOne, si: Second.Mul(Ampere)},

	atomGram:  {name: "gram", symbol: "g", offset: ratZero, slope: ratOne, si: Gram},
	atomTonne: {name: "tonne", symbol: "t", offset: ratZero, slope: ratio(1000000, 1), si: Gram},
	atomDram:  {name: "dram", symbol: "dr", offset: ratZero, slope: ratio(17718451953, 10000000000), si: Gram},
	atomOunce: {name: "ounce", symbol: "oz", offset: ratZero, slope: ratio(45359237, 1600000), si: Gram},
	atomPound: {name: "pound", symbol: "lb", offset: ratZero, slope: ratio(45359237, 100000), si: Gram},

	atomFarad: {name: "farad", symbol: "F", offset: ratZero, slope: ratOne,
		si: Second.Mul(Second).Mul(Second).Mul(Second).Mul(Ampere).Mul(Ampere).Div(Kilo.Mul(Gram).Mul(Meter).Mul(Meter))},

	atomSecond: {name: "second", symbol: "s", offset: ratZero, slope: ratOne, si: Second},
	atomMinute: {name: "minute", symbol: "min", offset: ratZero, slope: ratio(60, 1), si: Second},
	atomHour:   {name: "hour", symbol: "h", offset: ratZero, slope: ratio(3600, 1), si: Second},
	atomDay:    {name: "day", symbol: "d", offset: ratZero, slope: ratio(86400, 1), si: Second},
	atomMonth:  {name: "month", symbol: "mo", offset: ratZero, slope: ratio(2629746, 1), si: Second},
	atomYear:   {name: "year", symbol: "yr", offset: ratZero, slope: ratio(31557600, 1), si: Second},
}
