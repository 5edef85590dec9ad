package airfoil

// NASA Common Research Model wing, digitized at twelve spanwise slices.
// "CRM:jig" is the undeformed jig shape; "CRM:alpha_2.75" is the
// deflected shape measured at alpha=2.75 deg (DPW6). Coordinates and
// chords in inches, twist in degrees. As digitized, the twist column
// runs tip to root against the ascending eta column; consumers reverse
// it (see mesh.FromReference).

var crmJig = &Table{
	Name: "CRM:jig",
	Stations: []Station{
		{Eta: 0.00, LE: [3]float64{904.294, 0.000, 174.126}, Twist: -3.7500, Chord: 536.181},
		{Eta: 0.10, LE: [3]float64{950.106, 115.875, 179.714}, Twist: -3.4467, Chord: 468.511},
		{Eta: 0.20, LE: [3]float64{1001.048, 231.750, 185.561}, Twist: -2.7858, Chord: 400.835},
		{Eta: 0.30, LE: [3]float64{1052.404, 347.625, 191.452}, Twist: -2.1459, Chord: 333.157},
		{Eta: 0.37, LE: [3]float64{1088.369, 428.723, 195.580}, Twist: -1.5064, Chord: 285.782},
		{Eta: 0.45, LE: [3]float64{1124.559, 521.438, 202.618}, Twist: -0.8913, Chord: 263.827},
		{Eta: 0.55, LE: [3]float64{1169.796, 637.313, 211.419}, Twist: -0.2621, Chord: 236.375},
		{Eta: 0.65, LE: [3]float64{1215.034, 753.188, 220.221}, Twist: 0.3326, Chord: 208.924},
		{Eta: 0.75, LE: [3]float64{1260.271, 869.063, 229.022}, Twist: 1.0146, Chord: 181.473},
		{Eta: 0.85, LE: [3]float64{1305.508, 984.938, 237.824}, Twist: 2.5284, Chord: 154.022},
		{Eta: 0.95, LE: [3]float64{1350.746, 1100.813, 246.625}, Twist: 4.4402, Chord: 126.571},
		{Eta: 1.00, LE: [3]float64{1373.364, 1158.750, 251.026}, Twist: 6.7166, Chord: 112.845},
	},
}

var crmAlpha275 = &Table{
	Name: "CRM:alpha_2.75",
	Stations: []Station{
		{Eta: 0.00, LE: [3]float64{904.294, 0.000, 174.126}, Twist: -4.1808, Chord: 536.181},
		{Eta: 0.10, LE: [3]float64{950.106, 115.875, 180.454}, Twist: -3.8815, Chord: 468.511},
		{Eta: 0.20, LE: [3]float64{1001.048, 231.750, 187.723}, Twist: -3.2286, Chord: 400.835},
		{Eta: 0.30, LE: [3]float64{1052.404, 347.625, 195.831}, Twist: -2.5690, Chord: 333.157},
		{Eta: 0.37, LE: [3]float64{1088.369, 428.723, 202.072}, Twist: -1.8952, Chord: 285.782},
		{Eta: 0.45, LE: [3]float64{1124.559, 521.438, 210.851}, Twist: -1.2144, Chord: 263.827},
		{Eta: 0.55, LE: [3]float64{1169.796, 637.313, 223.697}, Twist: -0.5142, Chord: 236.375},
		{Eta: 0.65, LE: [3]float64{1215.034, 753.188, 238.299}, Twist: 0.1191, Chord: 208.924},
		{Eta: 0.75, LE: [3]float64{1260.271, 869.063, 254.420}, Twist: 0.8381, Chord: 181.473},
		{Eta: 0.85, LE: [3]float64{1305.508, 984.938, 271.935}, Twist: 2.4095, Chord: 154.022},
		{Eta: 0.95, LE: [3]float64{1350.746, 1100.813, 290.727}, Twist: 4.3815, Chord: 126.571},
		{Eta: 1.00, LE: [3]float64{1373.364, 1158.750, 300.539}, Twist: 6.7166, Chord: 112.845},
	},
}

var tables = map[string]*Table{
	crmJig.Name:      crmJig,
	crmAlpha275.Name: crmAlpha275,
}
