package reverb

// referenceRate is the rate the late-network sample tables are tuned for.
// Every entry is scaled by internalRate/referenceRate.
const referenceRate = 44100.0

const (
	numDiffusers = 10
	numCrossAPs  = 4
	numOutTaps   = 7
)

// Feedback gains.
const (
	diffusionGainEarly = 0.75 // first four diffusers
	diffusionGainLate  = 0.625
	crossAPGain        = 0.35
	dampAPGain         = 0.4
	bassAPGain         = 0.35
)

// Fixed corners.
const (
	erInputLPF     = 20000.0
	erInputHPF     = 4.0
	erCrossAPFreq  = 750.0
	erCrossAPBW    = 4.0
	erOutAPFreq    = 1500.0
	erOutAPBW      = 2.0
	erCrossDelay   = 0.0013 // seconds at ERFactor 1
	spinLimit      = 20.0   // Hz, LFO smoother corner
	lfo2Ratio      = 0.618
	noiseModAmount = 0.1
	bassFilterBW   = 2.0
	outputFilterBW = 1.9
	combFeedback   = 0.5 // relative to the loop decay
	noiseSeed      = 0x5eed
)

type modDelay struct {
	size, msize int
}

// lateDelays holds one channel's reference lengths in samples at
// referenceRate. Left and right use mutually prime values so the two loops
// do not ring at the same frequencies.
type lateDelays struct {
	diffusion [numDiffusers]int
	diffMod   int
	cdelay    int
	cross     [numCrossAPs]int
	dampAP1   modDelay
	dampD     int
	dampAP2   modDelay
	cbassD1   int
	cbassAP1  [2]int
	cbassD2   int
	cbassAP2  modDelay
	cbassAP2b [2]int
	comb      int
	lastDelay int
}

var lateTable = [2]lateDelays{
	{
		diffusion: [numDiffusers]int{31, 47, 67, 89, 113, 137, 163, 193, 223, 257},
		diffMod:   11,
		cdelay:    1327,
		cross:     [numCrossAPs]int{151, 211, 277, 337},
		dampAP1:   modDelay{631, 17},
		dampD:     1693,
		dampAP2:   modDelay{443, 13},
		cbassD1:   1129,
		cbassAP1:  [2]int{509, 311},
		cbassD2:   887,
		cbassAP2:  modDelay{353, 23},
		cbassAP2b: [2]int{241, 419},
		comb:      1051,
		lastDelay: 1,
	},
	{
		diffusion: [numDiffusers]int{37, 53, 71, 97, 107, 149, 173, 181, 229, 263},
		diffMod:   11,
		cdelay:    1409,
		cross:     [numCrossAPs]int{157, 223, 271, 349},
		dampAP1:   modDelay{659, 17},
		dampD:     1741,
		dampAP2:   modDelay{467, 13},
		cbassD1:   1187,
		cbassAP1:  [2]int{521, 307},
		cbassD2:   919,
		cbassAP2:  modDelay{367, 23},
		cbassAP2b: [2]int{251, 431},
		comb:      1097,
		lastDelay: 19,
	},
}

type tapSource int

const (
	tapCDelay tapSource = iota
	tapDampD
	tapCBassD1
	tapCBassD2
)

// outTap reads one loop delay of the own or the other channel.
type outTap struct {
	src    tapSource
	other  bool
	offset int // reference samples
	sign   float64
}

var outTapTable = [2][numOutTaps]outTap{
	{
		{tapCDelay, false, 266, 1},
		{tapCDelay, false, 1100, 1},
		{tapDampD, false, 470, -1},
		{tapCBassD1, false, 710, 1},
		{tapCBassD2, true, 300, -1},
		{tapDampD, true, 1200, -1},
		{tapCBassD1, true, 90, -1},
	},
	{
		{tapCDelay, false, 353, 1},
		{tapCDelay, false, 990, 1},
		{tapDampD, false, 600, -1},
		{tapCBassD1, false, 800, 1},
		{tapCBassD2, true, 420, -1},
		{tapDampD, true, 1100, -1},
		{tapCBassD1, true, 150, -1},
	},
}

const numERTaps = 18

// Early reflection taps in seconds at ERFactor 1, after Moorer's
// measurements of a medium hall.
var erTimes = [2][numERTaps]float64{
	{
		0.0043, 0.0215, 0.0225, 0.0268, 0.0270, 0.0298, 0.0458, 0.0485, 0.0572,
		0.0587, 0.0595, 0.0612, 0.0707, 0.0708, 0.0726, 0.0741, 0.0753, 0.0797,
	},
	{
		0.0051, 0.0203, 0.0241, 0.0259, 0.0287, 0.0312, 0.0441, 0.0502, 0.0557,
		0.0601, 0.0613, 0.0634, 0.0689, 0.0722, 0.0739, 0.0768, 0.0781, 0.0812,
	},
}

var erGains = [2][numERTaps]float64{
	{
		0.841, 0.504, 0.491, 0.379, 0.380, 0.346, 0.289, 0.272, 0.192,
		0.193, 0.217, 0.181, 0.180, 0.181, 0.176, 0.142, 0.167, 0.134,
	},
	{
		0.841, -0.504, 0.491, 0.379, -0.380, 0.346, 0.289, -0.272, 0.192,
		0.193, -0.217, 0.181, 0.180, -0.181, 0.176, 0.142, -0.167, 0.134,
	},
}

// erMaxTime is the longest entry of erTimes.
const erMaxTime = 0.0812
