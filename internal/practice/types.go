package practice

// #region issue

// Issue names a detected problem the prescription should address.
type Issue string

const (
	IssueLowZone            Issue = "low_zone"
	IssueOverload           Issue = "overload"
	IssueLowEnergy          Issue = "low_energy"
	IssueEmotionalDistance  Issue = "emotional_distance"
	IssuePhysicalDiscomfort Issue = "physical_discomfort"
	IssueLowSerenity        Issue = "low_serenity"
	IssueLowVitality        Issue = "low_vitality"
	IssueLowComfort         Issue = "low_comfort"
	IssueLowConnection      Issue = "low_connection"
	IssueGrowth             Issue = "growth"
)

// #endregion issue

// #region problem

// Problem is a transient detection result. Priority 0 is the most urgent;
// problems are evaluated in ascending priority order and never persisted.
type Problem struct {
	Issue            Issue
	Priority         int
	RecommendedTypes []Type
	Value            float64 // metric value for metric-derived problems, else 0
}

// #endregion problem

// #region practice-type

// Type is a category of practice. A single day's prescription never
// contains two practices of the same type.
type Type string

const (
	TypeBreathing  Type = "breathing"
	TypeMeditation Type = "meditation"
	TypeMovement   Type = "movement"
	TypeJournaling Type = "journaling"
	TypeConnection Type = "connection"
	TypeBodyScan   Type = "body_scan"
	TypeRest       Type = "rest"
	TypePause      Type = "pause"
)

// #endregion practice-type

// #region practice-intensity

// PracticeIntensity grades how demanding a practice is.
type PracticeIntensity string

const (
	IntensityMinimal    PracticeIntensity = "minimal"
	IntensityGentle     PracticeIntensity = "gentle"
	IntensityModerate   PracticeIntensity = "moderate"
	IntensityEnergizing PracticeIntensity = "energizing"
)

// #endregion practice-intensity

// #region practice

// Practice is one catalog entry. The catalog is a fixed immutable table.
type Practice struct {
	ID          string
	Type        Type
	Name        string
	Focus       string // metric this practice primarily works on
	DurationMin int    // 1-5 minutes
	Intensity   PracticeIntensity
	ZoneMin     int
	ZoneMax     int
	Affinities  []Issue
}

func (p Practice) hasAffinity(issue Issue) bool {
	for _, a := range p.Affinities {
		if a == issue {
			return true
		}
	}
	return false
}

// #endregion practice

// #region prescription

// Prescription is one recommended practice for today.
type Prescription struct {
	Practice    Practice
	Focus       string
	DurationMin int
	Intensity   PracticeIntensity
	Targets     Issue
}

// #endregion prescription

// #region tone

// Tone sets the register of the daily narrative around the prescriptions.
type Tone string

const (
	ToneCompassionate Tone = "compassionate"
	ToneGentle        Tone = "gentle"
	ToneBalanced      Tone = "balanced"
	ToneEncouraging   Tone = "encouraging"
	ToneCelebratory   Tone = "celebratory"
)

// #endregion tone

// #region plan

// Plan is the full prescription result for one day: 1-3 practices, a tone,
// and a goal line.
type Plan struct {
	Prescriptions []Prescription
	Tone          Tone
	Goal          string
}

// #endregion plan
