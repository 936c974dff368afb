package practice

import "github.com/lumamaternal/care-engine/internal/metrics"

// #region catalog

// Catalog is the fixed practice library, loaded once. Order matters: the
// selector scans top to bottom, so gentler entries sit first within each
// family.
var Catalog = []Practice{
	{
		ID: "pause-one-minute", Type: TypePause, Name: "One-minute pause",
		Focus: metrics.MetricSerenity, DurationMin: 1, Intensity: IntensityMinimal,
		ZoneMin: 1, ZoneMax: 5,
		Affinities: []Issue{IssueLowZone, IssueOverload},
	},
	{
		ID: "breathing-box", Type: TypeBreathing, Name: "Box breathing",
		Focus: metrics.MetricSerenity, DurationMin: 2, Intensity: IntensityMinimal,
		ZoneMin: 1, ZoneMax: 3,
		Affinities: []Issue{IssueLowZone, IssueLowSerenity},
	},
	{
		ID: "breathing-478", Type: TypeBreathing, Name: "4-7-8 breathing",
		Focus: metrics.MetricSerenity, DurationMin: 3, Intensity: IntensityGentle,
		ZoneMin: 1, ZoneMax: 4,
		Affinities: []Issue{IssueLowZone, IssueOverload, IssueLowSerenity},
	},
	{
		ID: "rest-micro", Type: TypeRest, Name: "Micro rest",
		Focus: metrics.MetricVitality, DurationMin: 2, Intensity: IntensityMinimal,
		ZoneMin: 1, ZoneMax: 3,
		Affinities: []Issue{IssueLowEnergy, IssueOverload},
	},
	{
		ID: "rest-restorative", Type: TypeRest, Name: "Restorative side-lying rest",
		Focus: metrics.MetricVitality, DurationMin: 5, Intensity: IntensityGentle,
		ZoneMin: 1, ZoneMax: 4,
		Affinities: []Issue{IssueLowEnergy, IssueLowVitality},
	},
	{
		ID: "bodyscan-short", Type: TypeBodyScan, Name: "Short body scan",
		Focus: metrics.MetricComfort, DurationMin: 3, Intensity: IntensityGentle,
		ZoneMin: 1, ZoneMax: 4,
		Affinities: []Issue{IssuePhysicalDiscomfort, IssueLowComfort},
	},
	{
		ID: "bodyscan-full", Type: TypeBodyScan, Name: "Head-to-toe body scan",
		Focus: metrics.MetricComfort, DurationMin: 5, Intensity: IntensityModerate,
		ZoneMin: 2, ZoneMax: 5,
		Affinities: []Issue{IssuePhysicalDiscomfort, IssueLowComfort},
	},
	{
		ID: "connection-hands", Type: TypeConnection, Name: "Hands on belly",
		Focus: metrics.MetricConnection, DurationMin: 2, Intensity: IntensityGentle,
		ZoneMin: 1, ZoneMax: 4,
		Affinities: []Issue{IssueEmotionalDistance, IssueLowConnection},
	},
	{
		ID: "movement-stretch", Type: TypeMovement, Name: "Gentle stretch",
		Focus: metrics.MetricComfort, DurationMin: 4, Intensity: IntensityGentle,
		ZoneMin: 2, ZoneMax: 5,
		Affinities: []Issue{IssuePhysicalDiscomfort, IssueLowComfort, IssueLowVitality},
	},
	{
		ID: "movement-walk", Type: TypeMovement, Name: "Mindful walk",
		Focus: metrics.MetricVitality, DurationMin: 5, Intensity: IntensityModerate,
		ZoneMin: 3, ZoneMax: 5,
		Affinities: []Issue{IssueLowVitality, IssueGrowth},
	},
	{
		ID: "journaling-note", Type: TypeJournaling, Name: "A note to your baby",
		Focus: metrics.MetricConnection, DurationMin: 4, Intensity: IntensityModerate,
		ZoneMin: 2, ZoneMax: 5,
		Affinities: []Issue{IssueEmotionalDistance, IssueLowConnection},
	},
	{
		ID: "journaling-gratitude", Type: TypeJournaling, Name: "Three good things",
		Focus: metrics.MetricSerenity, DurationMin: 4, Intensity: IntensityModerate,
		ZoneMin: 3, ZoneMax: 5,
		Affinities: []Issue{IssueGrowth},
	},
	{
		ID: "meditation-kindness", Type: TypeMeditation, Name: "Loving-kindness meditation",
		Focus: metrics.MetricSerenity, DurationMin: 5, Intensity: IntensityModerate,
		ZoneMin: 3, ZoneMax: 5,
		Affinities: []Issue{IssueLowSerenity, IssueGrowth},
	},
	{
		ID: "meditation-savoring", Type: TypeMeditation, Name: "Savoring meditation",
		Focus: metrics.MetricConnection, DurationMin: 3, Intensity: IntensityModerate,
		ZoneMin: 4, ZoneMax: 5,
		Affinities: []Issue{IssueGrowth},
	},
}

// fallbackPractice is the always-valid minimal pause used when nothing in
// the catalog matched.
var fallbackPractice = Catalog[0]

// #endregion catalog
