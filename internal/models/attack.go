package models

import "time"

const (
	BucketMorning = "morning"
	BucketNoon    = "noon"
	BucketEvening = "evening"
)

const (
	LocationRight     = "Right"
	LocationLeft      = "Left"
	LocationEye       = "Eye"
	LocationRightSide = "Right Side"
	LocationLeftSide  = "Left Side"
)

// TriggerOther is the marker the UI sends when the user picks the free-text
// trigger option; it never reaches storage, the accompanying text does.
const TriggerOther = "Other"

const LocationUnknown = "Unknown"

type Attack struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	Date         time.Time `gorm:"type:date;not null;index"`
	TimeBucket   string    `gorm:"not null"`
	Severity     int       `gorm:"not null"`
	Triggers     []string  `gorm:"serializer:json"`
	Note         string
	IsWorkDay    bool   `gorm:"not null"`
	PainLocation string `gorm:"not null"`
	CreatedAt    time.Time
}

func TimeBuckets() []string {
	return []string{BucketMorning, BucketNoon, BucketEvening}
}

func PainLocations() []string {
	return []string{
		LocationRight,
		LocationLeft,
		LocationEye,
		LocationRightSide,
		LocationLeftSide,
	}
}

// BuiltinTriggers lists the enumerated trigger tags offered alongside the
// free-text "Other" option.
func BuiltinTriggers() []string {
	return []string{
		"Sleeplessness",
		"Fatigue",
		"Unknown",
		"Dehydration",
		"Hunger",
		"Heat",
		"Stress",
	}
}

const (
	SeverityMin = 1
	SeverityMax = 5
)

const severityFallbackColor = "#FFFFFF"

var severityColors = map[int]string{
	1: "#A8E063",
	2: "#D4E157",
	3: "#FFEB3B",
	4: "#FFB300",
	5: "#EF5350",
}

// SeverityColor maps a severity value to its calendar marker color. Values
// outside 1..5 fall back to neutral white.
func SeverityColor(severity int) string {
	if color, ok := severityColors[severity]; ok {
		return color
	}
	return severityFallbackColor
}

func IsValidSeverity(severity int) bool {
	return severity >= SeverityMin && severity <= SeverityMax
}
