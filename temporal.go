package companionsdk

import "time"

// ──────────────────────────────────────────────
// Temporal Context — wall-clock + relationship-age signals
// ──────────────────────────────────────────────

// TimeOfDay buckets the local hour.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"   // 05:00-11:59
	TimeAfternoon TimeOfDay = "afternoon" // 12:00-16:59
	TimeEvening   TimeOfDay = "evening"   // 17:00-21:59
	TimeNight     TimeOfDay = "night"     // 22:00-04:59
)

// DayKind separates weekdays from weekends.
type DayKind string

const (
	DayWeekday DayKind = "weekday"
	DayWeekend DayKind = "weekend"
)

// TemporalContext is recomputed per request from the clock and relationship
// metadata. Nothing here is stored.
type TemporalContext struct {
	TimeOfDay           TimeOfDay `json:"time_of_day"`
	DayKind             DayKind   `json:"day_kind"`
	RelationshipAgeDays int       `json:"relationship_age_days"`
	HoursSinceLastSeen  float64   `json:"hours_since_last_seen"`
	ConversationLength  int       `json:"conversation_length"`
}

// ComputeTemporalContext derives the temporal context at a given instant.
// lastInteractionAt may be zero for a first conversation, in which case
// HoursSinceLastSeen is 0.
func ComputeTemporalContext(now, relationshipCreatedAt, lastInteractionAt time.Time, messageCount int) TemporalContext {
	tc := TemporalContext{
		TimeOfDay:          bucketHour(now.Hour()),
		DayKind:            DayWeekday,
		ConversationLength: messageCount,
	}
	if wd := now.Weekday(); wd == time.Saturday || wd == time.Sunday {
		tc.DayKind = DayWeekend
	}
	if !relationshipCreatedAt.IsZero() {
		age := now.Sub(relationshipCreatedAt)
		if age > 0 {
			tc.RelationshipAgeDays = int(age.Hours() / 24)
		}
	}
	if !lastInteractionAt.IsZero() {
		idle := now.Sub(lastInteractionAt)
		if idle > 0 {
			tc.HoursSinceLastSeen = idle.Hours()
		}
	}
	return tc
}

func bucketHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return TimeMorning
	case hour >= 12 && hour < 17:
		return TimeAfternoon
	case hour >= 17 && hour < 22:
		return TimeEvening
	default:
		return TimeNight
	}
}
