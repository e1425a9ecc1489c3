package gameevent

import "strings"

// Interpreter maps one raw play of a known kind to its canonical form.
// Interpreters are total: absent fields become nil, never an error.
type Interpreter func(raw RawEvent) Event

var interpreters = map[Kind]Interpreter{
	KindGoal:           interpretGoal,
	KindPenalty:        interpretPenalty,
	KindShotOnGoal:     interpretShotOnGoal,
	KindHit:            interpretHit,
	KindFaceoff:        interpretFaceoff,
	KindBlockedShot:    interpretBlockedShot,
	KindMissedShot:     interpretMissedShot,
	KindGiveaway:       interpretGiveaway,
	KindTakeaway:       interpretTakeaway,
	KindDelayedPenalty: interpretDelayedPenalty,
}

// Normalize dispatches raw to the interpreter registered for its type tag.
// Missing or unrecognized tags produce an unknown event carrying raw verbatim.
func Normalize(raw RawEvent) Event {
	kind := Kind(strings.ToLower(raw.TypeKey()))
	interpret, ok := interpreters[kind]
	if !ok {
		return Event{Type: KindUnknown, RawData: raw}
	}
	return interpret(raw)
}

// NormalizeAll normalizes raws in feed order.
func NormalizeAll(raws []RawEvent) []Event {
	out := make([]Event, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}
