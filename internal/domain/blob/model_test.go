package blob

import "testing"

func TestKeys(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		RawPlayByPlayKey(2024021180): "raw/pbp/2024021180.json",
		RawStoryKey(2024021180):      "raw/story/2024021180.json",
		EventsKey(2024021180):        "derived/events/2024021180.jsonl",
		StatsSummaryKey(2024021180):  "derived/summary/stats/2024021180.txt",
		AISummaryKey(2024021180):     "derived/summary/ai/2024021180.md",
		DateIndexKey("2025-04-01"):   "indexes/by_date/2025-04-01.json",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("unexpected key: got=%s want=%s", got, want)
		}
	}
}

func TestValidKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"raw/pbp/1.json", "indexes/by_date/2025-04-01.json"} {
		if !ValidKey(key) {
			t.Fatalf("expected %q to be valid", key)
		}
	}
	for _, key := range []string{"", " ", "/etc/passwd", "raw/../../secret", "raw//pbp", "./raw"} {
		if ValidKey(key) {
			t.Fatalf("expected %q to be rejected", key)
		}
	}
}
