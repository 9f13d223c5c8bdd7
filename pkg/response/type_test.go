package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"timetable-tracker/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	tm := time.Date(2024, 5, 1, 22, 30, 0, 0, loc)
	dt := response.DateTime(tm)

	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	if string(b) != `"2024-05-01T15:30:00Z"` {
		t.Errorf("unexpected DateTime JSON: %s", b)
	}
}

func TestDateTimeUnmarshalJSON(t *testing.T) {
	var dt response.DateTime
	if err := json.Unmarshal([]byte(`"2024-05-01T15:30:00Z"`), &dt); err != nil {
		t.Fatalf("unexpected error unmarshaling DateTime: %v", err)
	}

	want := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	if !time.Time(dt).Equal(want) {
		t.Errorf("unexpected DateTime: %v", time.Time(dt))
	}

	if err := json.Unmarshal([]byte(`"yesterday"`), &dt); err == nil {
		t.Error("expected error for malformed timestamp")
	}
}
