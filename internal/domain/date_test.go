package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 15)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"2024-06-15"` {
		t.Fatalf("wire form = %s", raw)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Fatalf("round trip changed value: %v != %v", back, d)
	}
}

func TestDateZeroMarshalsNull(t *testing.T) {
	raw, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "null" {
		t.Fatalf("zero date = %s, want null", raw)
	}

	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("null produced %v", d)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15/06/2024"`), &d); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestDateScanTruncatesTimestamp(t *testing.T) {
	var d Date
	if err := d.Scan("2024-06-15 00:00:00+00:00"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if d != NewDate(2024, time.June, 15) {
		t.Fatalf("scanned %v", d)
	}
}
