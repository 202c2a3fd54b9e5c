package objlog

import "testing"

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Debug, "Debug"},
		{Info, "Info"},
		{Warning, "Warning"},
		{Error, "Error"},
		{Success, "Success"},
		{Severity(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCaptureSink(t *testing.T) {
	var sink CaptureSink
	sink.Log(Info, "one")
	sink.Log(Warning, "two")
	sink.Log(Warning, "three")

	entries := sink.Entries()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Message != "one" || entries[0].Severity != Info {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if got := sink.CountSeverity(Warning); got != 2 {
		t.Errorf("CountSeverity(Warning) = %d, want 2", got)
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = NopSink{}
	s.Log(Error, "dropped") // must not panic
}
