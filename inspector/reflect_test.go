package inspector

import (
	"testing"

	"github.com/pthm-cable/survivors/components"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag    string
		widget Widget
		opts   map[string]string
	}{
		{"", WidgetAuto, map[string]string{}},
		{"bar,max:60", WidgetBar, map[string]string{"max": "60"}},
		{"label,fmt:%.1fs", WidgetLabel, map[string]string{"fmt": "%.1fs"}},
		{"skip", WidgetSkip, map[string]string{}},
		{"sparkle", WidgetAuto, map[string]string{}},
	}

	for _, tt := range tests {
		w, opts := ParseTag(tt.tag)
		if w != tt.widget {
			t.Errorf("ParseTag(%q) widget = %v, want %v", tt.tag, w, tt.widget)
		}
		if len(opts) != len(tt.opts) {
			t.Errorf("ParseTag(%q) options = %v, want %v", tt.tag, opts, tt.opts)
		}
		for k, v := range tt.opts {
			if opts[k] != v {
				t.Errorf("ParseTag(%q) option %s = %q, want %q", tt.tag, k, opts[k], v)
			}
		}
	}
}

func TestExtractFieldsHonoursSkip(t *testing.T) {
	fields := ExtractFields(&components.Energy{Value: 42, Max: 60})
	if len(fields) != 1 {
		t.Fatalf("got %d fields, want 1 (Max is skipped)", len(fields))
	}
	f := fields[0]
	if f.Name != "Value" || f.Widget != WidgetBar || GetMax(f.Options) != 60 {
		t.Errorf("field = %+v", f)
	}
}

func TestExtractFieldsState(t *testing.T) {
	st := components.State{Mode: components.ModeFlee, Critical: true}
	fields := ExtractFields(st)

	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	for _, hidden := range []string{"Stats", "Timers", "NextTurn"} {
		if _, ok := byName[hidden]; ok {
			t.Errorf("%s should be skipped", hidden)
		}
	}
	if got := FormatValue(byName["Mode"].Value, ""); got != "Flee" {
		t.Errorf("Mode formats as %q, want Flee", got)
	}
	if f := byName["Critical"]; f.Widget != WidgetBool || f.Value != true {
		t.Errorf("Critical = %+v", f)
	}
}

func TestExtractFieldsNonStruct(t *testing.T) {
	if fields := ExtractFields(3.5); fields != nil {
		t.Errorf("got %v for a non-struct", fields)
	}
	var nilEnergy *components.Energy
	if fields := ExtractFields(nilEnergy); fields != nil {
		t.Errorf("got %v for a nil pointer", fields)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value any
		fmt   string
		want  string
	}{
		{12.345, "", "12.35"},
		{float32(0.5), "", "0.50"},
		{7, "", "7"},
		{2.0, "%.1fs", "2.0s"},
		{components.ModeEating, "", "Eating"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.value, tt.fmt); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.fmt, got, tt.want)
		}
	}
}
