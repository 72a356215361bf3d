package expconf

import (
	"testing"

	experrors "github.com/randalmurphal/expconf/errors"
)

func TestParseOverride_Types(t *testing.T) {
	tests := []struct {
		expr     string
		wantPath string
		want     any
	}{
		{"trainer.max_epochs=150", "trainer.max_epochs", 150},
		{"model.lr=0.0001", "model.lr", 0.0001},
		{"model.freeze_layers=true", "model.freeze_layers", true},
		{"trainer.strategy=ddp", "trainer.strategy", "ddp"},
		{"+experiment.tag=smoke", "experiment.tag", "smoke"},
		{"logger=null", "logger", nil},
		{"name=", "name", ""},
	}

	for _, tt := range tests {
		got, err := ParseOverride(tt.expr)
		if err != nil {
			t.Errorf("ParseOverride(%q) error: %v", tt.expr, err)
			continue
		}
		if got.Path != tt.wantPath {
			t.Errorf("ParseOverride(%q).Path = %q, want %q", tt.expr, got.Path, tt.wantPath)
		}
		if got.Value != tt.want {
			t.Errorf("ParseOverride(%q).Value = %#v, want %#v", tt.expr, got.Value, tt.want)
		}
	}
}

func TestParseOverride_Malformed(t *testing.T) {
	for _, expr := range []string{"trainer.max_epochs", "=4", ""} {
		_, err := ParseOverride(expr)
		if !experrors.IsParseError(err) {
			t.Errorf("ParseOverride(%q) error = %v, want ParseError", expr, err)
		}
	}
}

func TestParseOverrides_FailsFast(t *testing.T) {
	_, err := ParseOverrides([]string{"a=1", "broken"})
	if !experrors.IsParseError(err) {
		t.Errorf("error = %v, want ParseError", err)
	}
}
