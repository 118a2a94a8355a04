package manifest

import "testing"

func TestParseTriple(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Triple
		wantErr bool
	}{
		{"engine default", "1.20.50", Triple{1, 20, 50}, false},
		{"zeros", "0.0.0", Triple{0, 0, 0}, false},
		{"surrounding space", " 1.21.0 ", Triple{1, 21, 0}, false},
		{"leading zero patch", "1.20.050", Triple{1, 20, 50}, false},
		{"leading zero major", "01.20.50", Triple{1, 20, 50}, false},
		{"all zero digits", "00.000.0", Triple{0, 0, 0}, false},
		{"empty part", "1..50", Triple{}, true},
		{"two parts", "1.20", Triple{}, true},
		{"four parts", "1.20.50.1", Triple{}, true},
		{"prerelease", "1.20.50-beta", Triple{}, true},
		{"non-numeric", "1.x.50", Triple{}, true},
		{"empty", "", Triple{}, true},
		{"negative", "1.-2.3", Triple{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTriple(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTriple(%q) = %v, expected error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTriple(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTriple(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTripleString(t *testing.T) {
	if got := (Triple{1, 20, 50}).String(); got != "1.20.50" {
		t.Errorf("String() = %q, want %q", got, "1.20.50")
	}
}

func TestDefaultMinEngineIsCopied(t *testing.T) {
	v := DefaultMinEngine
	v[0] = 99
	if DefaultMinEngine != (Triple{1, 20, 50}) {
		t.Errorf("DefaultMinEngine mutated through a copy: %v", DefaultMinEngine)
	}
}

func TestParseSemver(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"1.8.0", "1.8.0", false},
		{"1.9.0-beta", "1.9.0-beta", false},
		{"v1.1.0", "1.1.0", false},
		{"beta", "", true},
	}

	for _, tt := range tests {
		got, err := parseSemver(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSemver(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSemver(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseSemver(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
