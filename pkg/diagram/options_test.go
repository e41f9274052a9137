package diagram

import (
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"TB", TopToBottom, false},
		{"tb", TopToBottom, false},
		{"top-to-bottom", TopToBottom, false},
		{"LR", LeftToRight, false},
		{" rl ", RightToLeft, false},
		{"bottom-to-top", BottomToTop, false},
		{"", "", true},
		{"diagonal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDirection(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCurveStyle(t *testing.T) {
	for _, s := range []string{"ortho", "Curved", "spline", "polyline"} {
		if _, err := ParseCurveStyle(s); err != nil {
			t.Errorf("ParseCurveStyle(%q) error: %v", s, err)
		}
	}
	if _, err := ParseCurveStyle("zigzag"); err == nil {
		t.Error("ParseCurveStyle(zigzag) should fail")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Format
		wantErr bool
	}{
		{"empty defaults to png", "", []Format{FormatPNG}, false},
		{"single", "svg", []Format{FormatSVG}, false},
		{"multiple", "png,svg,dot", []Format{FormatPNG, FormatSVG, FormatDOT}, false},
		{"jpeg alias", "jpeg", []Format{FormatJPG}, false},
		{"dedupe", "png, PNG", []Format{FormatPNG}, false},
		{"invalid", "png,gif", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormats(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseFormats(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseEdgeDirection(t *testing.T) {
	tests := []struct {
		in   string
		want EdgeDirection
		dot  string
	}{
		{"", Forward, "forward"},
		{">>", Forward, "forward"},
		{"<<", Reverse, "back"},
		{"both", Both, "both"},
		{"-", Undirected, "none"},
	}

	for _, tt := range tests {
		got, err := ParseEdgeDirection(tt.in)
		if err != nil {
			t.Fatalf("ParseEdgeDirection(%q) error: %v", tt.in, err)
		}
		if got != tt.want || got.DOT() != tt.dot {
			t.Errorf("ParseEdgeDirection(%q) = %v (%s), want %v (%s)", tt.in, got, got.DOT(), tt.want, tt.dot)
		}
	}
	if _, err := ParseEdgeDirection("sideways"); err == nil {
		t.Error("ParseEdgeDirection(sideways) should fail")
	}
}
