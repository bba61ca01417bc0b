package cli

import "testing"

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"dot", "svg", "png"} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q) error = %v", f, err)
		}
	}
	if err := validateFormat("pdf"); err == nil {
		t.Error("validateFormat(pdf) should fail")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		format string
		want   string
	}{
		{"explicit output", "out.svg", "tree.json", "svg", "out.svg"},
		{"derived from input", "", "tree.json", "svg", "tree.svg"},
		{"derived png", "", "data/deps.json", "png", "data/deps.png"},
		{"input without extension", "", "tree", "dot", "tree.dot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input, tt.format); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}
