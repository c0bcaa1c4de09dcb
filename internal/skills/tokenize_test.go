package skills

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"comma and space collapse", "python, machine learning react", []string{"python", "machine", "learning", "react"}},
		{"leading and trailing delimiters", " ,go,, rust , ", []string{"go", "rust"}},
		{"tabs and newlines", "sql\tdocker\nkubernetes", []string{"sql", "docker", "kubernetes"}},
		{"duplicates kept", "go go", []string{"go", "go"}},
		{"vertical tab", "go\vrust", []string{"go", "rust"}},
		{"no-break space", "python\u00a0react", []string{"python", "react"}},
		{"em space", "java\u2003sql", []string{"java", "sql"}},
		{"line separator and bom", "\ufeffgo\u2028rust", []string{"go", "rust"}},
		{"symbols survive", "c++ c# node.js", []string{"c++", "c#", "node.js"}},
		{"empty", "", []string{}},
		{"delimiters only", " , ,\t", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}
