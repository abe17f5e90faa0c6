package lexer

import "testing"

// TestCharacterClassification tests the byte lookup tables
func TestCharacterClassification(t *testing.T) {
	tests := []struct {
		name     string
		char     byte
		expected map[string]bool
	}{
		{
			name: "lowercase letter",
			char: 'a',
			expected: map[string]bool{
				"letter":     true,
				"identStart": true,
				"identPart":  true,
				"digit":      false,
				"whitespace": false,
			},
		},
		{
			name: "uppercase letter",
			char: 'Z',
			expected: map[string]bool{
				"letter":     true,
				"identStart": true,
				"identPart":  true,
				"digit":      false,
				"whitespace": false,
			},
		},
		{
			name: "underscore starts identifiers",
			char: '_',
			expected: map[string]bool{
				"letter":     false,
				"identStart": true,
				"identPart":  true,
				"digit":      false,
				"whitespace": false,
			},
		},
		{
			name: "digit continues but never starts identifiers",
			char: '5',
			expected: map[string]bool{
				"letter":     false,
				"identStart": false,
				"identPart":  true,
				"digit":      true,
				"whitespace": false,
			},
		},
		{
			name: "space",
			char: ' ',
			expected: map[string]bool{
				"letter":     false,
				"identStart": false,
				"identPart":  false,
				"digit":      false,
				"whitespace": true,
			},
		},
		{
			name: "newline is whitespace",
			char: '\n',
			expected: map[string]bool{
				"letter":     false,
				"identStart": false,
				"identPart":  false,
				"digit":      false,
				"whitespace": true,
			},
		},
		{
			name: "carriage return is whitespace",
			char: '\r',
			expected: map[string]bool{
				"letter":     false,
				"identStart": false,
				"identPart":  false,
				"digit":      false,
				"whitespace": true,
			},
		},
		{
			name: "tab is whitespace",
			char: '\t',
			expected: map[string]bool{
				"letter":     false,
				"identStart": false,
				"identPart":  false,
				"digit":      false,
				"whitespace": true,
			},
		},
		{
			name: "high byte is nothing",
			char: 0xC3,
			expected: map[string]bool{
				"letter":     false,
				"identStart": false,
				"identPart":  false,
				"digit":      false,
				"whitespace": false,
			},
		},
		{
			name: "NUL is nothing",
			char: 0,
			expected: map[string]bool{
				"letter":     false,
				"identStart": false,
				"identPart":  false,
				"digit":      false,
				"whitespace": false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := map[string]bool{
				"letter":     isLetter[tt.char],
				"identStart": isIdentStart[tt.char],
				"identPart":  isIdentPart[tt.char],
				"digit":      isDigit[tt.char],
				"whitespace": isWhitespace[tt.char],
			}
			for class, want := range tt.expected {
				if actual[class] != want {
					t.Errorf("char %q: %s = %v, want %v", tt.char, class, actual[class], want)
				}
			}
		})
	}
}
