package batch

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadBatchFile(t *testing.T) {
	tests := []struct {
		name        string
		fileContent string
		want        []Entry
	}{
		{
			name:        "empty file",
			fileContent: "",
			want:        nil,
		},
		{
			name:        "only whitespace",
			fileContent: "   \n\t\r\n   ",
			want:        nil,
		},
		{
			name: "callsigns",
			fileContent: `LH26EDF
DLH400
N12345`,
			want: []Entry{
				{Line: 1, Text: "LH26EDF"},
				{Line: 2, Text: "DLH400"},
				{Line: 3, Text: "N12345"},
			},
		},
		{
			name: "comments and blank lines",
			fileContent: `# flights for today

LH26EDF
  # indented comment
BA 117
`,
			want: []Entry{
				{Line: 3, Text: "LH26EDF"},
				{Line: 5, Text: "BA 117"},
			},
		},
		{
			name:        "windows line endings",
			fileContent: "ABC\r\nDEF\r\n",
			want: []Entry{
				{Line: 1, Text: "ABC"},
				{Line: 2, Text: "DEF"},
			},
		},
		{
			name:        "inner spaces are kept",
			fileContent: "  HELLO  WORLD.  \n",
			want: []Entry{
				{Line: 1, Text: "HELLO  WORLD."},
			},
		},
		{
			name:        "unsupported characters pass through",
			fileContent: "lower\nDF=\n",
			want: []Entry{
				{Line: 1, Text: "lower"},
				{Line: 2, Text: "DF="},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "batch.txt")
			if err := os.WriteFile(tmpFile, []byte(tt.fileContent), 0644); err != nil {
				t.Fatalf("Failed to create test file: %v", err)
			}

			got, err := ReadBatchFile(tmpFile)
			if err != nil {
				t.Fatalf("ReadBatchFile() error = %v", err)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadBatchFile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadBatchFile_Missing(t *testing.T) {
	_, err := ReadBatchFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Expected error for missing batch file")
	}
}
