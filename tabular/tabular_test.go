package tabular

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeWorkbook(t *testing.T, sheets map[string][][]any, order ...string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, row := range sheets[name] {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	path := filepath.Join(t.TempDir(), "policies.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "csv", want: FormatCSV},
		{in: ".CSV", want: FormatCSV},
		{in: " xlsx ", want: FormatXLSX},
		{in: "xls", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("/uploads/abc_123.xlsx")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = FormatFromPath("/uploads/notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.csv"), FormatCSV)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = ParseFile(t.TempDir(), FormatCSV)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestParseFileTee(t *testing.T) {
	data := "agent,company_name\nA1,Acme\nA2,Beta\n"
	path := writeFile(t, "policies.csv", []byte(data))

	var copied bytes.Buffer
	rows, err := ParseFileTee(path, FormatCSV, &copied)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, data, copied.String())
}

func TestParseCSV(t *testing.T) {
	data := strings.Join([]string{
		" agent , company_name,category_name,userName,extra",
		"A1,Acme,Auto,,x",
		"A2,Beta",
		",,,,",
		"A3,Gamma,Home,u3,y,overflow",
	}, "\n")
	path := writeFile(t, "policies.csv", []byte(data))

	rows, err := ParseFile(path, FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, Row{"agent": "A1", "company_name": "Acme", "category_name": "Auto", "userName": "", "extra": "x"}, rows[0])

	// Short rows are padded so every column is present.
	assert.Equal(t, "Beta", rows[1]["company_name"])
	v, ok := rows[1]["userName"]
	assert.True(t, ok)
	assert.Empty(t, v)

	assert.Equal(t, "y", rows[2]["extra"])
	assert.Len(t, rows[2], 5)
}

func TestParseCSV_Empty(t *testing.T) {
	rows, err := Parse(strings.NewReader(""), FormatCSV)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = Parse(strings.NewReader("agent,company_name\n"), FormatCSV)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseCSV_Malformed(t *testing.T) {
	_, err := Parse(strings.NewReader("agent,company_name\nA\"1,Acme\n"), FormatCSV)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseCSV_BlankAndDuplicateHeaders(t *testing.T) {
	rows, err := Parse(strings.NewReader("agent,,agent\nA1,ignored,A2\n"), FormatCSV)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"agent": "A1"}, rows[0])
}

func TestParseCSV_Encodings(t *testing.T) {
	t.Run("utf-8 bom", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("agent\nA1\n")...)
		rows, err := Parse(strings.NewReader(string(data)), FormatCSV)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "A1", rows[0]["agent"])
	})

	t.Run("utf-16le bom", func(t *testing.T) {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		data, err := enc.String("agent,firstname\nA1,Zoë\n")
		require.NoError(t, err)
		rows, err := Parse(strings.NewReader(data), FormatCSV)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Zoë", rows[0]["firstname"])
	})

	t.Run("latin-1 fallback", func(t *testing.T) {
		data := []byte("firstname\nJos\xe9\n")
		rows, err := Parse(strings.NewReader(string(data)), FormatCSV)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "José", rows[0]["firstname"])
	})
}

func TestParseXLSX_FirstSheetOnly(t *testing.T) {
	path := writeWorkbook(t, map[string][][]any{
		"Policies": {
			{"agent", "company_name", "category_name", "userName"},
			{"A1", "Acme", "Auto"},
			{},
			{"A2", "Beta", "Home", "u2"},
		},
		"Other": {
			{"agent"},
			{"ignored"},
		},
	}, "Policies", "Other")

	rows, err := ParseFile(path, FormatXLSX)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Row{"agent": "A1", "company_name": "Acme", "category_name": "Auto", "userName": ""}, rows[0])
	assert.Equal(t, "u2", rows[1]["userName"])
}

func TestParseXLSX_Corrupt(t *testing.T) {
	path := writeFile(t, "broken.xlsx", []byte("this is not a zip archive"))

	_, err := ParseFile(path, FormatXLSX)
	assert.ErrorIs(t, err, ErrParse)
}

func TestRowGet(t *testing.T) {
	row := Row{"agent": "  A1 ", "blank": " \t"}
	assert.Equal(t, "  A1 ", row.Get("agent"))
	assert.Equal(t, "A1", row.Trimmed("agent"))
	assert.Equal(t, "", row.Get("missing"))
	assert.True(t, row.Blank("blank"))
	assert.True(t, row.Blank("missing"))
	assert.False(t, row.Blank("agent"))
}
