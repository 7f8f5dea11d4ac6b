package dataset

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/yatharthsood00/spotify-wrapped-insights/internal/insights"
)

func quietLoader() *Loader {
	l := NewLoader()
	l.SetOutput(io.Discard)
	return l
}

func TestReadTracklist(t *testing.T) {
	input := `year,index,name,artists,id,link
2019,1,"Song A","['Artist X']",abc123,https://example.com/abc123
2019,2,"Song B","['Artist Y', 'Artist Z']",def456,https://example.com/def456
`
	records, err := quietLoader().Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Year != 2019 || first.Rank != 1 || first.Title != "Song A" {
		t.Errorf("first record = %+v", first)
	}
	if len(first.Artists) != 1 || first.Artists[0] != "Artist X" {
		t.Errorf("first artists = %v, want [Artist X]", first.Artists)
	}
	if first.SpotifyID != "abc123" {
		t.Errorf("spotify id = %q, want abc123", first.SpotifyID)
	}

	second := records[1]
	if len(second.Artists) != 2 || second.Artists[0] != "Artist Y" || second.Artists[1] != "Artist Z" {
		t.Errorf("second artists = %v, want [Artist Y, Artist Z]", second.Artists)
	}
}

func TestReadSkipsMalformedRows(t *testing.T) {
	input := `year,index,name,artists,id,link
2019,1,"Song A","['Artist X']",abc,link
notayear,2,"Song B","['Artist Y']",def,link
2019,0,"Song C","['Artist Z']",ghi,link
2019,3,"","['Artist W']",jkl,link
2019,4,"Song E","",mno,link
2019,5,"Song F","['Artist V']",pqr,link
`
	records, err := quietLoader().Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 valid records, got %d", len(records))
	}
	if records[0].Title != "Song A" || records[1].Title != "Song F" {
		t.Errorf("kept %q and %q, want Song A and Song F", records[0].Title, records[1].Title)
	}
}

func TestReadEmptyInput(t *testing.T) {
	records, err := quietLoader().Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestReadMissingColumn(t *testing.T) {
	input := "year,name,artists\n2019,Song A,\"['Artist X']\"\n"
	if _, err := quietLoader().Read(strings.NewReader(input)); err == nil {
		t.Error("expected an error for a missing required column")
	}
}

func TestParseArtists(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"['Artist X']", []string{"Artist X"}},
		{"['Artist X', 'Artist Y']", []string{"Artist X", "Artist Y"}},
		{`["Artist's Band", 'Other']`, []string{"Artist's Band", "Other"}},
		{"Artist X, Artist Y", []string{"Artist X", "Artist Y"}},
		{"Artist X", []string{"Artist X"}},
		{"[]", nil},
		{"", nil},
	}

	for _, tc := range tests {
		got := ParseArtists(tc.in)
		if len(got) != len(tc.want) {
			t.Errorf("ParseArtists(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("ParseArtists(%q) = %v, want %v", tc.in, got, tc.want)
				break
			}
		}
	}
}

func TestWriteProcessedRoundTrip(t *testing.T) {
	p := insights.BuildPivot([]insights.Record{
		{Year: 2019, Rank: 5, Title: "Song A", Artists: []string{"Artist X"}, SpotifyID: "abc"},
		{Year: 2020, Rank: 3, Title: "song a", Artists: []string{"artist x"}, SpotifyID: "xyz"},
		{Year: 2019, Rank: 1, Title: "Song B", Artists: []string{"Artist Y"}, SpotifyID: "def"},
	})

	var buf bytes.Buffer
	if err := WriteProcessed(p, &buf); err != nil {
		t.Fatalf("WriteProcessed failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "name,artists,song_id,id,list_appearances,score,2019,2020") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Song A") || !strings.Contains(lines[1], "5,3") {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Song B") || !strings.Contains(lines[2], "1,0") {
		t.Errorf("unexpected second row: %q", lines[2])
	}
}
